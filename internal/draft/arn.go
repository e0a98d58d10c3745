package draft

import (
	"time"

	"fleetops/internal/domain/models"
	"fleetops/internal/utils"
)

// ARNGenerator produces advance request numbers for drafts entering
// Adhoc/Replacement mode. Now is injectable for deterministic tests.
type ARNGenerator struct {
	Now func() time.Time
}

// Generate returns "ARN-YYYYMMDD-HHMMSS" from the local wall clock.
func (g ARNGenerator) Generate() string {
	now := utils.NowLocal()
	if g.Now != nil {
		now = g.Now()
	}
	return "ARN-" + now.Format("20060102-150405")
}

// ApplyModeTransition enforces the advance-request-number lifecycle on a
// mode change: assigned exactly once on first entry into Adhoc/Replacement
// (a no-op when already set, so unrelated edits never churn it), blanked
// when the draft returns to Fixed.
func (g ARNGenerator) ApplyModeTransition(d *models.TransactionDraft) {
	if d.Mode.IsAdhocLike() {
		if d.Calc.AdvanceRequestNo == "" {
			d.SetDerived(models.FieldAdvanceRequestNo, g.Generate())
		}
		return
	}
	d.SetDerived(models.FieldAdvanceRequestNo, "")
}
