// Package tripcalc implements the derived-field engine behind the daily
// vehicle and adhoc/replacement transaction forms: clock-time conversion,
// the ordered derivation rule table, and the recalculation pass that keeps
// a draft's system figures consistent with its raw fields.
package tripcalc

import "fleetops/internal/domain/models"

// Recalculate re-derives every field affected by one raw-field write.
// It returns the outputs it touched so callers can report them back to
// the form. Writing an output never re-triggers its own rule; the single
// forward pass over the ordered table terminates by construction.
func Recalculate(d *models.TransactionDraft, changed models.Field) []models.Field {
	return run(d, map[models.Field]bool{changed: true}, false)
}

// RecalculateAll re-derives the full table. Used after mode switches and
// snapshot restores, where any input may have changed meaning.
func RecalculateAll(d *models.TransactionDraft) []models.Field {
	return run(d, map[models.Field]bool{}, true)
}

func run(d *models.TransactionDraft, dirty map[models.Field]bool, all bool) []models.Field {
	touched := []models.Field{}

	for _, r := range ruleTable {
		fire := all
		if !fire {
			for _, in := range r.Inputs {
				if dirty[in] {
					fire = true
					break
				}
			}
		}
		if !fire {
			continue
		}

		value := ""
		if !r.AdhocOnly || d.Mode.IsAdhocLike() {
			if v, ok := r.Compute(d); ok {
				value = v
			}
		}

		if d.Get(r.Output) != value {
			d.SetDerived(r.Output, value)
		}
		dirty[r.Output] = true
		touched = append(touched, r.Output)
	}

	return touched
}
