package services

import (
	"fmt"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/draft"
	"fleetops/internal/repositories"
	"fleetops/internal/tripcalc"
	"fleetops/internal/utils"
	"fleetops/internal/validation"
)

// DraftService orchestrates one form session: field writes trigger the
// recalculation pass, mode switches run the advance-request-number guard,
// and submit validates, serializes and persists the draft.
type DraftService struct {
	Drafts    *draft.Manager
	ARN       draft.ARNGenerator
	Snapshots draft.SnapshotSink
	TxnRepo   repositories.TransactionRepository
	RequestID string

	// SaveTransaction overrides the repository write in tests.
	SaveTransaction func(models.TransactionRecord) (int64, error)
}

// FieldChange is the outcome of one field write: the updated draft plus
// the derived fields the engine touched, for the form to refresh.
type FieldChange struct {
	Draft   *models.TransactionDraft `json:"draft"`
	Touched []models.Field           `json:"touched"`
}

// SubmitResult carries either the persisted transaction id or the
// validation outcome that blocked the submit.
type SubmitResult struct {
	TransactionID int64             `json:"transaction_id,omitempty"`
	Payload       map[string]string `json:"payload,omitempty"`
	Validation    validation.Result `json:"validation"`
}

// CreateDraft opens an empty draft. Drafts created directly in
// Adhoc/Replacement mode get their advance request number immediately.
func (s DraftService) CreateDraft(mode models.TransactionMode) (*models.TransactionDraft, error) {
	d, err := s.Drafts.Create(mode)
	if err != nil {
		return nil, err
	}
	s.ARN.ApplyModeTransition(d)
	utils.LogEvent(s.RequestID, "draft", "create", fmt.Sprintf("draft_id=%s mode=%s", d.ID, d.Mode))
	s.snapshot(d)
	return d, nil
}

func (s DraftService) GetDraft(id string) (*models.TransactionDraft, error) {
	return s.Drafts.Get(id)
}

// ApplyFieldChange writes one raw field and re-derives everything that
// depends on it. Derived fields are presentation-read-only; writes to
// them are rejected here.
func (s DraftService) ApplyFieldChange(id string, field models.Field, value string) (FieldChange, error) {
	d, err := s.Drafts.Get(id)
	if err != nil {
		return FieldChange{}, err
	}
	if err := d.SetRaw(field, value); err != nil {
		return FieldChange{}, err
	}

	touched := tripcalc.Recalculate(d, field)
	d.UpdatedAt = utils.NowLocal()
	s.snapshot(d)
	return FieldChange{Draft: d, Touched: touched}, nil
}

// SwitchMode moves the draft between Fixed and Adhoc/Replacement. The
// advance request number is generated once on first entry into
// Adhoc/Replacement and blanked on return to Fixed; the full derivation
// table is re-run because rule applicability changes with the mode.
func (s DraftService) SwitchMode(id string, mode models.TransactionMode) (*models.TransactionDraft, error) {
	if !mode.Valid() {
		return nil, domain.ValidationError{Field: "mode", Msg: "must be fixed, adhoc or replacement"}
	}
	d, err := s.Drafts.Get(id)
	if err != nil {
		return nil, err
	}

	d.Mode = mode
	s.ARN.ApplyModeTransition(d)
	tripcalc.RecalculateAll(d)
	d.UpdatedAt = utils.NowLocal()

	utils.LogEvent(s.RequestID, "draft", "switch_mode", fmt.Sprintf("draft_id=%s mode=%s", d.ID, mode))
	s.snapshot(d)
	return d, nil
}

// Submit validates the draft and, when clean, hands the serialized payload
// to persistence. A failed persistence write leaves the draft untouched so
// the user can retry.
func (s DraftService) Submit(id string) (SubmitResult, error) {
	d, err := s.Drafts.Get(id)
	if err != nil {
		return SubmitResult{}, err
	}

	res := validation.Validate(d)
	if !res.Valid {
		utils.LogEvent(s.RequestID, "draft", "submit_blocked",
			fmt.Sprintf("draft_id=%s errors=%d first=%s", d.ID, len(res.Errors), res.First))
		return SubmitResult{Validation: res}, nil
	}

	rec := BuildRecord(d)
	txnID, err := s.save(rec)
	if err != nil {
		// draft stays as-is for retry
		return SubmitResult{}, err
	}

	s.Drafts.Delete(d.ID)
	if s.Snapshots != nil {
		if err := s.Snapshots.Delete(d.ID); err != nil {
			utils.LogEvent(s.RequestID, "draft", "snapshot_delete_failed", err.Error())
		}
	}

	utils.LogEvent(s.RequestID, "draft", "submit", fmt.Sprintf("draft_id=%s transaction_id=%d", d.ID, txnID))
	return SubmitResult{TransactionID: txnID, Payload: rec.Payload, Validation: res}, nil
}

// Discard drops the draft and its snapshot (explicit cancel).
func (s DraftService) Discard(id string) error {
	if _, err := s.Drafts.Get(id); err != nil {
		return err
	}
	s.Drafts.Delete(id)
	if s.Snapshots != nil {
		if err := s.Snapshots.Delete(id); err != nil {
			utils.LogEvent(s.RequestID, "draft", "snapshot_delete_failed", err.Error())
		}
	}
	utils.LogEvent(s.RequestID, "draft", "discard", "draft_id="+id)
	return nil
}

// Restore brings a snapshotted draft back into the active session store
// and re-derives everything (derivation rules may have moved on since the
// snapshot was written).
func (s DraftService) Restore(id string) (*models.TransactionDraft, error) {
	if s.Snapshots == nil {
		return nil, domain.NotFoundError{Resource: "draft snapshot"}
	}
	snap, err := s.Snapshots.Load(id)
	if err != nil {
		return nil, err
	}

	d := snap.Clone()
	restored := &d
	tripcalc.RecalculateAll(restored)
	s.Drafts.Put(restored)

	utils.LogEvent(s.RequestID, "draft", "restore", "draft_id="+id)
	return restored, nil
}

func (s DraftService) save(rec models.TransactionRecord) (int64, error) {
	if s.SaveTransaction != nil {
		return s.SaveTransaction(rec)
	}
	return s.TxnRepo.Insert(rec)
}

func (s DraftService) snapshot(d *models.TransactionDraft) {
	if s.Snapshots == nil {
		return
	}
	if err := s.Snapshots.Save(d.Clone()); err != nil {
		// snapshots are a convenience; never block the edit
		utils.LogEvent(s.RequestID, "draft", "snapshot_failed", err.Error())
	}
}
