package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "fleetops/internal/config"
	intdb "fleetops/internal/db"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/utils"
)

// SnapshotRepository stores whole-draft JSON snapshots for crash recovery.
// It satisfies draft.SnapshotSink. Snapshotting is a convenience: when the
// table has not been migrated yet, saves degrade to no-ops rather than
// blocking form edits.
type SnapshotRepository struct {
	DB *sql.DB
}

func (r SnapshotRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SnapshotRepository) Save(d models.TransactionDraft) error {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "draft_snapshots") {
		return nil
	}

	payload, err := json.Marshal(d)
	if err != nil {
		return domain.InternalError{Msg: "encode snapshot", Err: err}
	}

	_, err = db.Exec(`
		INSERT INTO draft_snapshots (draft_id, payload, updated_at)
		VALUES (?,?,?)
		ON DUPLICATE KEY UPDATE payload=VALUES(payload), updated_at=VALUES(updated_at)`,
		d.ID, string(payload), utils.FormatDateTime(utils.NowLocal()),
	)
	return err
}

func (r SnapshotRepository) Load(id string) (models.TransactionDraft, error) {
	var d models.TransactionDraft
	db := r.db()
	if db == nil || !intdb.HasTable(db, "draft_snapshots") {
		return d, domain.NotFoundError{Resource: "draft snapshot"}
	}

	var payload string
	err := db.QueryRow(`SELECT payload FROM draft_snapshots WHERE draft_id=? LIMIT 1`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "draft snapshot"}
	}
	if err != nil {
		return d, err
	}

	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return d, domain.InternalError{Msg: "decode snapshot", Err: err}
	}
	return d, nil
}

func (r SnapshotRepository) Delete(id string) error {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "draft_snapshots") {
		return nil
	}
	_, err := db.Exec(`DELETE FROM draft_snapshots WHERE draft_id=?`, id)
	return err
}
