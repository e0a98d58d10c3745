package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

func expectSnapshotTable(mock sqlmock.Sqlmock, present bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if present {
		rows.AddRow("draft_snapshots")
	}
	mock.ExpectQuery("information_schema.tables").
		WithArgs("draft_snapshots").
		WillReturnRows(rows)
}

func TestSnapshotSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	expectSnapshotTable(mock, true)
	mock.ExpectExec("INSERT INTO draft_snapshots").
		WithArgs("d1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	d := models.TransactionDraft{ID: "d1", Mode: models.ModeAdhoc}
	if err := (SnapshotRepository{DB: db}).Save(d); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSnapshotSaveNoOpWithoutTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	expectSnapshotTable(mock, false)

	d := models.TransactionDraft{ID: "d1", Mode: models.ModeFixed}
	if err := (SnapshotRepository{DB: db}).Save(d); err != nil {
		t.Fatalf("Save should degrade to a no-op, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSnapshotLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	expectSnapshotTable(mock, true)
	mock.ExpectQuery("SELECT payload FROM draft_snapshots").
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).
			AddRow(`{"id":"d1","mode":"adhoc","trip":{"opening_km":"100"}}`))

	d, err := SnapshotRepository{DB: db}.Load("d1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.ID != "d1" || d.Mode != models.ModeAdhoc || d.Trip.OpeningKM != "100" {
		t.Fatalf("decoded draft = %+v", d)
	}
}

func TestSnapshotLoadMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	expectSnapshotTable(mock, true)
	mock.ExpectQuery("SELECT payload FROM draft_snapshots").
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	if _, err := (SnapshotRepository{DB: db}).Load("gone"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSnapshotDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	expectSnapshotTable(mock, true)
	mock.ExpectExec("DELETE FROM draft_snapshots").
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (SnapshotRepository{DB: db}).Delete("d1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
