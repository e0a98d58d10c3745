package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
)

// TransactionRepository persists submitted trip transactions. The full
// flat submit payload is stored alongside a few indexed summary columns.
type TransactionRepository struct {
	DB *sql.DB
}

func (r TransactionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores one submitted draft payload and returns the new row id.
func (r TransactionRepository) Insert(rec models.TransactionRecord) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "db not available"}
	}

	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return 0, domain.InternalError{Msg: "encode payload", Err: err}
	}

	res, err := db.Exec(`
		INSERT INTO trip_transactions
			(mode, txn_date, trip_no, vehicle_number, driver_name,
			 total_km, total_freight, advance_request_no, payload)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.Mode,
		rec.Date,
		rec.TripNo,
		rec.VehicleNumber,
		rec.DriverName,
		rec.TotalKM,
		rec.TotalFreight,
		rec.Payload["advance_request_no"],
		string(payload),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns summaries filtered by mode and inclusive date range; blank
// filters are skipped.
func (r TransactionRepository) List(mode, startDate, endDate string) ([]models.TransactionSummary, error) {
	db := r.db()
	if db == nil {
		return []models.TransactionSummary{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if m := strings.TrimSpace(mode); m != "" {
		where = append(where, "mode=?")
		args = append(args, m)
	}
	if s := strings.TrimSpace(startDate); s != "" {
		where = append(where, "txn_date>=?")
		args = append(args, s)
	}
	if e := strings.TrimSpace(endDate); e != "" {
		where = append(where, "txn_date<=?")
		args = append(args, e)
	}

	rows, err := db.Query(`
		SELECT id, mode, COALESCE(txn_date,''), COALESCE(trip_no,''),
		       COALESCE(vehicle_number,''), COALESCE(driver_name,''),
		       COALESCE(total_km,''), COALESCE(total_freight,''),
		       COALESCE(created_at,'')
		FROM trip_transactions
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY txn_date ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TransactionSummary{}
	for rows.Next() {
		var rec models.TransactionSummary
		if err := rows.Scan(
			&rec.ID,
			&rec.Mode,
			&rec.Date,
			&rec.TripNo,
			&rec.VehicleNumber,
			&rec.DriverName,
			&rec.TotalKM,
			&rec.TotalFreight,
			&rec.CreatedAt,
		); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetByID loads one saved transaction including its full payload.
func (r TransactionRepository) GetByID(id int64) (models.TransactionRecord, error) {
	var rec models.TransactionRecord
	db := r.db()
	if db == nil || id <= 0 {
		return rec, domain.NotFoundError{Resource: "transaction"}
	}

	var payload string
	err := db.QueryRow(`
		SELECT id, mode, COALESCE(txn_date,''), COALESCE(trip_no,''),
		       COALESCE(vehicle_number,''), COALESCE(driver_name,''),
		       COALESCE(total_km,''), COALESCE(total_freight,''),
		       COALESCE(created_at,''), COALESCE(payload,'{}')
		FROM trip_transactions WHERE id=? LIMIT 1`, id).Scan(
		&rec.ID,
		&rec.Mode,
		&rec.Date,
		&rec.TripNo,
		&rec.VehicleNumber,
		&rec.DriverName,
		&rec.TotalKM,
		&rec.TotalFreight,
		&rec.CreatedAt,
		&payload,
	)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: "transaction"}
	}
	if err != nil {
		return rec, err
	}

	rec.Payload = map[string]string{}
	if err := json.Unmarshal([]byte(payload), &rec.Payload); err != nil {
		return rec, domain.InternalError{Msg: "decode payload", Err: err}
	}
	return rec, nil
}

func (r TransactionRepository) Delete(id int64) error {
	db := r.db()
	if db == nil || id <= 0 {
		return domain.NotFoundError{Resource: "transaction"}
	}
	res, err := db.Exec(`DELETE FROM trip_transactions WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "transaction"}
	}
	return nil
}
