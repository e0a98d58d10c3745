package repositories

import (
	"database/sql"
	"strings"

	intconfig "fleetops/internal/config"
	"fleetops/internal/domain/models"
)

// LookupRepository serves master-data option lists for the form's
// dropdown/search widgets. The core only consumes the selected ids; it
// never writes these tables.
type LookupRepository struct {
	DB *sql.DB
}

func (r LookupRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r LookupRepository) Customers(q string) ([]models.Option, error) {
	return r.options(`SELECT id, COALESCE(name,''), '' FROM customers`, "name", q)
}

func (r LookupRepository) Projects(customerID int64) ([]models.Option, error) {
	db := r.db()
	if db == nil {
		return []models.Option{}, nil
	}
	rows, err := db.Query(`
		SELECT id, COALESCE(name,''), ''
		FROM projects WHERE customer_id=? ORDER BY name ASC LIMIT 100`, customerID)
	if err != nil {
		return nil, err
	}
	return scanOptions(rows)
}

func (r LookupRepository) Vehicles(q string) ([]models.Option, error) {
	return r.options(`SELECT id, COALESCE(vehicle_number,''), COALESCE(vehicle_type,'') FROM vehicles`, "vehicle_number", q)
}

func (r LookupRepository) Drivers(q string) ([]models.Option, error) {
	return r.options(`SELECT id, COALESCE(name,''), COALESCE(phone,'') FROM drivers`, "name", q)
}

func (r LookupRepository) Vendors(q string) ([]models.Option, error) {
	return r.options(`SELECT id, COALESCE(name,''), COALESCE(phone,'') FROM vendors`, "name", q)
}

func (r LookupRepository) options(baseSelect, searchCol, q string) ([]models.Option, error) {
	db := r.db()
	if db == nil {
		return []models.Option{}, nil
	}

	query := baseSelect
	args := []any{}
	if s := strings.TrimSpace(q); s != "" {
		query += ` WHERE ` + searchCol + ` LIKE ?`
		args = append(args, "%"+s+"%")
	}
	query += ` ORDER BY ` + searchCol + ` ASC LIMIT 100`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanOptions(rows)
}

func scanOptions(rows *sql.Rows) ([]models.Option, error) {
	defer rows.Close()
	out := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Name, &opt.Code); err != nil {
			return out, err
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}
