package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/ppgarage/backoffice/internal/domain/models"
)

type PriceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

const mysqlErrDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is the driver's duplicate-key error,
// raised by the UNIQUE KEY on nombre_servicio.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

const priceColumns = "id, nombre_servicio, precio, descripcion, activo"

func scanPrice(scanner interface{ Scan(...interface{}) error }) (*models.ServicePrice, error) {
	var p models.ServicePrice
	var description sql.NullString

	if err := scanner.Scan(&p.ID, &p.Name, &p.Price, &description, &p.Active); err != nil {
		return nil, err
	}
	if description.Valid {
		p.Description = &description.String
	}
	return &p, nil
}

// FindActive lists active prices ordered by normalized name.
func (r *PriceRepository) FindActive(ctx context.Context) ([]models.ServicePrice, error) {
	query := "SELECT " + priceColumns + " FROM precios_servicios WHERE activo = TRUE ORDER BY nombre_servicio ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]models.ServicePrice, 0)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		prices = append(prices, *p)
	}
	return prices, rows.Err()
}

// FindByID returns the price row or nil when the id is absent.
func (r *PriceRepository) FindByID(ctx context.Context, id int64) (*models.ServicePrice, error) {
	query := "SELECT " + priceColumns + " FROM precios_servicios WHERE id = ? LIMIT 1"

	p, err := scanPrice(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Insert stores a new price entry; failures from the uniqueness constraint
// surface as a driver duplicate-entry error (see IsDuplicateEntry).
func (r *PriceRepository) Insert(ctx context.Context, p *models.ServicePrice) error {
	query := "INSERT INTO precios_servicios (nombre_servicio, precio, descripcion, activo) VALUES (?, ?, ?, TRUE)"

	var description interface{}
	if p.Description != nil {
		description = *p.Description
	}

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	p.Active = true
	return nil
}

// Update rewrites name, price and description in place.
func (r *PriceRepository) Update(ctx context.Context, p *models.ServicePrice) error {
	query := "UPDATE precios_servicios SET nombre_servicio = ?, precio = ?, descripcion = ? WHERE id = ?"

	var description interface{}
	if p.Description != nil {
		description = *p.Description
	}

	_, err := r.db.ExecContext(ctx, query, p.Name, p.Price, description, p.ID)
	return err
}

// UpdatePrice changes only the numeric value. Returns the rows updated.
func (r *PriceRepository) UpdatePrice(ctx context.Context, id int64, price float64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE precios_servicios SET precio = ? WHERE id = ?", price, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a price row by id.
func (r *PriceRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM precios_servicios WHERE id = ?", id)
	return err
}
