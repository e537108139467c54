package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/ppgarage/backoffice/internal/domain/models"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = "id, nombre, servicio, montoCobrado, tipo_tratamiento, fecha_ultimo_tratamiento, frecuencia_recomendada, notas_tratamiento"

// FindAll lists clients. Sort accepts amount_desc / amount_asc; the default
// order is id descending (insertion order, newest first).
func (r *ClientRepository) FindAll(ctx context.Context, sort string) ([]models.Client, error) {
	query := "SELECT " + clientColumns + " FROM clientes"

	switch sort {
	case "amount_desc":
		query += " ORDER BY montoCobrado DESC"
	case "amount_asc":
		query += " ORDER BY montoCobrado ASC"
	default:
		query += " ORDER BY id DESC"
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		var c models.Client
		var lastTreatment sql.NullTime
		var notes sql.NullString

		if err := rows.Scan(&c.ID, &c.Name, &c.Service, &c.AmountCharged, &c.TreatmentType, &lastTreatment, &c.FrequencyDays, &notes); err != nil {
			return nil, err
		}
		if lastTreatment.Valid {
			c.LastTreatment = &lastTreatment.Time
		}
		if notes.Valid {
			c.Notes = &notes.String
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Insert stores a new client record.
func (r *ClientRepository) Insert(ctx context.Context, c *models.Client) error {
	query := `INSERT INTO clientes (nombre, servicio, montoCobrado, tipo_tratamiento, fecha_ultimo_tratamiento, frecuencia_recomendada, notas_tratamiento)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	var lastTreatment interface{}
	if c.LastTreatment != nil {
		lastTreatment = c.LastTreatment.Format("2006-01-02")
	}
	var notes interface{}
	if c.Notes != nil {
		notes = *c.Notes
	}

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Service, c.AmountCharged, c.TreatmentType, lastTreatment, c.FrequencyDays, notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Delete removes a client row. Deleting an absent id is not an error.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM clientes WHERE id = ?", id)
	return err
}

// SetLastTreatment records the last treatment date. Both "mark as done" and
// "reschedule" map here; past-vs-future interpretation is the caller's.
func (r *ClientRepository) SetLastTreatment(ctx context.Context, id int64, date time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE clientes SET fecha_ultimo_tratamiento = ? WHERE id = ?", date.Format("2006-01-02"), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SumAmountsCharged totals montoCobrado over all clients.
func (r *ClientRepository) SumAmountsCharged(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx, "SELECT SUM(montoCobrado) FROM clientes").Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
