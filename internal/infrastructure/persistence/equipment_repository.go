package persistence

import (
	"context"
	"database/sql"

	"github.com/ppgarage/backoffice/internal/domain/models"
)

type EquipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

const equipmentColumns = "id, nombre, marca, modelo, precio, fecha_compra, garantia_meses, estado, notas, created_at"

// FindAll lists equipment newest-first.
func (r *EquipmentRepository) FindAll(ctx context.Context) ([]models.Equipment, error) {
	query := "SELECT " + equipmentColumns + " FROM gastos_maquinas ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipment := make([]models.Equipment, 0)
	for rows.Next() {
		var m models.Equipment
		var brand, model, notes sql.NullString
		var warranty sql.NullInt64

		if err := rows.Scan(&m.ID, &m.Name, &brand, &model, &m.Price, &m.PurchaseDate, &warranty, &m.Status, &notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		if brand.Valid {
			m.Brand = &brand.String
		}
		if model.Valid {
			m.Model = &model.String
		}
		if notes.Valid {
			m.Notes = &notes.String
		}
		if warranty.Valid {
			months := int(warranty.Int64)
			m.WarrantyMonths = &months
		}
		equipment = append(equipment, m)
	}
	return equipment, rows.Err()
}

// Insert stores a new equipment purchase.
func (r *EquipmentRepository) Insert(ctx context.Context, m *models.Equipment) error {
	query := `INSERT INTO gastos_maquinas (nombre, marca, modelo, precio, fecha_compra, garantia_meses, estado, notas)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	var brand, model, notes, warranty interface{}
	if m.Brand != nil {
		brand = *m.Brand
	}
	if m.Model != nil {
		model = *m.Model
	}
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.WarrantyMonths != nil {
		warranty = *m.WarrantyMonths
	}

	res, err := r.db.ExecContext(ctx, query, m.Name, brand, model, m.Price, m.PurchaseDate.Format("2006-01-02"), warranty, m.Status, notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// Delete removes an equipment row. Deleting an absent id is not an error.
func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM gastos_maquinas WHERE id = ?", id)
	return err
}

// SumPrices totals precio over all equipment.
func (r *EquipmentRepository) SumPrices(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx, "SELECT SUM(precio) FROM gastos_maquinas").Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
