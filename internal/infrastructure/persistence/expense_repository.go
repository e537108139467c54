package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/ppgarage/backoffice/internal/domain/models"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = "id, descripcion, monto, cantidadEnLts, fecha, estado, cantidad_lavados, notas, fecha_termino"

func scanExpense(scanner interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	var e models.Expense
	var liters sql.NullFloat64
	var notes sql.NullString
	var retiredAt sql.NullTime

	if err := scanner.Scan(&e.ID, &e.Description, &e.Amount, &liters, &e.Date, &e.Status, &e.UsageCount, &notes, &retiredAt); err != nil {
		return nil, err
	}
	if liters.Valid {
		e.Liters = &liters.Float64
	}
	if notes.Valid {
		e.Notes = &notes.String
	}
	if retiredAt.Valid {
		e.RetiredAt = &retiredAt.Time
	}
	return &e, nil
}

// FindActive lists active expenses with optional conjunctive date bounds.
// Sort accepts amount_desc / amount_asc; anything else falls back to the
// default date-descending order.
func (r *ExpenseRepository) FindActive(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM gastos WHERE estado = ?"
	args := []interface{}{models.ExpenseStatusActive}

	if filter.DateFrom != nil {
		query += " AND fecha >= ?"
		args = append(args, filter.DateFrom.Format("2006-01-02"))
	}
	if filter.DateTo != nil {
		query += " AND fecha <= ?"
		args = append(args, filter.DateTo.Format("2006-01-02"))
	}

	switch filter.Sort {
	case "amount_desc":
		query += " ORDER BY monto DESC"
	case "amount_asc":
		query += " ORDER BY monto ASC"
	default:
		query += " ORDER BY fecha DESC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

// FindRetired lists retired expenses ordered by retirement date, newest first.
func (r *ExpenseRepository) FindRetired(ctx context.Context) ([]models.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM gastos WHERE estado = ? ORDER BY fecha_termino DESC"

	rows, err := r.db.QueryContext(ctx, query, models.ExpenseStatusRetired)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

// FindByID returns the expense or nil when the id is absent.
func (r *ExpenseRepository) FindByID(ctx context.Context, id int64) (*models.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM gastos WHERE id = ? LIMIT 1"

	e, err := scanExpense(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Insert stores a new expense; status is always forced to activo.
func (r *ExpenseRepository) Insert(ctx context.Context, e *models.Expense) error {
	query := "INSERT INTO gastos (descripcion, monto, cantidadEnLts, fecha, estado) VALUES (?, ?, ?, ?, ?)"

	var liters interface{}
	if e.Liters != nil {
		liters = *e.Liters
	}

	res, err := r.db.ExecContext(ctx, query, e.Description, e.Amount, liters, e.Date.Format("2006-01-02"), models.ExpenseStatusActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id
	e.Status = models.ExpenseStatusActive
	return nil
}

// Retire performs the activo→terminado transition. The estado guard in the
// WHERE clause makes the transition one-directional: a second retire matches
// zero rows. Returns the number of rows updated.
func (r *ExpenseRepository) Retire(ctx context.Context, id int64, usageCount int, notes *string, retiredAt time.Time) (int64, error) {
	query := "UPDATE gastos SET estado = ?, cantidad_lavados = ?, notas = ?, fecha_termino = ? WHERE id = ? AND estado = ?"

	var n interface{}
	if notes != nil {
		n = *notes
	}

	res, err := r.db.ExecContext(ctx, query,
		models.ExpenseStatusRetired, usageCount, n, retiredAt.Format("2006-01-02"), id, models.ExpenseStatusActive)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByStatus removes the row only when it has the given status; an id in
// any other state is left untouched and zero rows are reported.
func (r *ExpenseRepository) DeleteByStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM gastos WHERE id = ? AND estado = ?", id, status)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SumActiveAmounts totals monto over every active expense, unfiltered.
func (r *ExpenseRepository) SumActiveAmounts(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx, "SELECT SUM(monto) FROM gastos WHERE estado = ?", models.ExpenseStatusActive).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
