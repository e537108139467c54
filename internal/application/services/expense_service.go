package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

// ExpenseService owns the gastos lifecycle: creation, filtered listing, the
// one-way retire transition with its cost-per-use derivation, and the two
// status-guarded deletes.
type ExpenseService struct {
	repo *persistence.ExpenseRepository
}

func NewExpenseService(repo *persistence.ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

const dateLayout = "2006-01-02"

// CostPerUse divides amount by usage count and rounds half-up to 2 decimal
// places. Zero usages means zero cost, never a division.
func CostPerUse(amount float64, usageCount int) float64 {
	if usageCount <= 0 {
		return 0
	}
	return decimal.NewFromFloat(amount).
		Div(decimal.NewFromInt(int64(usageCount))).
		Round(2).
		InexactFloat64()
}

// ListFilter carries the raw query values for the active-expense listing.
type ListFilter struct {
	DateFrom string
	DateTo   string
	Sort     string
}

// List returns active expenses, date-bounded and ordered per the filter.
func (s *ExpenseService) List(ctx context.Context, filter ListFilter) ([]models.Expense, error) {
	f := models.ExpenseFilter{Sort: filter.Sort}

	if filter.DateFrom != "" {
		t, err := time.Parse(dateLayout, filter.DateFrom)
		if err != nil {
			return nil, apperrors.NewValidationError("fechaDesde", "must be a date in YYYY-MM-DD format")
		}
		f.DateFrom = &t
	}
	if filter.DateTo != "" {
		t, err := time.Parse(dateLayout, filter.DateTo)
		if err != nil {
			return nil, apperrors.NewValidationError("fechaHasta", "must be a date in YYYY-MM-DD format")
		}
		f.DateTo = &t
	}

	expenses, err := s.repo.FindActive(ctx, f)
	if err != nil {
		return nil, apperrors.NewStorageError("list expenses", err)
	}
	return expenses, nil
}

// ListRetired returns retired expenses newest-retirement-first, each with
// its derived per-use cost.
func (s *ExpenseService) ListRetired(ctx context.Context) ([]models.RetiredExpense, error) {
	expenses, err := s.repo.FindRetired(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("list retired expenses", err)
	}

	retired := make([]models.RetiredExpense, 0, len(expenses))
	for _, e := range expenses {
		retired = append(retired, models.RetiredExpense{
			Expense:    e,
			CostPerUse: CostPerUse(e.Amount, e.UsageCount),
		})
	}
	return retired, nil
}

// CreateExpenseRequest carries the fields of the agregar-gasto form.
type CreateExpenseRequest struct {
	Description string
	Amount      float64
	Liters      *float64
	Date        string
}

// Create inserts a new expense with status forced to activo.
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*models.Expense, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("descripcion", "is required")
	}
	if req.Amount <= 0 {
		return nil, apperrors.NewValidationError("monto", "must be greater than zero")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("fecha", "must be a date in YYYY-MM-DD format")
	}

	expense := &models.Expense{
		Description: description,
		Amount:      req.Amount,
		Liters:      req.Liters,
		Date:        date,
	}
	if err := s.repo.Insert(ctx, expense); err != nil {
		return nil, apperrors.NewStorageError("create expense", err)
	}
	return expense, nil
}

// RetireResult reports the derived cost of the retired consumable.
type RetireResult struct {
	CostPerUse float64 `json:"costo_por_lavado"`
}

// Retire transitions an active expense to terminado, recording its usage
// count and notes. The transition is one-directional: retiring an absent id
// fails with NotFound, an already-retired one with Conflict.
func (s *ExpenseService) Retire(ctx context.Context, id int64, usageCount int, notes string) (*RetireResult, error) {
	if usageCount < 0 {
		return nil, apperrors.NewValidationError("cantidad_lavados", "must not be negative")
	}

	var notesPtr *string
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		notesPtr = &trimmed
	}

	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError("retire expense", err)
	}
	if expense == nil {
		return nil, apperrors.NewNotFoundError("expense", strconv.FormatInt(id, 10))
	}

	rows, err := s.repo.Retire(ctx, id, usageCount, notesPtr, time.Now())
	if err != nil {
		return nil, apperrors.NewStorageError("retire expense", err)
	}
	if rows == 0 {
		// The estado guard matched nothing: the row was already retired.
		return nil, apperrors.NewConflictError("expense", "estado", models.ExpenseStatusRetired)
	}

	return &RetireResult{CostPerUse: CostPerUse(expense.Amount, usageCount)}, nil
}

// Delete removes an active expense. Rows in any other state survive.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.DeleteByStatus(ctx, id, models.ExpenseStatusActive); err != nil {
		return apperrors.NewStorageError("delete expense", err)
	}
	return nil
}

// DeleteRetired removes a retired expense. An active or absent id is a
// no-op, not an error.
func (s *ExpenseService) DeleteRetired(ctx context.Context, id int64) error {
	if _, err := s.repo.DeleteByStatus(ctx, id, models.ExpenseStatusRetired); err != nil {
		return apperrors.NewStorageError("delete retired expense", err)
	}
	return nil
}
