package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

func newExpenseService(t *testing.T) (*ExpenseService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewExpenseService(persistence.NewExpenseRepository(db)), mock
}

func TestCostPerUse(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		usageCount int
		want       float64
	}{
		{"even division", 5000, 10, 500.00},
		{"rounds to 2 decimals", 100, 3, 33.33},
		{"rounds half up", 50, 8, 6.25},
		{"repeating decimal", 1000, 7, 142.86},
		{"zero usages means zero cost", 5000, 0, 0},
		{"negative guard", 5000, -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CostPerUse(tt.amount, tt.usageCount))
		})
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	svc, _ := newExpenseService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateExpenseRequest{Description: "  ", Amount: 100, Date: "2024-01-01"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, CreateExpenseRequest{Description: "Shampoo", Amount: 0, Date: "2024-01-01"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, CreateExpenseRequest{Description: "Shampoo", Amount: 100, Date: "01/01/2024"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateExpenseForcesActiveStatus(t *testing.T) {
	svc, mock := newExpenseService(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gastos (descripcion, monto, cantidadEnLts, fecha, estado) VALUES (?, ?, ?, ?, ?)")).
		WithArgs("Shampoo", 5000.0, 2.0, "2024-01-01", models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(1, 1))

	liters := 2.0
	expense, err := svc.Create(context.Background(), CreateExpenseRequest{
		Description: "Shampoo",
		Amount:      5000,
		Liters:      &liters,
		Date:        "2024-01-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), expense.ID)
	assert.Equal(t, models.ExpenseStatusActive, expense.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetireComputesCostPerUse(t *testing.T) {
	svc, mock := newExpenseService(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE id = \\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descripcion", "monto", "cantidadEnLts", "fecha", "estado", "cantidad_lavados", "notas", "fecha_termino"}).
			AddRow(1, "Shampoo", 5000.0, 2.0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "activo", 0, nil, nil))

	// Notes of only whitespace are stored as NULL
	mock.ExpectExec("UPDATE gastos SET estado = \\?").
		WithArgs(models.ExpenseStatusRetired, 10, nil, sqlmock.AnyArg(), int64(1), models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := svc.Retire(context.Background(), 1, 10, "   ")
	assert.NoError(t, err)
	assert.Equal(t, 500.00, result.CostPerUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetireZeroUsagesYieldsZeroCost(t *testing.T) {
	svc, mock := newExpenseService(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE id = \\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descripcion", "monto", "cantidadEnLts", "fecha", "estado", "cantidad_lavados", "notas", "fecha_termino"}).
			AddRow(1, "Shampoo", 5000.0, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "activo", 0, nil, nil))

	mock.ExpectExec("UPDATE gastos SET estado = \\?").
		WithArgs(models.ExpenseStatusRetired, 0, nil, sqlmock.AnyArg(), int64(1), models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := svc.Retire(context.Background(), 1, 0, "")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.CostPerUse)
}

func TestRetireNotFound(t *testing.T) {
	svc, mock := newExpenseService(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE id = \\? LIMIT 1").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Retire(context.Background(), 99, 10, "")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRetireAlreadyRetiredConflicts(t *testing.T) {
	svc, mock := newExpenseService(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE id = \\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descripcion", "monto", "cantidadEnLts", "fecha", "estado", "cantidad_lavados", "notas", "fecha_termino"}).
			AddRow(1, "Shampoo", 5000.0, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "terminado", 10, nil, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))

	// The estado guard in the UPDATE matches no rows
	mock.ExpectExec("UPDATE gastos SET estado = \\?").
		WithArgs(models.ExpenseStatusRetired, 5, nil, sqlmock.AnyArg(), int64(1), models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.Retire(context.Background(), 1, 5, "")
	assert.True(t, apperrors.IsConflict(err))
}

func TestRetireRejectsNegativeUsageCount(t *testing.T) {
	svc, _ := newExpenseService(t)

	_, err := svc.Retire(context.Background(), 1, -1, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestListRetiredDerivesCost(t *testing.T) {
	svc, mock := newExpenseService(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE estado = \\? ORDER BY fecha_termino DESC").
		WithArgs(models.ExpenseStatusRetired).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descripcion", "monto", "cantidadEnLts", "fecha", "estado", "cantidad_lavados", "notas", "fecha_termino"}).
			AddRow(1, "Shampoo", 5000.0, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "terminado", 10, nil, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).
			AddRow(2, "Cera", 3000.0, nil, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "terminado", 0, nil, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)))

	retired, err := svc.ListRetired(context.Background())
	assert.NoError(t, err)
	assert.Len(t, retired, 2)
	assert.Equal(t, 500.00, retired[0].CostPerUse)
	assert.Equal(t, 0.0, retired[1].CostPerUse)
}

func TestListRejectsMalformedDates(t *testing.T) {
	svc, _ := newExpenseService(t)

	_, err := svc.List(context.Background(), ListFilter{DateFrom: "not-a-date"})
	assert.True(t, apperrors.IsValidation(err))
}
