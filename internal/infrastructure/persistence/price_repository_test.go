package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/ppgarage/backoffice/internal/domain/models"
)

func priceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "nombre_servicio", "precio", "descripcion", "activo"})
}

func TestFindActiveExcludesInactive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceRepository(db)

	// The WHERE activo = TRUE clause is part of the statement itself
	query := "SELECT " + priceColumns + " FROM precios_servicios WHERE activo = TRUE ORDER BY nombre_servicio ASC"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(priceRows().
			AddRow(1, "cera", 8000.0, nil, true).
			AddRow(2, "lavado_premium", 12000.0, "Incluye interior", true))

	prices, err := repo.FindActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, prices, 2)
	assert.Equal(t, "cera", prices[0].Name)
	assert.Nil(t, prices[0].Description)
	assert.Equal(t, "Incluye interior", *prices[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceRepository(db)

	query := "SELECT " + priceColumns + " FROM precios_servicios WHERE id = ? LIMIT 1"
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(42)).WillReturnRows(priceRows())

	price, err := repo.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, price)
}

func TestInsertDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceRepository(db)

	query := "INSERT INTO precios_servicios (nombre_servicio, precio, descripcion, activo) VALUES (?, ?, ?, TRUE)"
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("cera", 8000.0, nil).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'cera'"})

	err = repo.Insert(context.Background(), &models.ServicePrice{Name: "cera", Price: 8000})
	assert.Error(t, err)
	assert.True(t, IsDuplicateEntry(err))
}

func TestIsDuplicateEntryIgnoresOtherErrors(t *testing.T) {
	assert.False(t, IsDuplicateEntry(nil))
	assert.False(t, IsDuplicateEntry(context.Canceled))
	assert.False(t, IsDuplicateEntry(&mysql.MySQLError{Number: 1146}))
}

func TestUpdatePriceReportsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPriceRepository(db)

	query := "UPDATE precios_servicios SET precio = ? WHERE id = ?"
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(9500.0, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdatePrice(context.Background(), 3, 9500)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}
