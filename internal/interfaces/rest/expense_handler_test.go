package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppgarage/backoffice/internal/domain/models"
)

var expenseCols = []string{"id", "descripcion", "monto", "cantidadEnLts", "fecha", "estado", "cantidad_lavados", "notas", "fecha_termino"}

func TestCreateExpenseFormRedirectsToDashboard(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectExec("INSERT INTO gastos").
		WithArgs("Shampoo pH neutro", 12000.0, 5.0, "2024-06-10", models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(1, 1))

	form := url.Values{}
	form.Set("descripcion", "Shampoo pH neutro")
	form.Set("monto", "12000")
	form.Set("cantidadEnLts", "5")
	form.Set("fecha", "2024-06-10")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/agregar-gasto", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetireExpenseReturnsCostPerUse(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE id = \\? LIMIT 1").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(expenseCols).
			AddRow(4, "Shampoo pH neutro", 1000.0, 5.0, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), models.ExpenseStatusActive, 0, nil, nil))
	mock.ExpectExec("UPDATE gastos SET estado = \\?").
		WithArgs(models.ExpenseStatusRetired, 7, nil, sqlmock.AnyArg(), int64(4), models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(map[string]interface{}{"id": 4, "cantidad_lavados": 7})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/dar-baja-producto", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.InDelta(t, 142.86, resp["costo_por_lavado"], 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetireMissingExpenseIsNotFound(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE id = \\? LIMIT 1").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(expenseCols))

	body, _ := json.Marshal(map[string]interface{}{"id": 99, "cantidad_lavados": 3})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/dar-baja-producto", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetireAlreadyRetiredExpenseIsRejected(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM gastos WHERE id = \\? LIMIT 1").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(expenseCols).
			AddRow(4, "Shampoo pH neutro", 1000.0, nil, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), models.ExpenseStatusRetired, 7, nil, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	mock.ExpectExec("UPDATE gastos SET estado = \\?").
		WithArgs(models.ExpenseStatusRetired, 2, nil, sqlmock.AnyArg(), int64(4), models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	body, _ := json.Marshal(map[string]interface{}{"id": 4, "cantidad_lavados": 2})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/dar-baja-producto", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpenseIsIdempotent(t *testing.T) {
	router, mock := newTestServer(t)

	// Zero rows deleted still answers success.
	mock.ExpectExec("DELETE FROM gastos WHERE id = \\? AND estado = \\?").
		WithArgs(int64(3), models.ExpenseStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/gastos/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRetiredOnlyTouchesRetiredRows(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectExec("DELETE FROM gastos WHERE id = \\? AND estado = \\?").
		WithArgs(int64(8), models.ExpenseStatusRetired).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/productos-terminados/8", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
