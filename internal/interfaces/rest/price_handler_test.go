package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var priceCols = []string{"id", "nombre_servicio", "precio", "descripcion", "activo"}

func TestListActivePricesReturnsPlainArray(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM precios_servicios WHERE activo = TRUE").
		WillReturnRows(sqlmock.NewRows(priceCols).
			AddRow(1, "lavado_premium", 25000.0, "Lavado completo con cera", true).
			AddRow(2, "pulido", 60000.0, nil, true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/precios-servicios", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var prices []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prices))
	require.Len(t, prices, 2)
	assert.Equal(t, "lavado_premium", prices[0]["nombre_servicio"])
	assert.NotContains(t, prices[1], "descripcion")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePriceNormalizesAndReturnsSuccess(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectExec("INSERT INTO precios_servicios").
		WithArgs("lavado_premium", 25000.0, nil).
		WillReturnResult(sqlmock.NewResult(3, 1))

	body, _ := json.Marshal(map[string]interface{}{"nombre": "Lavado Premium!", "precio": 25000})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/agregar-servicio", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePriceNameCollisionIsBadRequest(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM precios_servicios WHERE id = \\? LIMIT 1").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(priceCols).AddRow(5, "encerado", 15000.0, nil, true))
	mock.ExpectExec("UPDATE precios_servicios SET nombre_servicio = \\?, precio = \\?, descripcion = \\? WHERE id = \\?").
		WithArgs("pulido", 18000.0, nil, int64(5)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'pulido' for key 'uniq_nombre_servicio'"})

	body, _ := json.Marshal(map[string]interface{}{"nombre": "Pulido", "precio": 18000})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/editar-servicio/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pulido")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingPriceIsNotFound(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM precios_servicios WHERE id = \\? LIMIT 1").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(priceCols))

	body, _ := json.Marshal(map[string]interface{}{"nombre": "Pulido", "precio": 18000})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/editar-servicio/99", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePriceRejectsNonNumericID(t *testing.T) {
	router, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{"nombre": "Pulido", "precio": 18000})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/editar-servicio/abc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePriceConfirmsWithName(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT (.+) FROM precios_servicios WHERE id = \\? LIMIT 1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(priceCols).AddRow(7, "tratamiento_ceramico", 120000.0, nil, true))
	mock.ExpectExec("DELETE FROM precios_servicios WHERE id = \\?").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/eliminar-servicio/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Servicio 'tratamiento_ceramico' eliminado correctamente")
	assert.NoError(t, mock.ExpectationsWereMet())
}
