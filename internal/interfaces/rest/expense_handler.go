package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/internal/application/services"
)

type ExpenseHandler struct {
	svcMgr *services.ServiceManager
}

func NewExpenseHandler(svcMgr *services.ServiceManager) *ExpenseHandler {
	return &ExpenseHandler{svcMgr: svcMgr}
}

// Create handles POST /agregar-gasto (dashboard form, redirect-after-POST).
func (h *ExpenseHandler) Create(c *gin.Context) {
	var form struct {
		Description string   `form:"descripcion"`
		Amount      float64  `form:"monto"`
		Liters      *float64 `form:"cantidadEnLts"`
		Date        string   `form:"fecha"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "datos de gasto inválidos")
		return
	}

	_, err := h.svcMgr.Expenses.Create(c.Request.Context(), services.CreateExpenseRequest{
		Description: form.Description,
		Amount:      form.Amount,
		Liters:      form.Liters,
		Date:        form.Date,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Error agregando gasto")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// RetireRequest is the POST /dar-baja-producto payload.
type RetireRequest struct {
	ID         int64  `json:"id" binding:"required"`
	UsageCount int    `json:"cantidad_lavados"`
	Notes      string `json:"notas"`
}

// Retire handles POST /dar-baja-producto.
func (h *ExpenseHandler) Retire(c *gin.Context) {
	var req RetireRequest
	if !BindJSON(c, &req) {
		return
	}

	result, err := h.svcMgr.Expenses.Retire(c.Request.Context(), req.ID, req.UsageCount, req.Notes)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"costo_por_lavado": result.CostPerUse,
		"message":          "Producto dado de baja correctamente",
	})
}

// Delete handles DELETE /gastos/:id (active rows only).
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.svcMgr.Expenses.Delete(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}

// DeleteRetired handles DELETE /productos-terminados/:id (retired rows only;
// an active or absent id is a no-op).
func (h *ExpenseHandler) DeleteRetired(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.svcMgr.Expenses.DeleteRetired(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}
