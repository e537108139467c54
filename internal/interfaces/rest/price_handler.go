package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/internal/application/services"
)

type PriceHandler struct {
	svcMgr *services.ServiceManager
}

func NewPriceHandler(svcMgr *services.ServiceManager) *PriceHandler {
	return &PriceHandler{svcMgr: svcMgr}
}

// ListActive handles GET /api/precios-servicios.
func (h *PriceHandler) ListActive(c *gin.Context) {
	prices, err := h.svcMgr.Prices.ListActive(c.Request.Context())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}

// CreatePriceRequest is the POST /agregar-servicio payload.
type CreatePriceRequest struct {
	Name        string  `json:"nombre" binding:"required"`
	Price       float64 `json:"precio" binding:"required"`
	Description string  `json:"descripcion"`
}

// Create handles POST /agregar-servicio.
func (h *PriceHandler) Create(c *gin.Context) {
	var req CreatePriceRequest
	if !BindJSON(c, &req) {
		return
	}
	if _, err := h.svcMgr.Prices.Create(c.Request.Context(), req.Name, req.Price, req.Description); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}

// UpdatePriceValueRequest is the POST /actualizar-precio payload: the
// numeric value only.
type UpdatePriceValueRequest struct {
	ID    int64   `json:"id" binding:"required"`
	Price float64 `json:"precio" binding:"required"`
}

// UpdateValue handles POST /actualizar-precio.
func (h *PriceHandler) UpdateValue(c *gin.Context) {
	var req UpdatePriceValueRequest
	if !BindJSON(c, &req) {
		return
	}
	if err := h.svcMgr.Prices.UpdatePrice(c.Request.Context(), req.ID, req.Price); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}

// UpdatePriceRequest is the PUT /editar-servicio/:id payload.
type UpdatePriceRequest struct {
	Name        string  `json:"nombre" binding:"required"`
	Price       float64 `json:"precio" binding:"required"`
	Description string  `json:"descripcion"`
}

// Update handles PUT /editar-servicio/:id: 404 when the id is missing, 400
// when the normalized name collides with another entry.
func (h *PriceHandler) Update(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	var req UpdatePriceRequest
	if !BindJSON(c, &req) {
		return
	}

	price, err := h.svcMgr.Prices.Update(c.Request.Context(), id, req.Name, req.Price, req.Description)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "servicio": price})
}

// Delete handles DELETE /eliminar-servicio/:id; the confirmation message
// carries the deleted entry's name.
func (h *PriceHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	name, err := h.svcMgr.Prices.Delete(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Servicio '%s' eliminado correctamente", name),
	})
}
