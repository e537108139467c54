package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/internal/application/services"
)

type EquipmentHandler struct {
	svcMgr *services.ServiceManager
}

func NewEquipmentHandler(svcMgr *services.ServiceManager) *EquipmentHandler {
	return &EquipmentHandler{svcMgr: svcMgr}
}

// CreateEquipmentRequest is the POST /maquinas payload.
type CreateEquipmentRequest struct {
	Name           string  `json:"nombre" binding:"required"`
	Brand          string  `json:"marca"`
	Model          string  `json:"modelo"`
	Price          float64 `json:"precio" binding:"required"`
	PurchaseDate   string  `json:"fecha_compra" binding:"required"`
	WarrantyMonths *int    `json:"garantia_meses"`
	Status         string  `json:"estado"`
	Notes          string  `json:"notas"`
}

// Create handles POST /maquinas.
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if !BindJSON(c, &req) {
		return
	}

	equipment, err := h.svcMgr.Equipment.Create(c.Request.Context(), services.CreateEquipmentRequest{
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Price:          req.Price,
		PurchaseDate:   req.PurchaseDate,
		WarrantyMonths: req.WarrantyMonths,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "maquina": equipment})
}

// Delete handles DELETE /maquinas/:id.
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.svcMgr.Equipment.Delete(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}
