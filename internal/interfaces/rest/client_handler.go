package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/internal/application/services"
)

type ClientHandler struct {
	svcMgr *services.ServiceManager
}

func NewClientHandler(svcMgr *services.ServiceManager) *ClientHandler {
	return &ClientHandler{svcMgr: svcMgr}
}

// Create handles POST /agregar-cliente (dashboard form, redirect-after-POST).
func (h *ClientHandler) Create(c *gin.Context) {
	var form struct {
		Name          string  `form:"nombre"`
		Service       string  `form:"servicio"`
		AmountCharged float64 `form:"montoCobrado"`
		TreatmentType string  `form:"tipo_tratamiento"`
		LastTreatment string  `form:"fecha_ultimo_tratamiento"`
		FrequencyDays int     `form:"frecuencia_recomendada"`
		Notes         string  `form:"notas_tratamiento"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "datos de cliente inválidos")
		return
	}

	_, err := h.svcMgr.Clients.Create(c.Request.Context(), services.CreateClientRequest{
		Name:          form.Name,
		Service:       form.Service,
		AmountCharged: form.AmountCharged,
		TreatmentType: form.TreatmentType,
		LastTreatment: form.LastTreatment,
		FrequencyDays: form.FrequencyDays,
		Notes:         form.Notes,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Error agregando cliente")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete handles DELETE /clientes/:id.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}
	if err := h.svcMgr.Clients.Delete(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}

// TreatmentRequest is the payload shared by POST /clientes/marcar-tratamiento
// and POST /clientes/reagendar-tratamiento. Both routes perform the same
// update; the date's meaning (done in the past, planned for the future) is
// up to the caller.
type TreatmentRequest struct {
	ClientID int64  `json:"clienteId" binding:"required"`
	Date     string `json:"fecha" binding:"required"`
}

// RecordTreatment handles both treatment routes.
func (h *ClientHandler) RecordTreatment(c *gin.Context) {
	var req TreatmentRequest
	if !BindJSON(c, &req) {
		return
	}
	if err := h.svcMgr.Clients.RecordTreatment(c.Request.Context(), req.ClientID, req.Date); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c)
}
