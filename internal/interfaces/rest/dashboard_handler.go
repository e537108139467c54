package rest

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/internal/application/services"
	"github.com/ppgarage/backoffice/internal/domain/models"
)

type DashboardHandler struct {
	svcMgr *services.ServiceManager
}

func NewDashboardHandler(svcMgr *services.ServiceManager) *DashboardHandler {
	return &DashboardHandler{svcMgr: svcMgr}
}

// Render handles GET /. Render failures answer plain text, not JSON; this is
// the one HTML page of the app.
func (h *DashboardHandler) Render(c *gin.Context) {
	query := models.DashboardQuery{
		DateFrom:    c.Query("fechaDesde"),
		DateTo:      c.Query("fechaHasta"),
		ExpenseSort: c.Query("ordenGastos"),
		ClientSort:  c.Query("ordenClientes"),
	}

	dashboard, err := h.svcMgr.Dashboard.Build(c.Request.Context(), query)
	if err != nil {
		log.Printf("ERROR rendering dashboard: %v", err)
		c.String(http.StatusInternalServerError, "Error del servidor")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", dashboard)
}
