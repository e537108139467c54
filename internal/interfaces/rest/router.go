package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ppgarage/backoffice/internal/application/services"
	"github.com/ppgarage/backoffice/internal/interfaces/middleware"
)

// RouterOptions carries the wiring the router cannot derive from the
// service layer.
type RouterOptions struct {
	// TemplateGlob locates the dashboard template; empty disables HTML
	// rendering (handler tests exercise the JSON surface only).
	TemplateGlob string
	// UploadDir is served under /uploads so logo URLs resolve.
	UploadDir string
}

// NewRouter builds the gin engine with every route of the back office.
func NewRouter(svcMgr *services.ServiceManager, opts RouterOptions) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.Cors())

	if opts.TemplateGlob != "" {
		router.LoadHTMLGlob(opts.TemplateGlob)
	}
	if opts.UploadDir != "" {
		router.Static("/uploads", opts.UploadDir)
	}

	dashboardHandler := NewDashboardHandler(svcMgr)
	expenseHandler := NewExpenseHandler(svcMgr)
	clientHandler := NewClientHandler(svcMgr)
	equipmentHandler := NewEquipmentHandler(svcMgr)
	priceHandler := NewPriceHandler(svcMgr)
	brandingHandler := NewBrandingHandler(svcMgr)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Dashboard + the two legacy form posts
	router.GET("/", dashboardHandler.Render)
	router.POST("/agregar-gasto", expenseHandler.Create)
	router.POST("/agregar-cliente", clientHandler.Create)

	// Expenses
	router.DELETE("/gastos/:id", expenseHandler.Delete)
	router.POST("/dar-baja-producto", expenseHandler.Retire)
	router.DELETE("/productos-terminados/:id", expenseHandler.DeleteRetired)

	// Clients: both treatment routes perform the same update
	router.DELETE("/clientes/:id", clientHandler.Delete)
	router.POST("/clientes/marcar-tratamiento", clientHandler.RecordTreatment)
	router.POST("/clientes/reagendar-tratamiento", clientHandler.RecordTreatment)

	// Equipment
	router.POST("/maquinas", equipmentHandler.Create)
	router.DELETE("/maquinas/:id", equipmentHandler.Delete)

	// Price list
	router.POST("/agregar-servicio", priceHandler.Create)
	router.POST("/actualizar-precio", priceHandler.UpdateValue)
	router.PUT("/editar-servicio/:id", priceHandler.Update)
	router.DELETE("/eliminar-servicio/:id", priceHandler.Delete)

	// JSON API
	api := router.Group("/api")
	{
		api.GET("/precios-servicios", priceHandler.ListActive)
		api.GET("/configuracion-pdf", brandingHandler.Get)
		api.PUT("/configuracion-pdf", brandingHandler.Upsert)
		api.POST("/upload-logo", brandingHandler.UploadLogo)
		api.DELETE("/delete-logo", brandingHandler.DeleteLogo)
	}

	return router
}
