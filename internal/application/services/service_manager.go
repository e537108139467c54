package services

import (
	"database/sql"

	"github.com/ppgarage/backoffice/internal/infrastructure/assets"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
)

// ServiceManager wires every service with its dependencies.
type ServiceManager struct {
	Expenses  *ExpenseService
	Clients   *ClientService
	Equipment *EquipmentService
	Prices    *PriceService
	Branding  *BrandingService
	Dashboard *DashboardService
}

// NewServiceManager builds the repositories over the shared pooled db and
// the services on top of them.
func NewServiceManager(db *sql.DB, store *assets.Store) *ServiceManager {
	expenseRepo := persistence.NewExpenseRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	equipmentRepo := persistence.NewEquipmentRepository(db)
	priceRepo := persistence.NewPriceRepository(db)
	brandingRepo := persistence.NewBrandingRepository(db)

	sm := &ServiceManager{}
	sm.Expenses = NewExpenseService(expenseRepo)
	sm.Clients = NewClientService(clientRepo)
	sm.Equipment = NewEquipmentService(equipmentRepo)
	sm.Prices = NewPriceService(priceRepo)
	sm.Branding = NewBrandingService(brandingRepo, store)
	sm.Dashboard = NewDashboardService(sm.Expenses, sm.Clients, sm.Equipment, sm.Prices, expenseRepo, clientRepo, equipmentRepo)
	return sm
}
