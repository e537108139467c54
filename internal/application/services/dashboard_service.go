package services

import (
	"context"

	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

// DashboardService composes the read-only aggregate behind GET /. It holds
// the repositories directly for the three SUM queries so list filters can
// never leak into the totals.
type DashboardService struct {
	expenses  *ExpenseService
	clients   *ClientService
	equipment *EquipmentService
	prices    *PriceService

	expenseRepo   *persistence.ExpenseRepository
	clientRepo    *persistence.ClientRepository
	equipmentRepo *persistence.EquipmentRepository
}

func NewDashboardService(
	expenses *ExpenseService,
	clients *ClientService,
	equipment *EquipmentService,
	prices *PriceService,
	expenseRepo *persistence.ExpenseRepository,
	clientRepo *persistence.ClientRepository,
	equipmentRepo *persistence.EquipmentRepository,
) *DashboardService {
	return &DashboardService{
		expenses:      expenses,
		clients:       clients,
		equipment:     equipment,
		prices:        prices,
		expenseRepo:   expenseRepo,
		clientRepo:    clientRepo,
		equipmentRepo: equipmentRepo,
	}
}

// Build gathers every list the dashboard shows plus the three totals, and
// echoes the query back for the filter controls. Totals always cover the
// whole dataset: date and sort filters only narrow what is listed, never
// what is summed.
func (s *DashboardService) Build(ctx context.Context, query models.DashboardQuery) (*models.Dashboard, error) {
	expenses, err := s.expenses.List(ctx, ListFilter{
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
		Sort:     query.ExpenseSort,
	})
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.List(ctx, query.ClientSort)
	if err != nil {
		return nil, err
	}

	retired, err := s.expenses.ListRetired(ctx)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipment.List(ctx)
	if err != nil {
		return nil, err
	}

	prices, err := s.prices.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.expenseRepo.SumActiveAmounts(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("sum expenses", err)
	}
	totalEquipment, err := s.equipmentRepo.SumPrices(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("sum equipment", err)
	}
	totalIncome, err := s.clientRepo.SumAmountsCharged(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("sum client income", err)
	}

	return &models.Dashboard{
		Expenses:       expenses,
		Clients:        clients,
		Retired:        retired,
		Equipment:      equipment,
		Prices:         prices,
		TotalExpenses:  totalExpenses,
		TotalEquipment: totalEquipment,
		TotalIncome:    totalIncome,
		Filters:        query,
	}, nil
}
