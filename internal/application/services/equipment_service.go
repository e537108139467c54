package services

import (
	"context"
	"strings"
	"time"

	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

// EquipmentService owns the gastos_maquinas records: durable machine
// purchases that count toward totals but never get per-use costing.
type EquipmentService struct {
	repo *persistence.EquipmentRepository
}

func NewEquipmentService(repo *persistence.EquipmentRepository) *EquipmentService {
	return &EquipmentService{repo: repo}
}

// List returns equipment newest-first.
func (s *EquipmentService) List(ctx context.Context) ([]models.Equipment, error) {
	equipment, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("list equipment", err)
	}
	return equipment, nil
}

// CreateEquipmentRequest carries the POST /maquinas payload.
type CreateEquipmentRequest struct {
	Name           string
	Brand          string
	Model          string
	Price          float64
	PurchaseDate   string
	WarrantyMonths *int
	Status         string
	Notes          string
}

// Create inserts a new equipment purchase.
func (s *EquipmentService) Create(ctx context.Context, req CreateEquipmentRequest) (*models.Equipment, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("nombre", "is required")
	}
	if req.Price <= 0 {
		return nil, apperrors.NewValidationError("precio", "must be greater than zero")
	}
	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return nil, apperrors.NewValidationError("fecha_compra", "must be a date in YYYY-MM-DD format")
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = "operativa"
	}

	equipment := &models.Equipment{
		Name:           name,
		Price:          req.Price,
		PurchaseDate:   purchaseDate,
		WarrantyMonths: req.WarrantyMonths,
		Status:         status,
	}
	if brand := strings.TrimSpace(req.Brand); brand != "" {
		equipment.Brand = &brand
	}
	if model := strings.TrimSpace(req.Model); model != "" {
		equipment.Model = &model
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		equipment.Notes = &notes
	}

	if err := s.repo.Insert(ctx, equipment); err != nil {
		return nil, apperrors.NewStorageError("create equipment", err)
	}
	return equipment, nil
}

// Delete removes an equipment record.
func (s *EquipmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError("delete equipment", err)
	}
	return nil
}
