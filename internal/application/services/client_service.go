package services

import (
	"context"
	"strings"
	"time"

	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

// ClientService owns the clientes records and their advisory treatment
// scheduling.
type ClientService struct {
	repo *persistence.ClientRepository
}

func NewClientService(repo *persistence.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

// List returns clients ordered per sort (amount_desc / amount_asc), default
// id descending.
func (s *ClientService) List(ctx context.Context, sort string) ([]models.Client, error) {
	clients, err := s.repo.FindAll(ctx, sort)
	if err != nil {
		return nil, apperrors.NewStorageError("list clients", err)
	}
	return clients, nil
}

// CreateClientRequest carries the fields of the agregar-cliente form.
// Zero-valued optionals take the documented defaults.
type CreateClientRequest struct {
	Name          string
	Service       string
	AmountCharged float64
	TreatmentType string
	LastTreatment string
	FrequencyDays int
	Notes         string
}

// Create inserts a new client record, applying the 'basico' treatment type
// and 30-day frequency defaults.
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("nombre", "is required")
	}
	service := strings.TrimSpace(req.Service)
	if service == "" {
		return nil, apperrors.NewValidationError("servicio", "is required")
	}
	if req.AmountCharged < 0 {
		return nil, apperrors.NewValidationError("montoCobrado", "must not be negative")
	}

	client := &models.Client{
		Name:          name,
		Service:       service,
		AmountCharged: req.AmountCharged,
		TreatmentType: models.DefaultTreatmentType,
		FrequencyDays: models.DefaultFrequencyDays,
	}
	if t := strings.TrimSpace(req.TreatmentType); t != "" {
		client.TreatmentType = t
	}
	if req.FrequencyDays > 0 {
		client.FrequencyDays = req.FrequencyDays
	}
	if req.LastTreatment != "" {
		t, err := time.Parse(dateLayout, req.LastTreatment)
		if err != nil {
			return nil, apperrors.NewValidationError("fecha_ultimo_tratamiento", "must be a date in YYYY-MM-DD format")
		}
		client.LastTreatment = &t
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		client.Notes = &notes
	}

	if err := s.repo.Insert(ctx, client); err != nil {
		return nil, apperrors.NewStorageError("create client", err)
	}
	return client, nil
}

// Delete removes a client record.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.NewStorageError("delete client", err)
	}
	return nil
}

// RecordTreatment sets the last-treatment date. Marking a treatment done and
// rescheduling one are the same mutation; whether the date lies in the past
// or the future is up to the caller.
func (s *ClientService) RecordTreatment(ctx context.Context, id int64, date string) error {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return apperrors.NewValidationError("fecha", "must be a date in YYYY-MM-DD format")
	}

	// RowsAffected would report 0 both for a missing id and for re-recording
	// an unchanged date, so it cannot distinguish the two; like the delete
	// operations, this treats an absent id as a no-op.
	if _, err := s.repo.SetLastTreatment(ctx, id, t); err != nil {
		return apperrors.NewStorageError("record treatment", err)
	}
	return nil
}
