package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

// PriceService owns the precios_servicios price list. Names are stored
// normalized and kept unique by the store-level constraint.
type PriceService struct {
	repo *persistence.PriceRepository
}

func NewPriceService(repo *persistence.PriceRepository) *PriceService {
	return &PriceService{repo: repo}
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9_]`)
)

// NormalizeName canonicalizes a display name for uniqueness comparison:
// lowercase, whitespace runs become a single underscore, everything outside
// [a-z0-9_] is stripped.
func NormalizeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = whitespaceRun.ReplaceAllString(normalized, "_")
	return invalidChars.ReplaceAllString(normalized, "")
}

// ListActive returns active prices ordered by normalized name.
func (s *PriceService) ListActive(ctx context.Context) ([]models.ServicePrice, error) {
	prices, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("list prices", err)
	}
	return prices, nil
}

// Create inserts a new active price entry under the normalized name.
func (s *PriceService) Create(ctx context.Context, name string, price float64, description string) (*models.ServicePrice, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, apperrors.NewValidationError("nombre_servicio", "must contain at least one letter or digit")
	}
	if price < 0 {
		return nil, apperrors.NewValidationError("precio", "must not be negative")
	}

	entry := &models.ServicePrice{Name: normalized, Price: price}
	if d := strings.TrimSpace(description); d != "" {
		entry.Description = &d
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		if persistence.IsDuplicateEntry(err) {
			return nil, apperrors.NewConflictError("service price", "nombre_servicio", normalized)
		}
		return nil, apperrors.NewStorageError("create price", err)
	}
	return entry, nil
}

// Update rewrites a price entry in place. Fails with NotFound when the id is
// absent and with Conflict when the normalized name belongs to another row,
// leaving the row unchanged in both cases.
func (s *PriceService) Update(ctx context.Context, id int64, name string, price float64, description string) (*models.ServicePrice, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, apperrors.NewValidationError("nombre_servicio", "must contain at least one letter or digit")
	}
	if price < 0 {
		return nil, apperrors.NewValidationError("precio", "must not be negative")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStorageError("update price", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("service price", strconv.FormatInt(id, 10))
	}

	entry := &models.ServicePrice{ID: id, Name: normalized, Price: price, Active: existing.Active}
	if d := strings.TrimSpace(description); d != "" {
		entry.Description = &d
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		if persistence.IsDuplicateEntry(err) {
			return nil, apperrors.NewConflictError("service price", "nombre_servicio", normalized)
		}
		return nil, apperrors.NewStorageError("update price", err)
	}
	return entry, nil
}

// UpdatePrice changes only the numeric value of an entry.
func (s *PriceService) UpdatePrice(ctx context.Context, id int64, price float64) error {
	if price < 0 {
		return apperrors.NewValidationError("precio", "must not be negative")
	}
	if _, err := s.repo.UpdatePrice(ctx, id, price); err != nil {
		return apperrors.NewStorageError("update price", err)
	}
	return nil
}

// Delete removes a price entry and returns its name for confirmation
// messaging. Fails with NotFound when the id is absent.
func (s *PriceService) Delete(ctx context.Context, id int64) (string, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", apperrors.NewStorageError("delete price", err)
	}
	if existing == nil {
		return "", apperrors.NewNotFoundError("service price", strconv.FormatInt(id, 10))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", apperrors.NewStorageError("delete price", err)
	}
	return existing.Name, nil
}
