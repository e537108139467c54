package services

import (
	"context"

	"github.com/ppgarage/backoffice/internal/domain/models"
	"github.com/ppgarage/backoffice/internal/infrastructure/assets"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

// DefaultBranding returns the branding used for quote documents until the
// singleton row is first written. Reads of the default never persist it.
func DefaultBranding() models.QuoteBranding {
	return models.QuoteBranding{
		CompanyName:    "PP Garage Detailing",
		Address:        "Av. Principal 1234",
		Phone:          "+54 11 0000-0000",
		Email:          "contacto@ppgarage.com",
		QuoteHeader:    "Cotización de Servicios",
		CompanyBlurb:   "Detailing profesional de vehículos: lavado, pulido y tratamientos cerámicos.",
		Terms:          "Precios sujetos a revisión del vehículo. Seña del 50% para reservar turno.",
		Footer:         "Gracias por confiar en PP Garage",
		ValidityDays:   15,
		PrimaryColor:   "#1a1a2e",
		SecondaryColor: "#e94560",
		ShowLogo:       false,
	}
}

// BrandingService owns the configuracion_pdf singleton and its logo asset.
type BrandingService struct {
	repo  *persistence.BrandingRepository
	store *assets.Store
}

func NewBrandingService(repo *persistence.BrandingRepository, store *assets.Store) *BrandingService {
	return &BrandingService{repo: repo, store: store}
}

// Get returns the singleton, or the in-memory defaults when it has never
// been upserted.
func (s *BrandingService) Get(ctx context.Context) (*models.QuoteBranding, error) {
	branding, err := s.repo.Find(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("get branding", err)
	}
	if branding == nil {
		defaults := DefaultBranding()
		return &defaults, nil
	}
	return branding, nil
}

// Upsert writes the full singleton row: PUT-with-create-if-missing, not a
// partial patch.
func (s *BrandingService) Upsert(ctx context.Context, branding *models.QuoteBranding) error {
	if err := s.repo.Upsert(ctx, branding); err != nil {
		return apperrors.NewStorageError("upsert branding", err)
	}
	return nil
}

// UploadLogo stores the image and points the singleton at it. When the
// singleton has never been written, it is materialized from the defaults
// first so the logo update cannot silently touch zero rows.
func (s *BrandingService) UploadLogo(ctx context.Context, content []byte, originalFilename string) (string, error) {
	url, err := s.store.Save(content, originalFilename)
	if err != nil {
		return "", err
	}

	branding, err := s.repo.Find(ctx)
	if err != nil {
		return "", apperrors.NewStorageError("upload logo", err)
	}
	if branding == nil {
		defaults := DefaultBranding()
		branding = &defaults
	}
	branding.LogoURL = &url
	branding.ShowLogo = true

	if err := s.repo.Upsert(ctx, branding); err != nil {
		return "", apperrors.NewStorageError("upload logo", err)
	}
	return url, nil
}

// DeleteLogo removes the logo asset (a file already gone is tolerated) and
// clears the singleton's logo columns.
func (s *BrandingService) DeleteLogo(ctx context.Context) error {
	branding, err := s.repo.Find(ctx)
	if err != nil {
		return apperrors.NewStorageError("delete logo", err)
	}
	if branding == nil || branding.LogoURL == nil {
		return nil
	}

	if err := s.store.Remove(*branding.LogoURL); err != nil {
		return err
	}

	if _, err := s.repo.SetLogo(ctx, nil, false); err != nil {
		return apperrors.NewStorageError("delete logo", err)
	}
	return nil
}
