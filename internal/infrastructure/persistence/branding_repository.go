package persistence

import (
	"context"
	"database/sql"

	"github.com/ppgarage/backoffice/internal/domain/models"
)

type BrandingRepository struct {
	db *sql.DB
}

func NewBrandingRepository(db *sql.DB) *BrandingRepository {
	return &BrandingRepository{db: db}
}

const brandingColumns = `nombre_empresa, direccion, telefono, email, titulo_cotizacion, descripcion_empresa,
		terminos_condiciones, pie_pagina, validez_dias, color_primario, color_secundario, logo_url, mostrar_logo`

// Find returns the singleton row or nil when it has never been written.
func (r *BrandingRepository) Find(ctx context.Context) (*models.QuoteBranding, error) {
	query := "SELECT " + brandingColumns + " FROM configuracion_pdf WHERE id = ? LIMIT 1"

	var b models.QuoteBranding
	var logoURL sql.NullString

	err := r.db.QueryRowContext(ctx, query, models.BrandingID).Scan(
		&b.CompanyName, &b.Address, &b.Phone, &b.Email, &b.QuoteHeader, &b.CompanyBlurb,
		&b.Terms, &b.Footer, &b.ValidityDays, &b.PrimaryColor, &b.SecondaryColor, &logoURL, &b.ShowLogo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if logoURL.Valid {
		b.LogoURL = &logoURL.String
	}
	return &b, nil
}

// Upsert writes the full singleton row in one statement. ON DUPLICATE KEY
// UPDATE keeps concurrent first-writes from producing two rows.
func (r *BrandingRepository) Upsert(ctx context.Context, b *models.QuoteBranding) error {
	query := `INSERT INTO configuracion_pdf (id, ` + brandingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		nombre_empresa = VALUES(nombre_empresa), direccion = VALUES(direccion), telefono = VALUES(telefono),
		email = VALUES(email), titulo_cotizacion = VALUES(titulo_cotizacion), descripcion_empresa = VALUES(descripcion_empresa),
		terminos_condiciones = VALUES(terminos_condiciones), pie_pagina = VALUES(pie_pagina), validez_dias = VALUES(validez_dias),
		color_primario = VALUES(color_primario), color_secundario = VALUES(color_secundario),
		logo_url = VALUES(logo_url), mostrar_logo = VALUES(mostrar_logo)`

	var logoURL interface{}
	if b.LogoURL != nil {
		logoURL = *b.LogoURL
	}

	_, err := r.db.ExecContext(ctx, query,
		models.BrandingID, b.CompanyName, b.Address, b.Phone, b.Email, b.QuoteHeader, b.CompanyBlurb,
		b.Terms, b.Footer, b.ValidityDays, b.PrimaryColor, b.SecondaryColor, logoURL, b.ShowLogo)
	return err
}

// SetLogo updates only the logo columns of the singleton. Returns the rows
// updated so the caller can detect a missing singleton.
func (r *BrandingRepository) SetLogo(ctx context.Context, logoURL *string, showLogo bool) (int64, error) {
	var url interface{}
	if logoURL != nil {
		url = *logoURL
	}

	res, err := r.db.ExecContext(ctx, "UPDATE configuracion_pdf SET logo_url = ?, mostrar_logo = ? WHERE id = ?",
		url, showLogo, models.BrandingID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
