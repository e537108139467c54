package models

import "time"

// Expense status constants. A retired expense ("producto terminado") is a
// consumable whose usage count has been recorded; the transition is
// one-directional.
const (
	ExpenseStatusActive  = "activo"
	ExpenseStatusRetired = "terminado"
)

// Expense represents a row in gastos: a consumable purchase (shampoo, wax,
// sealant) whose per-use cost is computed once it is retired.
type Expense struct {
	ID          int64      `json:"id"`
	Description string     `json:"descripcion"`
	Amount      float64    `json:"monto"`
	Liters      *float64   `json:"cantidadEnLts,omitempty"`
	Date        time.Time  `json:"fecha"`
	Status      string     `json:"estado"`
	UsageCount  int        `json:"cantidad_lavados"`
	Notes       *string    `json:"notas,omitempty"`
	RetiredAt   *time.Time `json:"fecha_termino,omitempty"`
}

// RetiredExpense is an Expense joined with its derived per-use cost.
type RetiredExpense struct {
	Expense
	CostPerUse float64 `json:"costo_por_lavado"`
}

// Treatment type default applied when the form omits the field.
const DefaultTreatmentType = "basico"

// DefaultFrequencyDays is the advisory treatment frequency applied on create.
const DefaultFrequencyDays = 30

// Client represents a row in clientes: a service rendered to a client plus
// advisory treatment scheduling data.
type Client struct {
	ID            int64      `json:"id"`
	Name          string     `json:"nombre"`
	Service       string     `json:"servicio"`
	AmountCharged float64    `json:"montoCobrado"`
	TreatmentType string     `json:"tipo_tratamiento"`
	LastTreatment *time.Time `json:"fecha_ultimo_tratamiento,omitempty"`
	FrequencyDays int        `json:"frecuencia_recomendada"`
	Notes         *string    `json:"notas_tratamiento,omitempty"`
}

// Equipment represents a row in gastos_maquinas: a durable machine purchase.
// Equipment contributes to the total-cost report but never to per-use costing.
type Equipment struct {
	ID             int64     `json:"id"`
	Name           string    `json:"nombre"`
	Brand          *string   `json:"marca,omitempty"`
	Model          *string   `json:"modelo,omitempty"`
	Price          float64   `json:"precio"`
	PurchaseDate   time.Time `json:"fecha_compra"`
	WarrantyMonths *int      `json:"garantia_meses,omitempty"`
	Status         string    `json:"estado"`
	Notes          *string   `json:"notas,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ServicePrice represents a row in precios_servicios. Name is stored in its
// normalized form (lowercase, underscores, [a-z0-9_] only) and is unique.
type ServicePrice struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre_servicio"`
	Price       float64 `json:"precio"`
	Description *string `json:"descripcion,omitempty"`
	Active      bool    `json:"activo"`
}

// BrandingID is the fixed identity of the configuracion_pdf singleton row.
const BrandingID = 1

// QuoteBranding is the singleton configuration controlling quote-document
// appearance and company identity.
type QuoteBranding struct {
	CompanyName    string  `json:"nombre_empresa"`
	Address        string  `json:"direccion"`
	Phone          string  `json:"telefono"`
	Email          string  `json:"email"`
	QuoteHeader    string  `json:"titulo_cotizacion"`
	CompanyBlurb   string  `json:"descripcion_empresa"`
	Terms          string  `json:"terminos_condiciones"`
	Footer         string  `json:"pie_pagina"`
	ValidityDays   int     `json:"validez_dias"`
	PrimaryColor   string  `json:"color_primario"`
	SecondaryColor string  `json:"color_secundario"`
	LogoURL        *string `json:"logo_url,omitempty"`
	ShowLogo       bool    `json:"mostrar_logo"`
}

// ExpenseFilter narrows and orders the active-expense listing. Zero values
// mean "no filter" / default ordering (date descending).
type ExpenseFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Sort     string // "", "date_desc", "amount_desc", "amount_asc"
}

// Dashboard is the aggregate view model behind GET /. Totals are always
// computed over the unfiltered dataset, independent of the list filters.
type Dashboard struct {
	Expenses       []Expense        `json:"gastos"`
	Clients        []Client         `json:"clientes"`
	Retired        []RetiredExpense `json:"productos_terminados"`
	Equipment      []Equipment      `json:"maquinas"`
	Prices         []ServicePrice   `json:"precios_servicios"`
	TotalExpenses  float64          `json:"totalGastos"`
	TotalEquipment float64          `json:"totalMaquinas"`
	TotalIncome    float64          `json:"totalIngresos"`
	Filters        DashboardQuery   `json:"filtros"`
}

// DashboardQuery echoes back the query parameters that produced a Dashboard
// so the view can re-render its filter controls.
type DashboardQuery struct {
	DateFrom    string `json:"fechaDesde"`
	DateTo      string `json:"fechaHasta"`
	ExpenseSort string `json:"ordenGastos"`
	ClientSort  string `json:"ordenClientes"`
}
