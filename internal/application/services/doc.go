// Package services provides the business logic layer of the back office.
//
// This package contains all service implementations that handle:
//   - Consumable expense tracking and cost-per-use retirement (ExpenseService)
//   - Client records and treatment scheduling (ClientService)
//   - Equipment purchase records (EquipmentService)
//   - The normalized, unique service price list (PriceService)
//   - Quote branding configuration and its logo asset (BrandingService)
//   - The dashboard aggregate behind the main view (DashboardService)
//
// Services validate input, translate persistence failures into the typed
// errors of pkg/errors, and are wired together by ServiceManager.
package services
