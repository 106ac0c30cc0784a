package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResumenDashboard aggregates the figures shown on the landing dashboard
type ResumenDashboard struct {
	GuiasDelMes      int64
	FacturadoDelMes  decimal.Decimal
	IvaDelMes        decimal.Decimal
	IpostelDelMes    decimal.Decimal
	AsociadosActivos int64
	DeudasPendientes int64
	MontoPorCobrarBs decimal.Decimal
	RecibosDelMes    int64
	CobradoDelMes    decimal.Decimal
}

// FacturacionDiaria is one day of guide invoicing
type FacturacionDiaria struct {
	Fecha time.Time
	Guias int64
	Monto decimal.Decimal
}

// TopClienteResult ranks a client by invoiced amount
type TopClienteResult struct {
	ClienteID uuid.UUID
	Nombre    string
	Guias     int64
	Monto     decimal.Decimal
}

// DeudorResult ranks a member by outstanding debt
type DeudorResult struct {
	AsociadoID uuid.UUID
	Nombre     string
	Deudas     int64
	MontoBs    decimal.Decimal
}

// ReporteRepository defines the interface for aggregate reporting queries
type ReporteRepository interface {
	// GetResumenDashboard returns the dashboard figures for the month that
	// contains the given instant
	GetResumenDashboard(ctx context.Context, mes time.Time) (*ResumenDashboard, error)
	// GetFacturacionDiaria returns per-day invoicing for the last N days
	GetFacturacionDiaria(ctx context.Context, dias int) ([]FacturacionDiaria, error)
	// GetTopClientes ranks clients by invoiced amount inside a period
	GetTopClientes(ctx context.Context, desde, hasta time.Time, limit int) ([]TopClienteResult, error)
	// GetTopDeudores ranks members by pending debt
	GetTopDeudores(ctx context.Context, limit int) ([]DeudorResult, error)
}
