package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
)

// EmpresaService handles the cooperative's configuration: identity,
// billing rates and the BCV exchange rate
type EmpresaService struct {
	empresaRepo repository.EmpresaRepository
	auditoria   *AuditoriaService
}

// NewEmpresaService creates a new company config service
func NewEmpresaService(empresaRepo repository.EmpresaRepository, auditoria *AuditoriaService) *EmpresaService {
	return &EmpresaService{empresaRepo: empresaRepo, auditoria: auditoria}
}

// GetConfig returns the company configuration, creating the row with
// defaults when none exists yet
func (s *EmpresaService) GetConfig(ctx context.Context) (*entity.ConfigEmpresa, error) {
	config, err := s.empresaRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	config = &entity.ConfigEmpresa{
		Nombre:               "Cooperativa de Transporte",
		CostoPorKg:           decimal.NewFromInt(1),
		TasaIva:              decimal.NewFromFloat(0.16),
		TasaIpostel:          decimal.NewFromFloat(0.06),
		TasaIgtf:             decimal.NewFromFloat(0.03),
		PorcentajeProduccion: decimal.NewFromInt(25),
		TasaBCV:              decimal.NewFromInt(1),
	}
	if err := s.empresaRepo.Create(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

// UpdateConfigInput represents the update config input. Nil fields keep
// their current value.
type UpdateConfigInput struct {
	Nombre    *string
	Rif       *string
	Direccion *string
	Telefono  *string

	CostoPorKg          *decimal.Decimal
	TarifaManejo        *decimal.Decimal
	TasaIva             *decimal.Decimal
	TasaIpostel         *decimal.Decimal
	TasaIgtf            *decimal.Decimal
	PorcentajeSeguroDef *decimal.Decimal

	TarifaPasajeroUSD    *decimal.Decimal
	PorcentajeProduccion *decimal.Decimal

	TasaBCV *decimal.Decimal
}

// UpdateConfig updates the company configuration. Rates are validated to
// be non-negative; updated rates only affect guides created or edited
// afterwards.
func (s *EmpresaService) UpdateConfig(ctx context.Context, input *UpdateConfigInput) (*entity.ConfigEmpresa, error) {
	config, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if input.Nombre != nil && *input.Nombre != "" {
		config.Nombre = *input.Nombre
	}
	if input.Rif != nil {
		config.Rif = *input.Rif
	}
	if input.Direccion != nil {
		config.Direccion = input.Direccion
	}
	if input.Telefono != nil {
		config.Telefono = input.Telefono
	}

	rates := []struct {
		valor   *decimal.Decimal
		destino *decimal.Decimal
	}{
		{input.CostoPorKg, &config.CostoPorKg},
		{input.TarifaManejo, &config.TarifaManejo},
		{input.TasaIva, &config.TasaIva},
		{input.TasaIpostel, &config.TasaIpostel},
		{input.TasaIgtf, &config.TasaIgtf},
		{input.PorcentajeSeguroDef, &config.PorcentajeSeguroDef},
		{input.TarifaPasajeroUSD, &config.TarifaPasajeroUSD},
		{input.PorcentajeProduccion, &config.PorcentajeProduccion},
		{input.TasaBCV, &config.TasaBCV},
	}
	for _, r := range rates {
		if r.valor == nil {
			continue
		}
		if r.valor.IsNegative() {
			return nil, apperror.NewBadRequestError("Las tarifas no pueden ser negativas")
		}
		*r.destino = *r.valor
	}

	if input.TasaBCV != nil && input.TasaBCV.IsZero() {
		return nil, apperror.NewBadRequestError("La tasa BCV debe ser mayor que cero")
	}

	if err := s.empresaRepo.Update(ctx, config); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "configuracion", config.ID.String(), config.Nombre)
	return config, nil
}
