package service

import (
	"context"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	infraRepo "github.com/coopertrans/guias-api/internal/infrastructure/repository"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// AuditoriaService writes and queries the append-only audit trail
type AuditoriaService struct {
	auditoriaRepo repository.AuditoriaRepository
}

// NewAuditoriaService creates a new audit trail service
func NewAuditoriaService(auditoriaRepo repository.AuditoriaRepository) *AuditoriaService {
	return &AuditoriaService{auditoriaRepo: auditoriaRepo}
}

// Registrar appends one audit entry, stamping the acting user from the
// request context. Audit failures never abort the business operation,
// so the error is returned for logging only.
func (s *AuditoriaService) Registrar(ctx context.Context, accion, entidad, entidadID, detalle string) error {
	evento := &entity.AuditoriaEvento{
		Accion:    accion,
		Entidad:   entidad,
		EntidadID: entidadID,
		Detalle:   detalle,
	}
	if id, ok := infraRepo.GetActorID(ctx); ok {
		evento.UserID = &id
	}
	evento.UserEmail = infraRepo.GetActorEmail(ctx)

	return s.auditoriaRepo.Create(ctx, evento)
}

// ListEventos lists audit entries with filtering
func (s *AuditoriaService) ListEventos(ctx context.Context, params *repository.AuditoriaFilterParams) (*pagination.PaginatedResult[entity.AuditoriaEvento], error) {
	eventos, total, err := s.auditoriaRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(eventos, pag), nil
}
