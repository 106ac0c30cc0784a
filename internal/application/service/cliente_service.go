package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// ClienteService handles registered client operations
type ClienteService struct {
	clienteRepo repository.ClienteRepository
	auditoria   *AuditoriaService
}

// NewClienteService creates a new client service
func NewClienteService(clienteRepo repository.ClienteRepository, auditoria *AuditoriaService) *ClienteService {
	return &ClienteService{clienteRepo: clienteRepo, auditoria: auditoria}
}

// CreateClienteInput represents the create client input
type CreateClienteInput struct {
	TipoDocumento   string
	NumeroDocumento string
	Nombre          string
	Telefono        *string
	Email           *string
	Direccion       *string
}

// CreateCliente registers a new client
func (s *ClienteService) CreateCliente(ctx context.Context, input *CreateClienteInput) (*entity.Cliente, error) {
	existing, err := s.clienteRepo.GetByDocumento(ctx, input.TipoDocumento, input.NumeroDocumento)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe un cliente con ese documento")
	}

	cliente := &entity.Cliente{
		TipoDocumento:   input.TipoDocumento,
		NumeroDocumento: input.NumeroDocumento,
		Nombre:          input.Nombre,
		Telefono:        input.Telefono,
		Email:           input.Email,
		Direccion:       input.Direccion,
	}

	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "cliente", cliente.ID.String(), cliente.Nombre)
	return cliente, nil
}

// GetCliente retrieves a client by ID
func (s *ClienteService) GetCliente(ctx context.Context, id uuid.UUID) (*entity.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, apperror.NewNotFoundError("Cliente")
	}
	return cliente, nil
}

// BuscarPorDocumento looks a client up by document, used to prefill the
// sender of a new guide
func (s *ClienteService) BuscarPorDocumento(ctx context.Context, tipo, numero string) (*entity.Cliente, error) {
	return s.clienteRepo.GetByDocumento(ctx, tipo, numero)
}

// ListClientes lists clients with page-based pagination
func (s *ClienteService) ListClientes(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Cliente], error) {
	clientes, total, err := s.clienteRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clientes, pag), nil
}

// ListClientesWithCursor lists clients with cursor-based pagination
func (s *ClienteService) ListClientesWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Cliente], error) {
	clientes, err := s.clienteRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(clientes, params.Limit,
		func(c entity.Cliente) string { return c.ID.String() },
		func(c entity.Cliente) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateClienteInput represents the update client input
type UpdateClienteInput struct {
	ID        uuid.UUID
	Nombre    string
	Telefono  *string
	Email     *string
	Direccion *string
}

// UpdateCliente updates a client's contact data
func (s *ClienteService) UpdateCliente(ctx context.Context, input *UpdateClienteInput) (*entity.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, apperror.NewNotFoundError("Cliente")
	}

	if input.Nombre != "" {
		cliente.Nombre = input.Nombre
	}
	if input.Telefono != nil {
		cliente.Telefono = input.Telefono
	}
	if input.Email != nil {
		cliente.Email = input.Email
	}
	if input.Direccion != nil {
		cliente.Direccion = input.Direccion
	}

	if err := s.clienteRepo.Update(ctx, cliente); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "cliente", cliente.ID.String(), cliente.Nombre)
	return cliente, nil
}

// DeleteCliente soft deletes a client. Guides keep their sender snapshot,
// so past documents are unaffected.
func (s *ClienteService) DeleteCliente(ctx context.Context, id uuid.UUID) error {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return apperror.NewNotFoundError("Cliente")
	}

	if err := s.clienteRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "cliente", id.String(), cliente.Nombre)
	return nil
}
