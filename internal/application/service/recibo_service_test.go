package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
)

type fakeReciboRepo struct {
	recibos map[uuid.UUID]*entity.Recibo
	seq     int64
}

func newFakeReciboRepo() *fakeReciboRepo {
	return &fakeReciboRepo{recibos: make(map[uuid.UUID]*entity.Recibo)}
}

func (f *fakeReciboRepo) Create(ctx context.Context, r *entity.Recibo) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.recibos[r.ID] = r
	return nil
}

func (f *fakeReciboRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Recibo, error) {
	return f.recibos[id], nil
}

func (f *fakeReciboRepo) GetByNumero(ctx context.Context, numero string) (*entity.Recibo, error) {
	for _, r := range f.recibos {
		if r.NumeroRecibo == numero {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReciboRepo) GetWithDetalles(ctx context.Context, id uuid.UUID) (*entity.Recibo, error) {
	return f.recibos[id], nil
}

func (f *fakeReciboRepo) List(ctx context.Context, params *repository.ReciboFilterParams) ([]entity.Recibo, int64, error) {
	var out []entity.Recibo
	for _, r := range f.recibos {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReciboRepo) ListByAsociado(ctx context.Context, asociadoID uuid.UUID) ([]entity.Recibo, error) {
	var out []entity.Recibo
	for _, r := range f.recibos {
		if r.AsociadoID == asociadoID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReciboRepo) NextNumero(ctx context.Context) (int64, error) {
	f.seq++
	return f.seq, nil
}

func (f *fakeReciboRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.recibos, id)
	return nil
}

func nuevoReciboService(reciboRepo *fakeReciboRepo, deudaRepo *fakeDeudaRepo, asociadoRepo *fakeAsociadoRepo) *ReciboService {
	auditoria := NewAuditoriaService(&fakeAuditoriaRepo{})
	empresa := NewEmpresaService(&fakeEmpresaRepo{config: configDePrueba()}, auditoria)
	return NewReciboService(reciboRepo, deudaRepo, asociadoRepo, empresa, auditoria)
}

func deudaPendiente(asociadoID uuid.UUID, concepto string, monto int64) *entity.Deuda {
	return &entity.Deuda{
		AsociadoID: asociadoID,
		Concepto:   concepto,
		MontoBs:    decimal.NewFromInt(monto),
		Estado:     enum.EstadoDeudaPendiente,
	}
}

func TestCreateReciboSaldaDeudas(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	asociadoRepo := newFakeAsociadoRepo(asociado)

	d1 := deudaPendiente(asociado.ID, "Cuota enero", 300)
	d2 := deudaPendiente(asociado.ID, "Cuota febrero", 200)
	deudaRepo := newFakeDeudaRepo(d1, d2)
	reciboRepo := newFakeReciboRepo()
	svc := nuevoReciboService(reciboRepo, deudaRepo, asociadoRepo)

	banco := "Banco de Venezuela"
	recibo, err := svc.CreateRecibo(context.Background(), &CreateReciboInput{
		AsociadoID: asociado.ID,
		UserID:     uuid.New(),
		DeudaIDs:   []uuid.UUID{d1.ID, d2.ID},
		Detalles: []ReciboDetalleInput{
			{Metodo: "efectivo", Monto: decimal.NewFromInt(100)},
			{Metodo: "transferencia", Banco: &banco, Monto: decimal.NewFromInt(400)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "R-000001", recibo.NumeroRecibo)
	assert.True(t, recibo.MontoTotal.Equal(decimal.NewFromInt(500)))
	// BCV rate frozen from the config at payment time
	assert.True(t, recibo.TasaCambio.Equal(decimal.NewFromInt(40)))

	// Both debts settled and pointing at the receipt
	assert.ElementsMatch(t, []uuid.UUID{d1.ID, d2.ID}, deudaRepo.pagadas)
	assert.Equal(t, recibo.ID, deudaRepo.pagadasRecibo)
	assert.Equal(t, enum.EstadoDeudaPagado, d1.Estado)
	assert.Equal(t, enum.EstadoDeudaPagado, d2.Estado)
}

func TestCreateReciboRevierteSiFallaElCobro(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	asociadoRepo := newFakeAsociadoRepo(asociado)

	deuda := deudaPendiente(asociado.ID, "Cuota enero", 300)
	deudaRepo := newFakeDeudaRepo(deuda)
	deudaRepo.errMarcar = errors.New("deadlock detected")
	reciboRepo := newFakeReciboRepo()
	svc := nuevoReciboService(reciboRepo, deudaRepo, asociadoRepo)

	_, err := svc.CreateRecibo(context.Background(), &CreateReciboInput{
		AsociadoID: asociado.ID,
		UserID:     uuid.New(),
		DeudaIDs:   []uuid.UUID{deuda.ID},
		Detalles: []ReciboDetalleInput{
			{Metodo: "efectivo", Monto: decimal.NewFromInt(300)},
		},
	})

	require.ErrorIs(t, err, deudaRepo.errMarcar)

	// The receipt was backed out and the debt is still collectable
	assert.Empty(t, reciboRepo.recibos)
	assert.Equal(t, enum.EstadoDeudaPendiente, deuda.Estado)
	assert.Nil(t, deuda.ReciboID)
}

func TestCreateReciboMontoNoCoincide(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	asociadoRepo := newFakeAsociadoRepo(asociado)

	deuda := deudaPendiente(asociado.ID, "Cuota enero", 300)
	deudaRepo := newFakeDeudaRepo(deuda)
	svc := nuevoReciboService(newFakeReciboRepo(), deudaRepo, asociadoRepo)

	_, err := svc.CreateRecibo(context.Background(), &CreateReciboInput{
		AsociadoID: asociado.ID,
		UserID:     uuid.New(),
		DeudaIDs:   []uuid.UUID{deuda.ID},
		Detalles: []ReciboDetalleInput{
			{Metodo: "efectivo", Monto: decimal.NewFromInt(299)},
		},
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "detalles", appErr.Errors[0].Field)

	// Nothing was written
	assert.Empty(t, deudaRepo.pagadas)
	assert.Equal(t, enum.EstadoDeudaPendiente, deuda.Estado)
}

func TestCreateReciboDeudaDeOtroAsociado(t *testing.T) {
	pedro := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	maria := &entity.Asociado{Cedula: "V-222", Nombre: "Maria", Activo: true}
	asociadoRepo := newFakeAsociadoRepo(pedro, maria)

	ajena := deudaPendiente(maria.ID, "Cuota enero", 300)
	svc := nuevoReciboService(newFakeReciboRepo(), newFakeDeudaRepo(ajena), asociadoRepo)

	_, err := svc.CreateRecibo(context.Background(), &CreateReciboInput{
		AsociadoID: pedro.ID,
		UserID:     uuid.New(),
		DeudaIDs:   []uuid.UUID{ajena.ID},
		Detalles: []ReciboDetalleInput{
			{Metodo: "efectivo", Monto: decimal.NewFromInt(300)},
		},
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateReciboDeudaYaPagada(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	asociadoRepo := newFakeAsociadoRepo(asociado)

	pagada := deudaPendiente(asociado.ID, "Cuota enero", 300)
	pagada.Estado = enum.EstadoDeudaPagado
	svc := nuevoReciboService(newFakeReciboRepo(), newFakeDeudaRepo(pagada), asociadoRepo)

	_, err := svc.CreateRecibo(context.Background(), &CreateReciboInput{
		AsociadoID: asociado.ID,
		UserID:     uuid.New(),
		DeudaIDs:   []uuid.UUID{pagada.ID},
		Detalles: []ReciboDetalleInput{
			{Metodo: "efectivo", Monto: decimal.NewFromInt(300)},
		},
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateReciboSinDeudas(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	svc := nuevoReciboService(newFakeReciboRepo(), newFakeDeudaRepo(), newFakeAsociadoRepo(asociado))

	_, err := svc.CreateRecibo(context.Background(), &CreateReciboInput{
		AsociadoID: asociado.ID,
		UserID:     uuid.New(),
		Detalles: []ReciboDetalleInput{
			{Metodo: "efectivo", Monto: decimal.NewFromInt(300)},
		},
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateReciboDeudaInexistente(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	svc := nuevoReciboService(newFakeReciboRepo(), newFakeDeudaRepo(), newFakeAsociadoRepo(asociado))

	_, err := svc.CreateRecibo(context.Background(), &CreateReciboInput{
		AsociadoID: asociado.ID,
		UserID:     uuid.New(),
		DeudaIDs:   []uuid.UUID{uuid.New()},
		Detalles: []ReciboDetalleInput{
			{Metodo: "efectivo", Monto: decimal.NewFromInt(300)},
		},
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
