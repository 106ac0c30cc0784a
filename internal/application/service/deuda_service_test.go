package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// In-memory fakes shared by the service tests in this package.

type fakeAsociadoRepo struct {
	asociados map[uuid.UUID]*entity.Asociado
}

func newFakeAsociadoRepo(asociados ...*entity.Asociado) *fakeAsociadoRepo {
	f := &fakeAsociadoRepo{asociados: make(map[uuid.UUID]*entity.Asociado)}
	for _, a := range asociados {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		f.asociados[a.ID] = a
	}
	return f
}

func (f *fakeAsociadoRepo) Create(ctx context.Context, a *entity.Asociado) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.asociados[a.ID] = a
	return nil
}

func (f *fakeAsociadoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Asociado, error) {
	return f.asociados[id], nil
}

func (f *fakeAsociadoRepo) GetByCedula(ctx context.Context, cedula string) (*entity.Asociado, error) {
	for _, a := range f.asociados {
		if a.Cedula == cedula {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAsociadoRepo) GetByCodigoSocio(ctx context.Context, codigo string) (*entity.Asociado, error) {
	for _, a := range f.asociados {
		if a.CodigoSocio == codigo {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAsociadoRepo) Update(ctx context.Context, a *entity.Asociado) error {
	f.asociados[a.ID] = a
	return nil
}

func (f *fakeAsociadoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.asociados, id)
	return nil
}

func (f *fakeAsociadoRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, soloActivos bool) ([]entity.Asociado, int64, error) {
	todos, _ := f.ListTodos(ctx)
	return todos, int64(len(todos)), nil
}

func (f *fakeAsociadoRepo) ListActivos(ctx context.Context) ([]entity.Asociado, error) {
	var out []entity.Asociado
	for _, a := range f.asociados {
		if a.Activo {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAsociadoRepo) ListTodos(ctx context.Context) ([]entity.Asociado, error) {
	var out []entity.Asociado
	for _, a := range f.asociados {
		out = append(out, *a)
	}
	return out, nil
}

type fakeDeudaRepo struct {
	deudas map[uuid.UUID]*entity.Deuda

	pagadas       []uuid.UUID
	pagadasRecibo uuid.UUID
	errMarcar     error
}

func newFakeDeudaRepo(deudas ...*entity.Deuda) *fakeDeudaRepo {
	f := &fakeDeudaRepo{deudas: make(map[uuid.UUID]*entity.Deuda)}
	for _, d := range deudas {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		f.deudas[d.ID] = d
	}
	return f
}

func (f *fakeDeudaRepo) Create(ctx context.Context, d *entity.Deuda) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	f.deudas[d.ID] = d
	return nil
}

func (f *fakeDeudaRepo) CreateBatch(ctx context.Context, deudas []entity.Deuda) error {
	for i := range deudas {
		if deudas[i].ID == uuid.Nil {
			deudas[i].ID = uuid.New()
		}
		d := deudas[i]
		f.deudas[d.ID] = &d
	}
	return nil
}

func (f *fakeDeudaRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Deuda, error) {
	return f.deudas[id], nil
}

func (f *fakeDeudaRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Deuda, error) {
	var out []entity.Deuda
	for _, id := range ids {
		if d, ok := f.deudas[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDeudaRepo) Update(ctx context.Context, d *entity.Deuda) error {
	f.deudas[d.ID] = d
	return nil
}

func (f *fakeDeudaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.deudas, id)
	return nil
}

func (f *fakeDeudaRepo) List(ctx context.Context, params *repository.DeudaFilterParams) ([]entity.Deuda, int64, error) {
	var out []entity.Deuda
	for _, d := range f.deudas {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (f *fakeDeudaRepo) ListByAsociado(ctx context.Context, asociadoID uuid.UUID) ([]entity.Deuda, error) {
	var out []entity.Deuda
	for _, d := range f.deudas {
		if d.AsociadoID == asociadoID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDeudaRepo) MarcarPagadas(ctx context.Context, ids []uuid.UUID, reciboID uuid.UUID) error {
	if f.errMarcar != nil {
		return f.errMarcar
	}
	f.pagadas = append(f.pagadas, ids...)
	f.pagadasRecibo = reciboID
	for _, id := range ids {
		if d, ok := f.deudas[id]; ok {
			d.Estado = enum.EstadoDeudaPagado
			rid := reciboID
			d.ReciboID = &rid
		}
	}
	return nil
}

type fakeGuiaRepo struct {
	guias      map[uuid.UUID]*entity.Guia
	porPeriodo []entity.Guia
	seq        int64
}

func newFakeGuiaRepo() *fakeGuiaRepo {
	return &fakeGuiaRepo{guias: make(map[uuid.UUID]*entity.Guia)}
}

func (f *fakeGuiaRepo) Create(ctx context.Context, g *entity.Guia) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	f.guias[g.ID] = g
	return nil
}

func (f *fakeGuiaRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guia, error) {
	return f.guias[id], nil
}

func (f *fakeGuiaRepo) GetByNumero(ctx context.Context, numero string) (*entity.Guia, error) {
	for _, g := range f.guias {
		if g.NumeroGuia == numero {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGuiaRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Guia, error) {
	return f.guias[id], nil
}

func (f *fakeGuiaRepo) Update(ctx context.Context, g *entity.Guia) error {
	f.guias[g.ID] = g
	return nil
}

func (f *fakeGuiaRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado enum.EstadoGuia) error {
	if g, ok := f.guias[id]; ok {
		g.Estado = estado
	}
	return nil
}

func (f *fakeGuiaRepo) List(ctx context.Context, params *repository.GuiaFilterParams) ([]entity.Guia, int64, error) {
	var out []entity.Guia
	for _, g := range f.guias {
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (f *fakeGuiaRepo) ListWithCursor(ctx context.Context, params *repository.GuiaCursorFilterParams) ([]entity.Guia, error) {
	return nil, nil
}

func (f *fakeGuiaRepo) ReplaceItems(ctx context.Context, guiaID uuid.UUID, items []entity.GuiaItem) error {
	if g, ok := f.guias[guiaID]; ok {
		g.Items = items
	}
	return nil
}

func (f *fakeGuiaRepo) NextNumero(ctx context.Context) (int64, error) {
	f.seq++
	return f.seq, nil
}

func (f *fakeGuiaRepo) ListByPeriodo(ctx context.Context, desde, hasta time.Time) ([]entity.Guia, error) {
	return f.porPeriodo, nil
}

type fakeEmpresaRepo struct {
	config *entity.ConfigEmpresa
}

func (f *fakeEmpresaRepo) Get(ctx context.Context) (*entity.ConfigEmpresa, error) {
	return f.config, nil
}

func (f *fakeEmpresaRepo) Create(ctx context.Context, config *entity.ConfigEmpresa) error {
	f.config = config
	return nil
}

func (f *fakeEmpresaRepo) Update(ctx context.Context, config *entity.ConfigEmpresa) error {
	f.config = config
	return nil
}

type fakeAuditoriaRepo struct {
	eventos []entity.AuditoriaEvento
}

func (f *fakeAuditoriaRepo) Create(ctx context.Context, evento *entity.AuditoriaEvento) error {
	f.eventos = append(f.eventos, *evento)
	return nil
}

func (f *fakeAuditoriaRepo) List(ctx context.Context, params *repository.AuditoriaFilterParams) ([]entity.AuditoriaEvento, int64, error) {
	return f.eventos, int64(len(f.eventos)), nil
}

func configDePrueba() *entity.ConfigEmpresa {
	return &entity.ConfigEmpresa{
		ID:                   uuid.New(),
		Nombre:               "Cooperativa de Prueba",
		CostoPorKg:           decimal.NewFromInt(5),
		TasaIva:              decimal.NewFromFloat(0.16),
		TasaIpostel:          decimal.NewFromFloat(0.06),
		TasaIgtf:             decimal.NewFromFloat(0.03),
		TarifaPasajeroUSD:    decimal.NewFromInt(10),
		PorcentajeProduccion: decimal.NewFromInt(5),
		TasaBCV:              decimal.NewFromInt(40),
	}
}

func nuevoDeudaService(deudaRepo *fakeDeudaRepo, asociadoRepo *fakeAsociadoRepo, guiaRepo *fakeGuiaRepo, config *entity.ConfigEmpresa) *DeudaService {
	auditoria := NewAuditoriaService(&fakeAuditoriaRepo{})
	empresa := NewEmpresaService(&fakeEmpresaRepo{config: config}, auditoria)
	return NewDeudaService(deudaRepo, asociadoRepo, guiaRepo, empresa, auditoria)
}

func TestCreateDeudaRejectsNonPositiveAmount(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	svc := nuevoDeudaService(newFakeDeudaRepo(), newFakeAsociadoRepo(asociado), newFakeGuiaRepo(), configDePrueba())

	_, err := svc.CreateDeuda(context.Background(), &CreateDeudaInput{
		AsociadoID: asociado.ID,
		Concepto:   "Cuota",
		MontoBs:    decimal.Zero,
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateDeudaUnknownMember(t *testing.T) {
	svc := nuevoDeudaService(newFakeDeudaRepo(), newFakeAsociadoRepo(), newFakeGuiaRepo(), configDePrueba())

	_, err := svc.CreateDeuda(context.Background(), &CreateDeudaInput{
		AsociadoID: uuid.New(),
		Concepto:   "Cuota",
		MontoBs:    decimal.NewFromInt(100),
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateDeudaPagadaEsInmutable(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	asociadoRepo := newFakeAsociadoRepo(asociado)
	deuda := &entity.Deuda{
		AsociadoID: asociado.ID,
		Concepto:   "Cuota enero",
		MontoBs:    decimal.NewFromInt(500),
		Estado:     enum.EstadoDeudaPagado,
	}
	svc := nuevoDeudaService(newFakeDeudaRepo(deuda), asociadoRepo, newFakeGuiaRepo(), configDePrueba())

	nuevoMonto := decimal.NewFromInt(900)
	_, err := svc.UpdateDeuda(context.Background(), &UpdateDeudaInput{
		ID:      deuda.ID,
		MontoBs: &nuevoMonto,
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGenerarMasiva(t *testing.T) {
	activo := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	inactivo := &entity.Asociado{Cedula: "V-222", Nombre: "Maria", Activo: false}
	asociadoRepo := newFakeAsociadoRepo(activo, inactivo)
	deudaRepo := newFakeDeudaRepo()
	svc := nuevoDeudaService(deudaRepo, asociadoRepo, newFakeGuiaRepo(), configDePrueba())

	t.Run("solo activos skips inactive members", func(t *testing.T) {
		deudas, err := svc.GenerarMasiva(context.Background(), &GenerarMasivaInput{
			Concepto:    "Cuota marzo",
			MontoBs:     decimal.NewFromInt(300),
			SoloActivos: true,
		})

		require.NoError(t, err)
		require.Len(t, deudas, 1)
		assert.Equal(t, activo.ID, deudas[0].AsociadoID)
		assert.Equal(t, enum.OrigenDeudaMasiva, deudas[0].Origen)
		assert.Equal(t, enum.EstadoDeudaPendiente, deudas[0].Estado)
	})

	t.Run("todos charges every member", func(t *testing.T) {
		deudas, err := svc.GenerarMasiva(context.Background(), &GenerarMasivaInput{
			Concepto: "Cuota abril",
			MontoBs:  decimal.NewFromInt(300),
		})

		require.NoError(t, err)
		assert.Len(t, deudas, 2)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := svc.GenerarMasiva(context.Background(), &GenerarMasivaInput{
			Concepto: "Cuota",
			MontoBs:  decimal.NewFromInt(-1),
		})

		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("empty member set rejects the batch", func(t *testing.T) {
		vacio := nuevoDeudaService(newFakeDeudaRepo(), newFakeAsociadoRepo(), newFakeGuiaRepo(), configDePrueba())

		_, err := vacio.GenerarMasiva(context.Background(), &GenerarMasivaInput{
			Concepto: "Cuota",
			MontoBs:  decimal.NewFromInt(300),
		})

		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestGenerarProduccionPasajero(t *testing.T) {
	uno := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	dos := &entity.Asociado{Cedula: "V-222", Nombre: "Maria", Activo: true}
	svc := nuevoDeudaService(newFakeDeudaRepo(), newFakeAsociadoRepo(uno, dos), newFakeGuiaRepo(), configDePrueba())

	deudas, err := svc.GenerarProduccion(context.Background(), &GenerarProduccionInput{
		Tipo:     enum.TipoProduccionPasajero,
		Concepto: "Producción pasajero marzo",
	})

	require.NoError(t, err)
	require.Len(t, deudas, 2)
	for _, d := range deudas {
		// 10 USD at 40 Bs/USD
		assert.True(t, d.MontoBs.Equal(decimal.NewFromInt(400)), "monto bs: %s", d.MontoBs)
		require.NotNil(t, d.MontoUSD)
		assert.True(t, d.MontoUSD.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, enum.OrigenDeudaProduccion, d.Origen)
	}
}

func TestGenerarProduccionPasajeroSinTarifa(t *testing.T) {
	config := configDePrueba()
	config.TarifaPasajeroUSD = decimal.Zero
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	svc := nuevoDeudaService(newFakeDeudaRepo(), newFakeAsociadoRepo(asociado), newFakeGuiaRepo(), config)

	_, err := svc.GenerarProduccion(context.Background(), &GenerarProduccionInput{
		Tipo:     enum.TipoProduccionPasajero,
		Concepto: "Producción pasajero",
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGenerarProduccionCarga(t *testing.T) {
	conCarga := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	sinCarga := &entity.Asociado{Cedula: "V-222", Nombre: "Maria", Activo: true}
	asociadoRepo := newFakeAsociadoRepo(conCarga, sinCarga)

	// Two guides sent by Pedro in the period, one by a non-member client
	guiaRepo := newFakeGuiaRepo()
	guiaRepo.porPeriodo = []entity.Guia{
		{RemitenteDocumento: "V-111", Total: decimal.NewFromInt(1000)},
		{RemitenteDocumento: "V-111", Total: decimal.NewFromInt(500)},
		{RemitenteDocumento: "J-999", Total: decimal.NewFromInt(800)},
	}
	svc := nuevoDeudaService(newFakeDeudaRepo(), asociadoRepo, guiaRepo, configDePrueba())

	desde := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	deudas, err := svc.GenerarProduccion(context.Background(), &GenerarProduccionInput{
		Tipo:     enum.TipoProduccionCarga,
		Concepto: "Producción carga marzo",
		Desde:    desde,
		Hasta:    hasta,
	})

	require.NoError(t, err)
	require.Len(t, deudas, 1)
	assert.Equal(t, conCarga.ID, deudas[0].AsociadoID)
	// 5% of 1500 Bs invoiced
	assert.True(t, deudas[0].MontoBs.Equal(decimal.NewFromInt(75)), "monto bs: %s", deudas[0].MontoBs)
}

func TestGenerarProduccionCargaSinProduccion(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	svc := nuevoDeudaService(newFakeDeudaRepo(), newFakeAsociadoRepo(asociado), newFakeGuiaRepo(), configDePrueba())

	_, err := svc.GenerarProduccion(context.Background(), &GenerarProduccionInput{
		Tipo:     enum.TipoProduccionCarga,
		Concepto: "Producción carga",
		Desde:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Hasta:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGenerarProduccionCargaPeriodoInvalido(t *testing.T) {
	asociado := &entity.Asociado{Cedula: "V-111", Nombre: "Pedro", Activo: true}
	svc := nuevoDeudaService(newFakeDeudaRepo(), newFakeAsociadoRepo(asociado), newFakeGuiaRepo(), configDePrueba())

	_, err := svc.GenerarProduccion(context.Background(), &GenerarProduccionInput{
		Tipo:     enum.TipoProduccionCarga,
		Concepto: "Producción carga",
		Desde:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Hasta:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
