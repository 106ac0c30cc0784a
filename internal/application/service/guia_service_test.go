package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/domain/finance"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

type fakeClienteRepo struct {
	clientes map[uuid.UUID]*entity.Cliente
}

func newFakeClienteRepo(clientes ...*entity.Cliente) *fakeClienteRepo {
	f := &fakeClienteRepo{clientes: make(map[uuid.UUID]*entity.Cliente)}
	for _, c := range clientes {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		f.clientes[c.ID] = c
	}
	return f
}

func (f *fakeClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.clientes[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cliente, error) {
	return f.clientes[id], nil
}

func (f *fakeClienteRepo) GetByDocumento(ctx context.Context, tipo, numero string) (*entity.Cliente, error) {
	for _, c := range f.clientes {
		if c.TipoDocumento == tipo && c.NumeroDocumento == numero {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	f.clientes[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.clientes, id)
	return nil
}

func (f *fakeClienteRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Cliente, int64, error) {
	var out []entity.Cliente
	for _, c := range f.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeClienteRepo) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Cliente, error) {
	return nil, nil
}

type fakeOficinaRepo struct {
	oficinas map[uuid.UUID]*entity.Oficina
}

func newFakeOficinaRepo(oficinas ...*entity.Oficina) *fakeOficinaRepo {
	f := &fakeOficinaRepo{oficinas: make(map[uuid.UUID]*entity.Oficina)}
	for _, o := range oficinas {
		if o.ID == uuid.Nil {
			o.ID = uuid.New()
		}
		f.oficinas[o.ID] = o
	}
	return f
}

func (f *fakeOficinaRepo) Create(ctx context.Context, o *entity.Oficina) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	f.oficinas[o.ID] = o
	return nil
}

func (f *fakeOficinaRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Oficina, error) {
	return f.oficinas[id], nil
}

func (f *fakeOficinaRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Oficina, error) {
	for _, o := range f.oficinas {
		if o.Codigo == codigo {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOficinaRepo) Update(ctx context.Context, o *entity.Oficina) error {
	f.oficinas[o.ID] = o
	return nil
}

func (f *fakeOficinaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.oficinas, id)
	return nil
}

func (f *fakeOficinaRepo) List(ctx context.Context) ([]entity.Oficina, error) {
	var out []entity.Oficina
	for _, o := range f.oficinas {
		out = append(out, *o)
	}
	return out, nil
}

type guiaFixture struct {
	svc      *GuiaService
	guiaRepo *fakeGuiaRepo
	origen   *entity.Oficina
	destino  *entity.Oficina
	cliente  *entity.Cliente
}

func nuevaGuiaFixture() *guiaFixture {
	origen := &entity.Oficina{Codigo: "CCS", Nombre: "Caracas"}
	destino := &entity.Oficina{Codigo: "MCY", Nombre: "Maracay"}
	cliente := &entity.Cliente{Nombre: "Pedro Pérez", TipoDocumento: "V", NumeroDocumento: "111"}

	guiaRepo := newFakeGuiaRepo()
	auditoria := NewAuditoriaService(&fakeAuditoriaRepo{})
	empresa := NewEmpresaService(&fakeEmpresaRepo{config: configDePrueba()}, auditoria)
	svc := NewGuiaService(guiaRepo, newFakeClienteRepo(cliente), newFakeOficinaRepo(origen, destino), empresa, auditoria)

	return &guiaFixture{svc: svc, guiaRepo: guiaRepo, origen: origen, destino: destino, cliente: cliente}
}

func itemsDePrueba() []GuiaItemInput {
	return []GuiaItemInput{
		{Descripcion: "Caja de repuestos", Cantidad: 2, PesoKg: 3, LargoCm: 10, AnchoCm: 10, AltoCm: 10},
		{Descripcion: "Neumático", Cantidad: 1, PesoKg: 1, LargoCm: 50, AnchoCm: 40, AltoCm: 30},
	}
}

func TestCreateGuiaDerivaFinancieros(t *testing.T) {
	fx := nuevaGuiaFixture()

	guia, err := fx.svc.CreateGuia(context.Background(), &CreateGuiaInput{
		UserID:             uuid.New(),
		ClienteID:          &fx.cliente.ID,
		RemitenteNombre:    fx.cliente.Nombre,
		RemitenteDocumento: "V-111",
		DestinatarioNombre: "María López",
		DestinatarioDoc:    "V-222",
		OficinaOrigenID:    fx.origen.ID,
		OficinaDestinoID:   fx.destino.ID,
		TipoEnvio:          enum.TipoEnvioPaquete,
		CondicionPago:      enum.CondicionPagoContado,
		MetodoPago:         "efectivo",
		Items:              itemsDePrueba(),
	})

	require.NoError(t, err)
	assert.Equal(t, "G-000001", guia.NumeroGuia)
	assert.Equal(t, enum.EstadoGuiaActiva, guia.Estado)
	assert.Equal(t, enum.MonedaVES, guia.Moneda, "currency defaults to bolivars")

	config := configDePrueba()
	want := finance.Calcular(finance.Envio{
		Items: []finance.Mercancia{
			{Cantidad: 2, PesoKg: 3, LargoCm: 10, AnchoCm: 10, AltoCm: 10},
			{Cantidad: 1, PesoKg: 1, LargoCm: 50, AnchoCm: 40, AltoCm: 30},
		},
		Moneda: enum.MonedaVES,
	}, finance.Tarifas{
		CostoPorKg:   config.CostoPorKg,
		TarifaManejo: config.TarifaManejo,
		TasaIpostel:  config.TasaIpostel,
		TasaIva:      config.TasaIva,
		TasaIgtf:     config.TasaIgtf,
	})

	assert.True(t, guia.PesoFacturable.Equal(want.PesoFacturable), "peso: %s", guia.PesoFacturable)
	assert.True(t, guia.Flete.Equal(want.Flete), "flete: %s", guia.Flete)
	assert.True(t, guia.Ipostel.Equal(want.Ipostel))
	assert.True(t, guia.Iva.Equal(want.Iva))
	assert.True(t, guia.Igtf.Equal(want.Igtf), "no IGTF on a bolivar guide")
	assert.True(t, guia.Total.Equal(want.Total), "total: %s", guia.Total)
}

func TestCreateGuiaSinMercancia(t *testing.T) {
	fx := nuevaGuiaFixture()

	guia, err := fx.svc.CreateGuia(context.Background(), &CreateGuiaInput{
		UserID:             uuid.New(),
		RemitenteNombre:    "Pedro Pérez",
		RemitenteDocumento: "V-111",
		DestinatarioNombre: "María López",
		DestinatarioDoc:    "V-222",
		OficinaOrigenID:    fx.origen.ID,
		OficinaDestinoID:   fx.destino.ID,
	})

	require.NoError(t, err, "a guide without merchandise is valid")
	assert.True(t, guia.Total.IsZero())
	assert.True(t, guia.PesoFacturable.IsZero())
}

func TestCreateGuiaMismaOficina(t *testing.T) {
	fx := nuevaGuiaFixture()

	_, err := fx.svc.CreateGuia(context.Background(), &CreateGuiaInput{
		UserID:             uuid.New(),
		RemitenteNombre:    "Pedro Pérez",
		RemitenteDocumento: "V-111",
		DestinatarioNombre: "María López",
		DestinatarioDoc:    "V-222",
		OficinaOrigenID:    fx.origen.ID,
		OficinaDestinoID:   fx.origen.ID,
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateGuiaClienteInexistente(t *testing.T) {
	fx := nuevaGuiaFixture()
	desconocido := uuid.New()

	_, err := fx.svc.CreateGuia(context.Background(), &CreateGuiaInput{
		UserID:             uuid.New(),
		ClienteID:          &desconocido,
		RemitenteNombre:    "Pedro Pérez",
		RemitenteDocumento: "V-111",
		DestinatarioNombre: "María López",
		DestinatarioDoc:    "V-222",
		OficinaOrigenID:    fx.origen.ID,
		OficinaDestinoID:   fx.destino.ID,
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateGuiaPorcentajeInvalido(t *testing.T) {
	fx := nuevaGuiaFixture()

	_, err := fx.svc.CreateGuia(context.Background(), &CreateGuiaInput{
		UserID:             uuid.New(),
		RemitenteNombre:    "Pedro Pérez",
		RemitenteDocumento: "V-111",
		DestinatarioNombre: "María López",
		DestinatarioDoc:    "V-222",
		OficinaOrigenID:    fx.origen.ID,
		OficinaDestinoID:   fx.destino.ID,
		TieneDescuento:     true,
		PorcentajeDescuento: decimal.NewFromInt(150),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestAnularGuia(t *testing.T) {
	fx := nuevaGuiaFixture()

	guia, err := fx.svc.CreateGuia(context.Background(), &CreateGuiaInput{
		UserID:             uuid.New(),
		RemitenteNombre:    "Pedro Pérez",
		RemitenteDocumento: "V-111",
		DestinatarioNombre: "María López",
		DestinatarioDoc:    "V-222",
		OficinaOrigenID:    fx.origen.ID,
		OficinaDestinoID:   fx.destino.ID,
		Items:              itemsDePrueba(),
	})
	require.NoError(t, err)

	anulada, err := fx.svc.AnularGuia(context.Background(), guia.ID, "duplicada")
	require.NoError(t, err)
	assert.Equal(t, enum.EstadoGuiaAnulada, anulada.Estado)
	// The number is never released
	assert.Equal(t, guia.NumeroGuia, anulada.NumeroGuia)

	t.Run("double annulment is rejected", func(t *testing.T) {
		_, err := fx.svc.AnularGuia(context.Background(), guia.ID, "")
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("annulled guide cannot be edited", func(t *testing.T) {
		_, err := fx.svc.UpdateGuia(context.Background(), &UpdateGuiaInput{
			ID:              guia.ID,
			RemitenteNombre: "Otro Nombre",
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestUpdateGuiaRecalculaFinancieros(t *testing.T) {
	fx := nuevaGuiaFixture()

	guia, err := fx.svc.CreateGuia(context.Background(), &CreateGuiaInput{
		UserID:             uuid.New(),
		RemitenteNombre:    "Pedro Pérez",
		RemitenteDocumento: "V-111",
		DestinatarioNombre: "María López",
		DestinatarioDoc:    "V-222",
		OficinaOrigenID:    fx.origen.ID,
		OficinaDestinoID:   fx.destino.ID,
		Items:              itemsDePrueba(),
	})
	require.NoError(t, err)
	totalOriginal := guia.Total

	// Replacing the merchandise with an empty list zeroes the breakdown
	actualizada, err := fx.svc.UpdateGuia(context.Background(), &UpdateGuiaInput{
		ID:    guia.ID,
		Items: []GuiaItemInput{},
	})

	require.NoError(t, err)
	assert.False(t, totalOriginal.IsZero())
	assert.True(t, actualizada.Total.IsZero())
	assert.Empty(t, actualizada.Items)
}

func TestCotizarNoPersiste(t *testing.T) {
	fx := nuevaGuiaFixture()

	fin, err := fx.svc.Cotizar(context.Background(), &CotizarInput{
		Moneda: enum.MonedaUSD,
		Items:  itemsDePrueba(),
	})

	require.NoError(t, err)
	assert.False(t, fin.Total.IsZero())
	assert.False(t, fin.Igtf.IsZero(), "USD shipments carry IGTF")
	assert.Empty(t, fx.guiaRepo.guias, "a quotation writes nothing")
}
