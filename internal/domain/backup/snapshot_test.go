package backup

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coopertrans/guias-api/internal/domain/entity"
)

func TestParseRechazaArchivoSinColecciones(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"json arbitrario", `{"foo": 1}`},
		{"falta guias", `{"asociados": []}`},
		{"falta asociados", `{"guias": []}`},
		{"no es json", `esto no es json`},
		{"lista en la raiz", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseAceptaRespaldoMinimo(t *testing.T) {
	s, err := Parse([]byte(`{"version": 1, "asociados": [], "guias": []}`))

	require.NoError(t, err)
	assert.Equal(t, 1, s.Version)
	assert.Empty(t, s.Asociados)
	assert.Empty(t, s.Guias)
}

func TestFaltantesEsIdempotente(t *testing.T) {
	a := entity.Asociado{ID: uuid.New(), CodigoSocio: "S-001"}
	b := entity.Asociado{ID: uuid.New(), CodigoSocio: "S-002"}
	c := entity.Asociado{ID: uuid.New(), CodigoSocio: "S-003"}
	id := func(x entity.Asociado) uuid.UUID { return x.ID }

	nuevos := Faltantes([]entity.Asociado{a}, []entity.Asociado{a, b, c}, id)
	require.Len(t, nuevos, 2)
	assert.Equal(t, "S-002", nuevos[0].CodigoSocio)
	assert.Equal(t, "S-003", nuevos[1].CodigoSocio)

	// a second merge of the same snapshot brings nothing new
	otraVez := Faltantes([]entity.Asociado{a, b, c}, []entity.Asociado{a, b, c}, id)
	assert.Empty(t, otraVez)
}

func TestFaltantesIgnoraDuplicadosEntrantes(t *testing.T) {
	a := entity.Asociado{ID: uuid.New(), CodigoSocio: "S-001"}
	id := func(x entity.Asociado) uuid.UUID { return x.ID }

	nuevos := Faltantes(nil, []entity.Asociado{a, a}, id)

	assert.Len(t, nuevos, 1)
}

func TestConteos(t *testing.T) {
	s := &Snapshot{
		Asociados: make([]entity.Asociado, 3),
		Guias:     make([]entity.Guia, 2),
	}

	conteos := s.Conteos()

	assert.Equal(t, 3, conteos["asociados"])
	assert.Equal(t, 2, conteos["guias"])
	assert.Equal(t, 0, conteos["recibos"])
}
