package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coopertrans/guias-api/internal/domain/enum"
)

func tarifasDePrueba() Tarifas {
	return Tarifas{
		CostoPorKg:   decimal.NewFromInt(5),
		TarifaManejo: decimal.Zero,
		TasaIpostel:  decimal.NewFromFloat(0.06),
		TasaIva:      decimal.NewFromFloat(0.16),
		TasaIgtf:     decimal.NewFromFloat(0.03),
	}
}

func TestPesoFacturable(t *testing.T) {
	tests := []struct {
		name  string
		items []Mercancia
		want  float64
	}{
		{
			name: "real weight dominates",
			items: []Mercancia{
				{Cantidad: 2, PesoKg: 3, LargoCm: 10, AnchoCm: 10, AltoCm: 10},
			},
			// volumetric is 1000/5000 = 0.2 kg, real 3 kg wins
			want: 6,
		},
		{
			name: "volumetric weight dominates",
			items: []Mercancia{
				{Cantidad: 1, PesoKg: 1, LargoCm: 50, AnchoCm: 40, AltoCm: 30},
			},
			// 60000/5000 = 12 kg beats the real 1 kg
			want: 12,
		},
		{
			name: "mixed lines accumulate",
			items: []Mercancia{
				{Cantidad: 2, PesoKg: 3, LargoCm: 10, AnchoCm: 10, AltoCm: 10},
				{Cantidad: 1, PesoKg: 1, LargoCm: 50, AnchoCm: 40, AltoCm: 30},
			},
			want: 18,
		},
		{
			name:  "no items",
			items: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PesoFacturable(tt.items))
		})
	}
}

func TestCalcularDesglosBase(t *testing.T) {
	env := Envio{
		Items: []Mercancia{
			{Cantidad: 2, PesoKg: 3, LargoCm: 10, AnchoCm: 10, AltoCm: 10},
		},
		Moneda: enum.MonedaVES,
	}

	fin := Calcular(env, tarifasDePrueba())

	assert.True(t, fin.PesoFacturable.Equal(decimal.NewFromInt(6)), "peso facturable: %s", fin.PesoFacturable)
	assert.True(t, fin.Flete.Equal(decimal.NewFromInt(30)), "flete: %s", fin.Flete)
	assert.True(t, fin.ValorDeclarado.Equal(decimal.NewFromInt(30)))
	assert.True(t, fin.Subtotal.Equal(decimal.NewFromInt(30)))
	assert.True(t, fin.Ipostel.Equal(decimal.NewFromFloat(1.8)), "ipostel: %s", fin.Ipostel)
	assert.True(t, fin.Iva.Equal(decimal.NewFromFloat(4.8)), "iva: %s", fin.Iva)
	assert.True(t, fin.Igtf.IsZero(), "igtf must be zero in bolivares")
	assert.True(t, fin.Total.Equal(decimal.NewFromFloat(36.6)), "total: %s", fin.Total)
}

func TestCalcularIgtfSoloEnDivisa(t *testing.T) {
	env := Envio{
		Items: []Mercancia{
			{Cantidad: 2, PesoKg: 3, LargoCm: 10, AnchoCm: 10, AltoCm: 10},
		},
		Moneda: enum.MonedaUSD,
	}

	fin := Calcular(env, tarifasDePrueba())

	// 3% over subtotal + ipostel + iva = 36.60 * 0.03
	assert.True(t, fin.Igtf.Equal(decimal.NewFromFloat(1.098)), "igtf: %s", fin.Igtf)
	assert.True(t, fin.Total.Equal(decimal.NewFromFloat(37.698)), "total: %s", fin.Total)
}

func TestCalcularSeguroYDescuento(t *testing.T) {
	env := Envio{
		Items: []Mercancia{
			{Cantidad: 1, PesoKg: 10},
		},
		Moneda:              enum.MonedaVES,
		TieneSeguro:         true,
		PorcentajeSeguro:    decimal.NewFromInt(10),
		TieneDescuento:      true,
		PorcentajeDescuento: decimal.NewFromInt(50),
	}
	tarifas := tarifasDePrueba()
	tarifas.TarifaManejo = decimal.NewFromInt(5)

	fin := Calcular(env, tarifas)

	// flete 50, seguro 10% of declared value 50 = 5, manejo 5
	assert.True(t, fin.Flete.Equal(decimal.NewFromInt(50)))
	assert.True(t, fin.Seguro.Equal(decimal.NewFromInt(5)), "seguro: %s", fin.Seguro)
	assert.True(t, fin.Manejo.Equal(decimal.NewFromInt(5)))
	// discount is half of flete+seguro+manejo = 30
	assert.True(t, fin.Descuento.Equal(decimal.NewFromInt(30)), "descuento: %s", fin.Descuento)
	assert.True(t, fin.Subtotal.Equal(decimal.NewFromInt(30)), "subtotal: %s", fin.Subtotal)
}

func TestCalcularSinItems(t *testing.T) {
	fin := Calcular(Envio{Moneda: enum.MonedaUSD}, tarifasDePrueba())

	assert.True(t, fin.PesoFacturable.IsZero())
	assert.True(t, fin.Flete.IsZero())
	assert.True(t, fin.Igtf.IsZero())
	assert.True(t, fin.Total.IsZero())
}
