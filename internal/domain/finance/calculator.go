// Package finance holds the pure calculation logic of the cooperative:
// the shipping-guide financial calculator and the member account ledger.
// Nothing here touches the database or the HTTP layer, so every function
// is referentially transparent and directly testable.
package finance

import (
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// FactorVolumetrico is the divisor used to convert a volume in cm³ into
// a volumetric weight in kg.
const FactorVolumetrico = 5000.0

// Mercancia is one merchandise line of a guide as the calculator sees it
type Mercancia struct {
	Cantidad int
	PesoKg   float64
	LargoCm  float64
	AnchoCm  float64
	AltoCm   float64
}

// PesoVolumetrico returns the volumetric weight of a single piece
func (m Mercancia) PesoVolumetrico() float64 {
	return m.LargoCm * m.AnchoCm * m.AltoCm / FactorVolumetrico
}

// PesoFacturable returns the billable weight of a merchandise list:
// for each line, the greater of the real and volumetric weight times the
// quantity. Inputs are expected to be non-negative; callers clamp before
// invoking.
func PesoFacturable(items []Mercancia) float64 {
	var total float64
	for _, it := range items {
		peso := it.PesoKg
		if v := it.PesoVolumetrico(); v > peso {
			peso = v
		}
		total += peso * float64(it.Cantidad)
	}
	return total
}

// Tarifas are the company rates in force when a guide is calculated.
// The tax rates are fractions (0.16 for 16%), the insurance and discount
// percentages on the guide itself are percent values (15 for 15%).
type Tarifas struct {
	CostoPorKg   decimal.Decimal
	TarifaManejo decimal.Decimal
	TasaIpostel  decimal.Decimal
	TasaIva      decimal.Decimal
	TasaIgtf     decimal.Decimal
}

// Envio is the calculator's view of a guide
type Envio struct {
	Items               []Mercancia
	Moneda              enum.Moneda
	TieneSeguro         bool
	PorcentajeSeguro    decimal.Decimal
	TieneDescuento      bool
	PorcentajeDescuento decimal.Decimal
}

// Financieros is the full set of derived amounts for a guide
type Financieros struct {
	PesoFacturable decimal.Decimal
	ValorDeclarado decimal.Decimal
	Flete          decimal.Decimal
	Seguro         decimal.Decimal
	Manejo         decimal.Decimal
	Descuento      decimal.Decimal
	Subtotal       decimal.Decimal
	Ipostel        decimal.Decimal
	Iva            decimal.Decimal
	Igtf           decimal.Decimal
	Total          decimal.Decimal
}

var cien = decimal.NewFromInt(100)

// ValorDeclarado derives the declared value of a merchandise list:
// billable weight times the configured cost per kg. It must be recomputed
// whenever the merchandise changes.
func ValorDeclarado(items []Mercancia, costoPorKg decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(PesoFacturable(items)).Mul(costoPorKg)
}

// Calcular derives the complete financial breakdown of a guide from its
// merchandise and the company rates. An empty merchandise list yields an
// all-zero result. IGTF applies only when the guide is paid in foreign
// currency.
func Calcular(e Envio, t Tarifas) Financieros {
	peso := decimal.NewFromFloat(PesoFacturable(e.Items))
	flete := peso.Mul(t.CostoPorKg)
	valorDeclarado := flete

	seguro := decimal.Zero
	if e.TieneSeguro {
		seguro = valorDeclarado.Mul(e.PorcentajeSeguro).Div(cien)
	}

	manejo := t.TarifaManejo

	descuento := decimal.Zero
	if e.TieneDescuento {
		descuento = flete.Add(seguro).Add(manejo).Mul(e.PorcentajeDescuento).Div(cien)
	}

	subtotal := flete.Add(seguro).Add(manejo).Sub(descuento)
	ipostel := subtotal.Mul(t.TasaIpostel)
	iva := subtotal.Mul(t.TasaIva)

	igtf := decimal.Zero
	if e.Moneda.EsDivisa() {
		igtf = subtotal.Add(ipostel).Add(iva).Mul(t.TasaIgtf)
	}

	return Financieros{
		PesoFacturable: peso,
		ValorDeclarado: valorDeclarado,
		Flete:          flete,
		Seguro:         seguro,
		Manejo:         manejo,
		Descuento:      descuento,
		Subtotal:       subtotal,
		Ipostel:        ipostel,
		Iva:            iva,
		Igtf:           igtf,
		Total:          subtotal.Add(ipostel).Add(iva).Add(igtf),
	}
}
