package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(dia int) time.Time {
	return time.Date(2025, time.March, dia, 0, 0, 0, 0, time.UTC)
}

func TestConciliarSaldoCero(t *testing.T) {
	cargos := []Cargo{
		{Fecha: fecha(1), Concepto: "Cuota marzo", Monto: decimal.NewFromInt(100)},
		{Fecha: fecha(10), Concepto: "Fondo de reparaciones", Monto: decimal.NewFromInt(50)},
	}
	abonos := []Abono{
		{Fecha: fecha(15), Concepto: "Recibo R-0001", Monto: decimal.NewFromInt(150)},
	}

	movimientos, saldo := Conciliar(cargos, abonos, nil, nil)

	require.Len(t, movimientos, 3)
	assert.True(t, saldo.IsZero(), "saldo: %s", saldo)
	assert.True(t, movimientos[0].Saldo.Equal(decimal.NewFromInt(100)))
	assert.True(t, movimientos[1].Saldo.Equal(decimal.NewFromInt(150)))
	assert.True(t, movimientos[2].Saldo.IsZero())
}

func TestConciliarPagoParcial(t *testing.T) {
	cargos := []Cargo{
		{Fecha: fecha(1), Concepto: "Cuota marzo", Monto: decimal.NewFromInt(100)},
		{Fecha: fecha(10), Concepto: "Fondo de reparaciones", Monto: decimal.NewFromInt(50)},
	}
	abonos := []Abono{
		{Fecha: fecha(15), Concepto: "Recibo R-0002", Monto: decimal.NewFromInt(100)},
	}

	_, saldo := Conciliar(cargos, abonos, nil, nil)

	assert.True(t, saldo.Equal(decimal.NewFromInt(50)), "saldo: %s", saldo)
}

func TestConciliarOrdenCronologico(t *testing.T) {
	cargos := []Cargo{
		{Fecha: fecha(20), Concepto: "Cuota abril", Monto: decimal.NewFromInt(100)},
		{Fecha: fecha(1), Concepto: "Cuota marzo", Monto: decimal.NewFromInt(100)},
	}
	abonos := []Abono{
		{Fecha: fecha(5), Concepto: "Recibo R-0003", Monto: decimal.NewFromInt(100)},
	}

	movimientos, _ := Conciliar(cargos, abonos, nil, nil)

	require.Len(t, movimientos, 3)
	assert.Equal(t, "Cuota marzo", movimientos[0].Concepto)
	assert.Equal(t, "Recibo R-0003", movimientos[1].Concepto)
	assert.Equal(t, "Cuota abril", movimientos[2].Concepto)
}

func TestConciliarDebitoAntesDeCreditoEnMismaFecha(t *testing.T) {
	cargos := []Cargo{
		{Fecha: fecha(5), Concepto: "Cuota", Monto: decimal.NewFromInt(80)},
	}
	abonos := []Abono{
		{Fecha: fecha(5), Concepto: "Recibo R-0004", Monto: decimal.NewFromInt(80)},
	}

	movimientos, saldo := Conciliar(cargos, abonos, nil, nil)

	require.Len(t, movimientos, 2)
	assert.False(t, movimientos[0].Debito.IsZero())
	assert.False(t, movimientos[1].Credito.IsZero())
	assert.True(t, saldo.IsZero())
}

func TestConciliarFiltraPorPeriodo(t *testing.T) {
	cargos := []Cargo{
		{Fecha: fecha(1), Concepto: "Cuota marzo", Monto: decimal.NewFromInt(100)},
		{Fecha: fecha(25), Concepto: "Cuota abril", Monto: decimal.NewFromInt(100)},
	}
	abonos := []Abono{
		{Fecha: fecha(10), Concepto: "Recibo R-0005", Monto: decimal.NewFromInt(100)},
	}

	desde := fecha(5)
	hasta := fecha(20)
	movimientos, saldo := Conciliar(cargos, abonos, &desde, &hasta)

	// only the receipt falls inside the window, no opening balance carries over
	require.Len(t, movimientos, 1)
	assert.Equal(t, "Recibo R-0005", movimientos[0].Concepto)
	assert.True(t, saldo.Equal(decimal.NewFromInt(-100)), "saldo: %s", saldo)
}

func TestConciliarVacio(t *testing.T) {
	movimientos, saldo := Conciliar(nil, nil, nil, nil)

	assert.Empty(t, movimientos)
	assert.True(t, saldo.IsZero())
}
