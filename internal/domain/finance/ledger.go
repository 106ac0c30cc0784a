package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Cargo is a debit entry of a member account (a debt line, dated by its
// due date)
type Cargo struct {
	Fecha      time.Time
	Concepto   string
	Referencia string
	Monto      decimal.Decimal
}

// Abono is a credit entry of a member account (a payment receipt, dated
// by its payment date)
type Abono struct {
	Fecha      time.Time
	Concepto   string
	Referencia string
	Monto      decimal.Decimal
}

// Movimiento is one row of the reconciled statement
type Movimiento struct {
	Fecha      time.Time       `json:"fecha"`
	Concepto   string          `json:"concepto"`
	Referencia string          `json:"referencia"`
	Debito     decimal.Decimal `json:"debito"`
	Credito    decimal.Decimal `json:"credito"`
	Saldo      decimal.Decimal `json:"saldo"`
}

// Conciliar merges debits and credits into one chronological statement
// and accumulates the running balance row by row. When a date range is
// given, entries outside [desde, hasta] are excluded before sorting and
// the balance covers only the filtered window — statement-for-period
// semantics, no opening balance is carried forward. Entries on the same
// date keep debits before credits.
func Conciliar(cargos []Cargo, abonos []Abono, desde, hasta *time.Time) ([]Movimiento, decimal.Decimal) {
	movimientos := make([]Movimiento, 0, len(cargos)+len(abonos))

	for _, c := range cargos {
		if fueraDeRango(c.Fecha, desde, hasta) {
			continue
		}
		movimientos = append(movimientos, Movimiento{
			Fecha:      c.Fecha,
			Concepto:   c.Concepto,
			Referencia: c.Referencia,
			Debito:     c.Monto,
			Credito:    decimal.Zero,
		})
	}
	for _, a := range abonos {
		if fueraDeRango(a.Fecha, desde, hasta) {
			continue
		}
		movimientos = append(movimientos, Movimiento{
			Fecha:      a.Fecha,
			Concepto:   a.Concepto,
			Referencia: a.Referencia,
			Debito:     decimal.Zero,
			Credito:    a.Monto,
		})
	}

	// Stable sort keeps debits ahead of credits on equal dates because
	// they were appended first
	sort.SliceStable(movimientos, func(i, j int) bool {
		return movimientos[i].Fecha.Before(movimientos[j].Fecha)
	})

	saldo := decimal.Zero
	for i := range movimientos {
		saldo = saldo.Add(movimientos[i].Debito).Sub(movimientos[i].Credito)
		movimientos[i].Saldo = saldo
	}

	return movimientos, saldo
}

func fueraDeRango(fecha time.Time, desde, hasta *time.Time) bool {
	if desde != nil && fecha.Before(*desde) {
		return true
	}
	if hasta != nil && fecha.After(*hasta) {
		return true
	}
	return false
}
