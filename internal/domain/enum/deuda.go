package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EstadoDeuda represents the payment status of a member debt line
type EstadoDeuda string

const (
	EstadoDeudaPendiente EstadoDeuda = "Pendiente"
	EstadoDeudaPagado    EstadoDeuda = "Pagado"
)

func (e EstadoDeuda) String() string {
	return string(e)
}

func (e EstadoDeuda) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(e))
}

func (e *EstadoDeuda) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*e = EstadoDeuda(str)
	return nil
}

func (e EstadoDeuda) Value() (driver.Value, error) {
	return string(e), nil
}

func (e *EstadoDeuda) Scan(value interface{}) error {
	if value == nil {
		*e = EstadoDeudaPendiente
		return nil
	}
	switch v := value.(type) {
	case string:
		*e = EstadoDeuda(v)
	case []byte:
		*e = EstadoDeuda(string(v))
	}
	return nil
}

// OrigenDeuda records how a debt line was generated
type OrigenDeuda string

const (
	OrigenDeudaManual     OrigenDeuda = "manual"
	OrigenDeudaMasiva     OrigenDeuda = "masiva"
	OrigenDeudaProduccion OrigenDeuda = "produccion"
)

func (o OrigenDeuda) String() string {
	return string(o)
}

func (o OrigenDeuda) Value() (driver.Value, error) {
	return string(o), nil
}

func (o *OrigenDeuda) Scan(value interface{}) error {
	if value == nil {
		*o = OrigenDeudaManual
		return nil
	}
	switch v := value.(type) {
	case string:
		*o = OrigenDeuda(v)
	case []byte:
		*o = OrigenDeuda(string(v))
	}
	return nil
}

// TipoProduccion selects the production-based debt formula
type TipoProduccion string

const (
	TipoProduccionPasajero TipoProduccion = "pasajero"
	TipoProduccionCarga    TipoProduccion = "carga"
)
