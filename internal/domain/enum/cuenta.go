package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TipoCuenta classifies an account in the chart of accounts
type TipoCuenta string

const (
	TipoCuentaActivo     TipoCuenta = "activo"
	TipoCuentaPasivo     TipoCuenta = "pasivo"
	TipoCuentaPatrimonio TipoCuenta = "patrimonio"
	TipoCuentaIngreso    TipoCuenta = "ingreso"
	TipoCuentaEgreso     TipoCuenta = "egreso"
)

func (t TipoCuenta) String() string {
	return string(t)
}

func (t TipoCuenta) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *TipoCuenta) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = TipoCuenta(str)
	return nil
}

func (t TipoCuenta) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *TipoCuenta) Scan(value interface{}) error {
	if value == nil {
		*t = TipoCuentaActivo
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = TipoCuenta(v)
	case []byte:
		*t = TipoCuenta(string(v))
	}
	return nil
}
