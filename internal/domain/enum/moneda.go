package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Moneda represents the billing currency of a transaction
type Moneda string

const (
	MonedaVES Moneda = "VES"
	MonedaUSD Moneda = "USD"
)

func (m Moneda) String() string {
	return string(m)
}

// EsDivisa reports whether the currency is a foreign currency subject to IGTF
func (m Moneda) EsDivisa() bool {
	return m == MonedaUSD
}

func (m Moneda) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *Moneda) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = Moneda(str)
	return nil
}

func (m Moneda) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *Moneda) Scan(value interface{}) error {
	if value == nil {
		*m = MonedaVES
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = Moneda(v)
	case []byte:
		*m = Moneda(string(v))
	}
	return nil
}
