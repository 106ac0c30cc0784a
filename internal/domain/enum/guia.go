package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EstadoGuia represents the lifecycle status of a shipping guide
type EstadoGuia int

const (
	EstadoGuiaActiva  EstadoGuia = 0
	EstadoGuiaAnulada EstadoGuia = 1
)

func (s EstadoGuia) String() string {
	return [...]string{"Activa", "Anulada"}[s]
}

func (s EstadoGuia) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EstadoGuia) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = EstadoGuia(i)
		return nil
	}
	switch str {
	case "Activa":
		*s = EstadoGuiaActiva
	case "Anulada":
		*s = EstadoGuiaAnulada
	}
	return nil
}

func (s EstadoGuia) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EstadoGuia) Scan(value interface{}) error {
	if value == nil {
		*s = EstadoGuiaActiva
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EstadoGuia(v)
	case int:
		*s = EstadoGuia(v)
	}
	return nil
}

// TipoEnvio represents the kind of shipment covered by a guide
type TipoEnvio string

const (
	TipoEnvioPaquete    TipoEnvio = "paquete"
	TipoEnvioCarga      TipoEnvio = "carga"
	TipoEnvioDocumentos TipoEnvio = "documentos"
)

func (t TipoEnvio) String() string {
	return string(t)
}

func (t TipoEnvio) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *TipoEnvio) Scan(value interface{}) error {
	if value == nil {
		*t = TipoEnvioPaquete
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = TipoEnvio(v)
	case []byte:
		*t = TipoEnvio(string(v))
	}
	return nil
}

// CondicionPago represents when the freight is paid
type CondicionPago string

const (
	CondicionPagoContado CondicionPago = "contado"
	CondicionPagoCredito CondicionPago = "credito"
	CondicionPagoDestino CondicionPago = "destino"
)

func (c CondicionPago) String() string {
	return string(c)
}

func (c CondicionPago) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *CondicionPago) Scan(value interface{}) error {
	if value == nil {
		*c = CondicionPagoContado
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = CondicionPago(v)
	case []byte:
		*c = CondicionPago(string(v))
	}
	return nil
}
