package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConfigEmpresa holds the cooperative's identity, billing rates and the
// current BCV exchange rate. A single row exists; the services create it
// with defaults on first read.
type ConfigEmpresa struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Nombre    string    `gorm:"size:255;not null" json:"nombre"`
	Rif       string    `gorm:"size:20" json:"rif"`
	Direccion *string   `gorm:"type:text" json:"direccion,omitempty"`
	Telefono  *string   `gorm:"size:50" json:"telefono,omitempty"`

	// Billing rates applied by the financial calculator
	CostoPorKg          decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"costo_por_kg"`
	TarifaManejo        decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"tarifa_manejo"`
	TasaIva             decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tasa_iva"`
	TasaIpostel         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tasa_ipostel"`
	TasaIgtf            decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tasa_igtf"`
	PorcentajeSeguroDef decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"porcentaje_seguro_default"`

	// Member production billing
	TarifaPasajeroUSD    decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"tarifa_pasajero_usd"`
	PorcentajeProduccion decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"porcentaje_produccion"` // % over cargo invoicing

	// Official bolivar/dollar rate used for currency-equivalent display
	TasaBCV decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tasa_bcv"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the config row
func (c *ConfigEmpresa) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ConfigEmpresa model
func (ConfigEmpresa) TableName() string {
	return "config_empresa"
}
