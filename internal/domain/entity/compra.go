package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompraProveedor represents a supplier invoice received by the
// cooperative. These rows feed the SENIAT Libro de Compras export.
type CompraProveedor struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProveedorID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"proveedor_id"`
	NumeroFactura string          `gorm:"size:50;not null" json:"numero_factura"`
	NumeroControl string          `gorm:"size:50" json:"numero_control"`
	Fecha         time.Time       `gorm:"type:date;not null;index" json:"fecha"`
	BaseImponible decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"base_imponible"`
	MontoExento   decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"monto_exento"`
	MontoIva      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"monto_iva"`
	RetencionIva  decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"retencion_iva"`
	Total         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"`
	Descripcion   *string         `gorm:"type:text" json:"descripcion,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID" json:"proveedor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new compra
func (c *CompraProveedor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompraProveedor model
func (CompraProveedor) TableName() string {
	return "compras_proveedores"
}
