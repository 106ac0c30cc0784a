package entity

import (
	"time"

	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Deuda represents one debt line charged to a cooperative member.
// Estado flips to Pagado only through a receipt; a line referenced by a
// receipt is never deleted.
type Deuda struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	AsociadoID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"asociado_id"`
	Concepto         string           `gorm:"size:255;not null" json:"concepto"`
	MontoBs          decimal.Decimal  `gorm:"type:decimal(18,4);not null" json:"monto_bs"`
	MontoUSD         *decimal.Decimal `gorm:"type:decimal(18,4)" json:"monto_usd,omitempty"`
	FechaVencimiento time.Time        `gorm:"type:date;not null;index" json:"fecha_vencimiento"`
	Estado           enum.EstadoDeuda `gorm:"size:20;default:'Pendiente';index" json:"estado"`
	Origen           enum.OrigenDeuda `gorm:"size:20;default:'manual'" json:"origen"`
	ReciboID         *uuid.UUID       `gorm:"type:uuid;index" json:"recibo_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Asociado Asociado `gorm:"foreignKey:AsociadoID" json:"-"`
	Recibo   *Recibo  `gorm:"foreignKey:ReciboID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new deuda
func (d *Deuda) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Deuda model
func (Deuda) TableName() string {
	return "deudas"
}

// EstaPagada reports whether the debt has been settled by a receipt
func (d *Deuda) EstaPagada() bool {
	return d.Estado == enum.EstadoDeudaPagado
}
