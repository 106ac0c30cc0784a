package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recibo represents a payment receipt settling one or more member debts.
// The sum of its detail rows equals the sum of the settled debts; the
// check is enforced at registration time, before anything is written.
type Recibo struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	NumeroRecibo string          `gorm:"size:50;unique;not null" json:"numero_recibo"`
	AsociadoID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"asociado_id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	FechaPago    time.Time       `gorm:"type:date;not null;index" json:"fecha_pago"`
	MontoTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"monto_total"`
	TasaCambio   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tasa_cambio"`
	Observacion  *string         `gorm:"type:text" json:"observacion,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Asociado Asociado        `gorm:"foreignKey:AsociadoID" json:"-"`
	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Detalles []ReciboDetalle `gorm:"foreignKey:ReciboID" json:"detalles,omitempty"`
	Deudas   []Deuda         `gorm:"foreignKey:ReciboID" json:"deudas,omitempty"`
}

// BeforeCreate generates a UUID before creating a new recibo
func (r *Recibo) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Recibo model
func (Recibo) TableName() string {
	return "recibos"
}

// ReciboDetalle represents one payment method row of a receipt
type ReciboDetalle struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReciboID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"recibo_id"`
	Metodo     string          `gorm:"size:50;not null" json:"metodo"` // efectivo, transferencia, pago movil, zelle
	Banco      *string         `gorm:"size:100" json:"banco,omitempty"`
	Referencia *string         `gorm:"size:100" json:"referencia,omitempty"`
	Monto      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"monto"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relationships
	Recibo Recibo `gorm:"foreignKey:ReciboID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new recibo detalle
func (rd *ReciboDetalle) BeforeCreate(tx *gorm.DB) error {
	if rd.ID == uuid.Nil {
		rd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReciboDetalle model
func (ReciboDetalle) TableName() string {
	return "recibo_detalles"
}
