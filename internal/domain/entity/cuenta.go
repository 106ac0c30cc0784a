package entity

import (
	"time"

	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CuentaContable represents an account in the chart of accounts
type CuentaContable struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Codigo    string          `gorm:"size:20;unique;not null" json:"codigo"`
	Nombre    string          `gorm:"size:255;not null" json:"nombre"`
	Tipo      enum.TipoCuenta `gorm:"size:20;not null" json:"tipo"`
	PadreID   *uuid.UUID      `gorm:"type:uuid;index" json:"padre_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Padre *CuentaContable  `gorm:"foreignKey:PadreID" json:"-"`
	Hijas []CuentaContable `gorm:"foreignKey:PadreID" json:"hijas,omitempty"`
}

// BeforeCreate generates a UUID before creating a new cuenta
func (c *CuentaContable) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CuentaContable model
func (CuentaContable) TableName() string {
	return "cuentas_contables"
}
