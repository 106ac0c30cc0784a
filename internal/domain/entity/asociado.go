package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asociado represents a cooperative member, billed periodically for
// dues and production
type Asociado struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CodigoSocio  string         `gorm:"size:50;unique;not null" json:"codigo_socio"`
	Cedula       string         `gorm:"size:20;unique;not null" json:"cedula"`
	Nombre       string         `gorm:"size:255;not null" json:"nombre"`
	Telefono     *string        `gorm:"size:50" json:"telefono,omitempty"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Direccion    *string        `gorm:"type:text" json:"direccion,omitempty"`
	Placa        *string        `gorm:"size:20" json:"placa,omitempty"`
	Activo       bool           `gorm:"default:true;index" json:"activo"`
	FechaIngreso *time.Time     `gorm:"type:date" json:"fecha_ingreso,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Deudas  []Deuda  `gorm:"foreignKey:AsociadoID" json:"-"`
	Recibos []Recibo `gorm:"foreignKey:AsociadoID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new asociado
func (a *Asociado) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Asociado model
func (Asociado) TableName() string {
	return "asociados"
}
