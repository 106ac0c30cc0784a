package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente represents a sender or receiver registered with the cooperative
type Cliente struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TipoDocumento   string         `gorm:"size:5;not null" json:"tipo_documento"` // V, E, J, G
	NumeroDocumento string         `gorm:"size:20;unique;not null" json:"numero_documento"`
	Nombre          string         `gorm:"size:255;not null" json:"nombre"`
	Telefono        *string        `gorm:"size:50" json:"telefono,omitempty"`
	Email           *string        `gorm:"size:255" json:"email,omitempty"`
	Direccion       *string        `gorm:"type:text" json:"direccion,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Guias []Guia `gorm:"foreignKey:ClienteID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cliente
func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cliente model
func (Cliente) TableName() string {
	return "clientes"
}
