package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Oficina represents a branch office of the cooperative
type Oficina struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Codigo    string         `gorm:"size:20;unique;not null" json:"codigo"`
	Nombre    string         `gorm:"size:255;not null" json:"nombre"`
	Ciudad    string         `gorm:"size:100" json:"ciudad"`
	Direccion *string        `gorm:"type:text" json:"direccion,omitempty"`
	Telefono  *string        `gorm:"size:50" json:"telefono,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new oficina
func (o *Oficina) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Oficina model
func (Oficina) TableName() string {
	return "oficinas"
}
