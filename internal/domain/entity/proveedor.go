package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Proveedor represents a supplier of the cooperative
type Proveedor struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Rif       string         `gorm:"size:20;unique;not null" json:"rif"`
	Nombre    string         `gorm:"size:255;not null" json:"nombre"`
	Telefono  *string        `gorm:"size:50" json:"telefono,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Direccion *string        `gorm:"type:text" json:"direccion,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Compras []CompraProveedor `gorm:"foreignKey:ProveedorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new proveedor
func (p *Proveedor) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Proveedor model
func (Proveedor) TableName() string {
	return "proveedores"
}
