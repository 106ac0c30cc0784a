package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventarioItem represents an item in the cooperative's supply inventory
type InventarioItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Codigo        string          `gorm:"size:50;unique;not null" json:"codigo"`
	Nombre        string          `gorm:"size:255;not null" json:"nombre"`
	Descripcion   *string         `gorm:"type:text" json:"descripcion,omitempty"`
	Cantidad      int             `gorm:"default:0" json:"cantidad"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"costo_unitario"`
	OficinaID     *uuid.UUID      `gorm:"type:uuid;index" json:"oficina_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Oficina *Oficina `gorm:"foreignKey:OficinaID" json:"oficina,omitempty"`
}

// BeforeCreate generates a UUID before creating a new inventario item
func (i *InventarioItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventarioItem model
func (InventarioItem) TableName() string {
	return "inventario_items"
}
