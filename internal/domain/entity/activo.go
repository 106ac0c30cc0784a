package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ActivoFijo represents a fixed asset in the cooperative's registry
type ActivoFijo struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Codigo           string          `gorm:"size:50;unique;not null" json:"codigo"`
	Nombre           string          `gorm:"size:255;not null" json:"nombre"`
	Descripcion      *string         `gorm:"type:text" json:"descripcion,omitempty"`
	FechaAdquisicion *time.Time      `gorm:"type:date" json:"fecha_adquisicion,omitempty"`
	ValorAdquisicion decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"valor_adquisicion"`
	VidaUtilMeses    int             `gorm:"default:0" json:"vida_util_meses"`
	Estado           string          `gorm:"size:50;default:'operativo'" json:"estado"` // operativo, en reparacion, desincorporado
	OficinaID        *uuid.UUID      `gorm:"type:uuid;index" json:"oficina_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Oficina *Oficina `gorm:"foreignKey:OficinaID" json:"oficina,omitempty"`
}

// BeforeCreate generates a UUID before creating a new activo fijo
func (a *ActivoFijo) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ActivoFijo model
func (ActivoFijo) TableName() string {
	return "activos_fijos"
}
