package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditoriaEvento represents one append-only audit trail entry. Rows are
// written by the services on every sensitive mutation and never updated.
type AuditoriaEvento struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	UserEmail string     `gorm:"size:255" json:"user_email"`
	Accion    string     `gorm:"size:100;not null;index" json:"accion"` // crear, actualizar, anular, respaldar...
	Entidad   string     `gorm:"size:100;not null;index" json:"entidad"`
	EntidadID string     `gorm:"size:100" json:"entidad_id"`
	Detalle   string     `gorm:"type:text" json:"detalle"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName returns the table name for the AuditoriaEvento model
func (AuditoriaEvento) TableName() string {
	return "auditoria_eventos"
}
