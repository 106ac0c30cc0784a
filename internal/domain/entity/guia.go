package entity

import (
	"time"

	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Guia represents a shipping guide, the core invoiceable shipment record.
// The financial columns are derived from the merchandise and the company
// rates in force at the time of the last mutation; they are recomputed on
// every create/update and never written independently of the guide.
type Guia struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	NumeroGuia   string          `gorm:"size:50;unique;not null" json:"numero_guia"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	FechaEmision time.Time       `gorm:"type:date;not null;index" json:"fecha_emision"`
	Estado       enum.EstadoGuia `gorm:"default:0" json:"estado"`

	// Sender snapshot; ClienteID links the registered client when known
	ClienteID           *uuid.UUID `gorm:"type:uuid;index" json:"cliente_id,omitempty"`
	RemitenteNombre     string     `gorm:"size:255;not null" json:"remitente_nombre"`
	RemitenteDocumento  string     `gorm:"size:20;not null;index" json:"remitente_documento"`
	RemitenteTelefono   *string    `gorm:"size:50" json:"remitente_telefono,omitempty"`
	DestinatarioNombre  string     `gorm:"size:255;not null" json:"destinatario_nombre"`
	DestinatarioDoc     string     `gorm:"size:20" json:"destinatario_documento"`
	DestinatarioTelf    *string    `gorm:"size:50" json:"destinatario_telefono,omitempty"`

	OficinaOrigenID  uuid.UUID `gorm:"type:uuid;not null" json:"oficina_origen_id"`
	OficinaDestinoID uuid.UUID `gorm:"type:uuid;not null" json:"oficina_destino_id"`

	TipoEnvio     enum.TipoEnvio     `gorm:"size:20;default:'paquete'" json:"tipo_envio"`
	CondicionPago enum.CondicionPago `gorm:"size:20;default:'contado'" json:"condicion_pago"`
	MetodoPago    string             `gorm:"size:50" json:"metodo_pago"`
	Moneda        enum.Moneda        `gorm:"size:5;default:'VES'" json:"moneda"`

	TieneSeguro         bool            `gorm:"default:false" json:"tiene_seguro"`
	PorcentajeSeguro    decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"porcentaje_seguro"`
	TieneDescuento      bool            `gorm:"default:false" json:"tiene_descuento"`
	PorcentajeDescuento decimal.Decimal `gorm:"type:decimal(18,4);default:0" json:"porcentaje_descuento"`

	// Derived values
	PesoFacturable decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"peso_facturable"`
	ValorDeclarado decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"valor_declarado"`
	Flete          decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"flete"`
	MontoSeguro    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"monto_seguro"`
	Manejo         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"manejo"`
	Descuento      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"descuento"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"subtotal"`
	Ipostel        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"ipostel"`
	Iva            decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"iva"`
	Igtf           decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"igtf"`
	Total          decimal.Decimal `gorm:"type:decimal(18,4);not null;index" json:"total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User           User       `gorm:"foreignKey:UserID" json:"-"`
	Cliente        *Cliente   `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	OficinaOrigen  Oficina    `gorm:"foreignKey:OficinaOrigenID" json:"oficina_origen,omitempty"`
	OficinaDestino Oficina    `gorm:"foreignKey:OficinaDestinoID" json:"oficina_destino,omitempty"`
	Items          []GuiaItem `gorm:"foreignKey:GuiaID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new guia
func (g *Guia) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Guia model
func (Guia) TableName() string {
	return "guias"
}

// GuiaItem represents one merchandise line of a shipping guide
type GuiaItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GuiaID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"guia_id"`
	Descripcion string         `gorm:"size:255;not null" json:"descripcion"`
	Categoria   string         `gorm:"size:100" json:"categoria"`
	Cantidad    int            `gorm:"not null" json:"cantidad"`
	PesoKg      float64        `gorm:"not null" json:"peso_kg"`
	LargoCm     float64        `gorm:"default:0" json:"largo_cm"`
	AnchoCm     float64        `gorm:"default:0" json:"ancho_cm"`
	AltoCm      float64        `gorm:"default:0" json:"alto_cm"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Guia Guia `gorm:"foreignKey:GuiaID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new guia item
func (gi *GuiaItem) BeforeCreate(tx *gorm.DB) error {
	if gi.ID == uuid.Nil {
		gi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GuiaItem model
func (GuiaItem) TableName() string {
	return "guia_items"
}
