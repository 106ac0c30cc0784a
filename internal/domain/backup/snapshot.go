// Package backup defines the portable snapshot format used to export
// and restore the cooperative's data, plus the pure merge logic that
// decides which incoming rows are new.
package backup

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
)

// Snapshot is the on-disk backup document: one top-level key per
// collection. Guides carry their merchandise lines and receipts their
// payment details embedded, so restoring a parent restores its children.
type Snapshot struct {
	Version     int                      `json:"version"`
	GeneradoEn  string                   `json:"generado_en,omitempty"`
	Oficinas    []entity.Oficina         `json:"oficinas,omitempty"`
	Asociados   []entity.Asociado        `json:"asociados"`
	Clientes    []entity.Cliente         `json:"clientes,omitempty"`
	Proveedores []entity.Proveedor       `json:"proveedores,omitempty"`
	Guias       []entity.Guia            `json:"guias"`
	Deudas      []entity.Deuda           `json:"deudas,omitempty"`
	Recibos     []entity.Recibo          `json:"recibos,omitempty"`
	Inventario  []entity.InventarioItem  `json:"inventario,omitempty"`
	Activos     []entity.ActivoFijo      `json:"activos,omitempty"`
	Cuentas     []entity.CuentaContable  `json:"cuentas,omitempty"`
	Compras     []entity.CompraProveedor `json:"compras,omitempty"`
	Auditoria   []entity.AuditoriaEvento `json:"auditoria,omitempty"`
}

// VersionActual is the snapshot format written by this build
const VersionActual = 1

var clavesRequeridas = []string{"asociados", "guias"}

// Parse validates and decodes a backup document. A document missing any
// required collection key is rejected before anything is decoded, so a
// random JSON file can never be restored by accident.
func Parse(data []byte) (*Snapshot, error) {
	var crudo map[string]json.RawMessage
	if err := json.Unmarshal(data, &crudo); err != nil {
		return nil, fmt.Errorf("el archivo no es un respaldo válido: %w", err)
	}
	for _, clave := range clavesRequeridas {
		if _, ok := crudo[clave]; !ok {
			return nil, fmt.Errorf("el archivo no es un respaldo válido: falta la colección %q", clave)
		}
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("el archivo no es un respaldo válido: %w", err)
	}
	return &s, nil
}

// Faltantes returns the incoming rows whose IDs are not present in the
// existing set, preserving incoming order. Applying it twice with the
// same input yields nothing the second time, which is what makes the
// merge restore idempotent.
func Faltantes[T any](existentes, entrantes []T, id func(T) uuid.UUID) []T {
	vistos := make(map[uuid.UUID]struct{}, len(existentes))
	for _, e := range existentes {
		vistos[id(e)] = struct{}{}
	}

	var nuevos []T
	for _, in := range entrantes {
		if _, ok := vistos[id(in)]; ok {
			continue
		}
		vistos[id(in)] = struct{}{}
		nuevos = append(nuevos, in)
	}
	return nuevos
}

// Conteos summarizes a snapshot per collection, used for the restore
// preview and the audit trail detail.
func (s *Snapshot) Conteos() map[string]int {
	return map[string]int{
		"oficinas":    len(s.Oficinas),
		"asociados":   len(s.Asociados),
		"clientes":    len(s.Clientes),
		"proveedores": len(s.Proveedores),
		"guias":       len(s.Guias),
		"deudas":      len(s.Deudas),
		"recibos":     len(s.Recibos),
		"inventario":  len(s.Inventario),
		"activos":     len(s.Activos),
		"cuentas":     len(s.Cuentas),
		"compras":     len(s.Compras),
		"auditoria":   len(s.Auditoria),
	}
}
