package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/backup"
	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type respaldoRepository struct {
	db *gorm.DB
}

// NewRespaldoRepository creates a new backup repository
func NewRespaldoRepository(db *gorm.DB) domainRepo.RespaldoRepository {
	return &respaldoRepository{db: db}
}

func (r *respaldoRepository) Export(ctx context.Context) (*backup.Snapshot, error) {
	s := &backup.Snapshot{Version: backup.VersionActual}
	db := r.db.WithContext(ctx)

	if err := db.Order("codigo ASC").Find(&s.Oficinas).Error; err != nil {
		return nil, err
	}
	if err := db.Order("codigo_socio ASC").Find(&s.Asociados).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&s.Clientes).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&s.Proveedores).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Items").Order("numero_guia ASC").Find(&s.Guias).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&s.Deudas).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Detalles").Order("numero_recibo ASC").Find(&s.Recibos).Error; err != nil {
		return nil, err
	}
	if err := db.Order("codigo ASC").Find(&s.Inventario).Error; err != nil {
		return nil, err
	}
	if err := db.Order("codigo ASC").Find(&s.Activos).Error; err != nil {
		return nil, err
	}
	if err := db.Order("codigo ASC").Find(&s.Cuentas).Error; err != nil {
		return nil, err
	}
	if err := db.Order("fecha ASC").Find(&s.Compras).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at ASC").Find(&s.Auditoria).Error; err != nil {
		return nil, err
	}

	return s, nil
}

// mergeColeccion inserts only the incoming rows whose IDs do not exist
// yet. Soft-deleted rows count as existing so a merge never resurrects
// them.
func mergeColeccion[T any](tx *gorm.DB, tabla string, entrantes []T, id func(T) uuid.UUID) (int, error) {
	if len(entrantes) == 0 {
		return 0, nil
	}

	// Unscoped: soft-deleted IDs must be listed too
	var existentes []T
	if err := tx.Table(tabla).Unscoped().Select("id").Find(&existentes).Error; err != nil {
		return 0, err
	}

	nuevos := backup.Faltantes(existentes, entrantes, id)
	if len(nuevos) == 0 {
		return 0, nil
	}
	if err := tx.Create(&nuevos).Error; err != nil {
		return 0, err
	}
	return len(nuevos), nil
}

func (r *respaldoRepository) Merge(ctx context.Context, s *backup.Snapshot) (map[string]int, error) {
	agregados := make(map[string]int)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Parents before children so references resolve inside the same
		// transaction
		pasos := []struct {
			clave string
			run   func() (int, error)
		}{
			{"oficinas", func() (int, error) {
				return mergeColeccion(tx, "oficinas", s.Oficinas, func(e entity.Oficina) uuid.UUID { return e.ID })
			}},
			{"asociados", func() (int, error) {
				return mergeColeccion(tx, "asociados", s.Asociados, func(e entity.Asociado) uuid.UUID { return e.ID })
			}},
			{"clientes", func() (int, error) {
				return mergeColeccion(tx, "clientes", s.Clientes, func(e entity.Cliente) uuid.UUID { return e.ID })
			}},
			{"proveedores", func() (int, error) {
				return mergeColeccion(tx, "proveedores", s.Proveedores, func(e entity.Proveedor) uuid.UUID { return e.ID })
			}},
			{"guias", func() (int, error) {
				return mergeColeccion(tx, "guias", s.Guias, func(e entity.Guia) uuid.UUID { return e.ID })
			}},
			{"recibos", func() (int, error) {
				return mergeColeccion(tx, "recibos", s.Recibos, func(e entity.Recibo) uuid.UUID { return e.ID })
			}},
			{"deudas", func() (int, error) {
				return mergeColeccion(tx, "deudas", s.Deudas, func(e entity.Deuda) uuid.UUID { return e.ID })
			}},
			{"inventario", func() (int, error) {
				return mergeColeccion(tx, "inventario_items", s.Inventario, func(e entity.InventarioItem) uuid.UUID { return e.ID })
			}},
			{"activos", func() (int, error) {
				return mergeColeccion(tx, "activos_fijos", s.Activos, func(e entity.ActivoFijo) uuid.UUID { return e.ID })
			}},
			{"cuentas", func() (int, error) {
				return mergeColeccion(tx, "cuentas_contables", s.Cuentas, func(e entity.CuentaContable) uuid.UUID { return e.ID })
			}},
			{"compras", func() (int, error) {
				return mergeColeccion(tx, "compras_proveedores", s.Compras, func(e entity.CompraProveedor) uuid.UUID { return e.ID })
			}},
			{"auditoria", func() (int, error) {
				return mergeColeccion(tx, "auditoria_eventos", s.Auditoria, func(e entity.AuditoriaEvento) uuid.UUID { return e.ID })
			}},
		}

		for _, paso := range pasos {
			n, err := paso.run()
			if err != nil {
				return err
			}
			agregados[paso.clave] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return agregados, nil
}

func (r *respaldoRepository) Replace(ctx context.Context, s *backup.Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children before parents. The audit trail is deliberately not
		// wiped.
		tablas := []string{
			"recibo_detalles",
			"deudas",
			"recibos",
			"guia_items",
			"guias",
			"compras_proveedores",
			"inventario_items",
			"activos_fijos",
			"cuentas_contables",
			"clientes",
			"proveedores",
			"asociados",
			"oficinas",
		}
		for _, tabla := range tablas {
			if err := tx.Exec("DELETE FROM " + tabla).Error; err != nil {
				return err
			}
		}

		cargar := func(rows interface{}, vacio bool) error {
			if vacio {
				return nil
			}
			return tx.Create(rows).Error
		}

		if err := cargar(&s.Oficinas, len(s.Oficinas) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Asociados, len(s.Asociados) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Clientes, len(s.Clientes) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Proveedores, len(s.Proveedores) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Guias, len(s.Guias) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Recibos, len(s.Recibos) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Deudas, len(s.Deudas) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Inventario, len(s.Inventario) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Activos, len(s.Activos) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Cuentas, len(s.Cuentas) == 0); err != nil {
			return err
		}
		if err := cargar(&s.Compras, len(s.Compras) == 0); err != nil {
			return err
		}
		return nil
	})
}
