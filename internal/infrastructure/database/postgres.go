package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/coopertrans/guias-api/internal/config"
	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Restores from old backups may reference users that no longer
		// exist, so referential integrity is enforced by the maintenance
		// scan instead of database constraints
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},

		// Registries
		&entity.Oficina{},
		&entity.Asociado{},
		&entity.Cliente{},
		&entity.Proveedor{},

		// Shipping guides
		&entity.Guia{},
		&entity.GuiaItem{},

		// Member account
		&entity.Deuda{},
		&entity.Recibo{},
		&entity.ReciboDetalle{},

		// Administration
		&entity.InventarioItem{},
		&entity.ActivoFijo{},
		&entity.CuentaContable{},
		&entity.CompraProveedor{},

		// System entities
		&entity.ConfigEmpresa{},
		&entity.AuditoriaEvento{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Document numbering sequences
	for _, seq := range []string{"guias_numero_seq", "recibos_numero_seq"} {
		if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + seq).Error; err != nil {
			return fmt.Errorf("failed to create sequence %s: %w", seq, err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (roles, permissions,
// admin user, company configuration and the base chart of accounts)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissions := []entity.Permission{
		{Name: "ver-dashboard", GuardName: "web"},
		{Name: "gestionar-guias", GuardName: "web"},
		{Name: "anular-guias", GuardName: "web"},
		{Name: "gestionar-asociados", GuardName: "web"},
		{Name: "gestionar-deudas", GuardName: "web"},
		{Name: "gestionar-recibos", GuardName: "web"},
		{Name: "gestionar-clientes", GuardName: "web"},
		{Name: "gestionar-proveedores", GuardName: "web"},
		{Name: "gestionar-compras", GuardName: "web"},
		{Name: "gestionar-inventario", GuardName: "web"},
		{Name: "gestionar-activos", GuardName: "web"},
		{Name: "gestionar-cuentas", GuardName: "web"},
		{Name: "ver-reportes", GuardName: "web"},
		{Name: "ver-auditoria", GuardName: "web"},
		{Name: "gestionar-usuarios", GuardName: "web"},
		{Name: "gestionar-respaldos", GuardName: "web"},
		{Name: "gestionar-configuracion", GuardName: "web"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	seleccionar := func(names []string) []entity.Permission {
		var out []entity.Permission
		for _, name := range names {
			for _, p := range allPermissions {
				if p.Name == name {
					out = append(out, p)
					break
				}
			}
		}
		return out
	}

	// Create admin role with all permissions
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			GuardName:   "web",
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	// Create operador role: day-to-day guide and registry work
	var operadorRole entity.Role
	if err := db.Where("name = ?", "operador").First(&operadorRole).Error; err != nil {
		operadorRole = entity.Role{
			Name:      "operador",
			GuardName: "web",
			Permissions: seleccionar([]string{
				"ver-dashboard",
				"gestionar-guias",
				"gestionar-clientes",
				"gestionar-inventario",
			}),
		}
		if err := db.Create(&operadorRole).Error; err != nil {
			log.Printf("Warning: failed to create operador role: %v", err)
		}
	}

	// Create contador role: member account, purchases and reports
	var contadorRole entity.Role
	if err := db.Where("name = ?", "contador").First(&contadorRole).Error; err != nil {
		contadorRole = entity.Role{
			Name:      "contador",
			GuardName: "web",
			Permissions: seleccionar([]string{
				"ver-dashboard",
				"gestionar-asociados",
				"gestionar-deudas",
				"gestionar-recibos",
				"gestionar-proveedores",
				"gestionar-compras",
				"gestionar-activos",
				"gestionar-cuentas",
				"ver-reportes",
				"ver-auditoria",
			}),
		}
		if err := db.Create(&contadorRole).Error; err != nil {
			log.Printf("Warning: failed to create contador role: %v", err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var role entity.Role
				if err := db.Where("name = ?", "admin").First(&role).Error; err == nil {
					if adminName == "" {
						adminName = "Administrador"
					}
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{role},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	if err := seedConfigEmpresa(db); err != nil {
		return err
	}
	if err := seedPlanDeCuentas(db); err != nil {
		return err
	}

	log.Println("Default data seeding completed")
	return nil
}

// seedConfigEmpresa creates the company configuration row with the legal
// rates in force if none exists yet
func seedConfigEmpresa(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.ConfigEmpresa{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	config := entity.ConfigEmpresa{
		Nombre:      viper.GetString("EMPRESA_NOMBRE"),
		Rif:         viper.GetString("EMPRESA_RIF"),
		CostoPorKg:  decimal.NewFromInt(1),
		TasaIva:     decimal.NewFromFloat(0.16),
		TasaIpostel: decimal.NewFromFloat(0.06),
		TasaIgtf:    decimal.NewFromFloat(0.03),

		PorcentajeProduccion: decimal.NewFromInt(25),

		TasaBCV: decimal.NewFromInt(1),
	}
	if config.Nombre == "" {
		config.Nombre = "Cooperativa de Transporte"
	}
	if err := db.Create(&config).Error; err != nil {
		return fmt.Errorf("failed to seed company configuration: %w", err)
	}
	log.Println("Company configuration created with default rates")
	return nil
}

// seedPlanDeCuentas creates the top-level chart of accounts if empty
func seedPlanDeCuentas(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.CuentaContable{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cuentas := []entity.CuentaContable{
		{Codigo: "1", Nombre: "Activo", Tipo: enum.TipoCuentaActivo},
		{Codigo: "2", Nombre: "Pasivo", Tipo: enum.TipoCuentaPasivo},
		{Codigo: "3", Nombre: "Patrimonio", Tipo: enum.TipoCuentaPatrimonio},
		{Codigo: "4", Nombre: "Ingresos", Tipo: enum.TipoCuentaIngreso},
		{Codigo: "5", Nombre: "Egresos", Tipo: enum.TipoCuentaEgreso},
	}
	if err := db.Create(&cuentas).Error; err != nil {
		return fmt.Errorf("failed to seed chart of accounts: %w", err)
	}
	log.Println("Base chart of accounts created")
	return nil
}
