package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/config"
	"github.com/coopertrans/guias-api/internal/infrastructure/database"
	"github.com/coopertrans/guias-api/internal/infrastructure/repository"
	"github.com/coopertrans/guias-api/internal/presentation/http/handler"
	"github.com/coopertrans/guias-api/internal/presentation/http/routes"
	"github.com/coopertrans/guias-api/pkg/oauth"
	"github.com/coopertrans/guias-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	guiaRepo := repository.NewGuiaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	asociadoRepo := repository.NewAsociadoRepository(db)
	deudaRepo := repository.NewDeudaRepository(db)
	reciboRepo := repository.NewReciboRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	oficinaRepo := repository.NewOficinaRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	activoRepo := repository.NewActivoRepository(db)
	cuentaRepo := repository.NewCuentaRepository(db)
	respaldoRepo := repository.NewRespaldoRepository(db)
	reporteRepo := repository.NewReporteRepository(db)
	auditoriaRepo := repository.NewAuditoriaRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	auditoriaService := service.NewAuditoriaService(auditoriaRepo)
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager, googleOAuthService)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo, auditoriaService)
	empresaService := service.NewEmpresaService(empresaRepo, auditoriaService)
	guiaService := service.NewGuiaService(guiaRepo, clienteRepo, oficinaRepo, empresaService, auditoriaService)
	clienteService := service.NewClienteService(clienteRepo, auditoriaService)
	asociadoService := service.NewAsociadoService(asociadoRepo, deudaRepo, reciboRepo, auditoriaService)
	deudaService := service.NewDeudaService(deudaRepo, asociadoRepo, guiaRepo, empresaService, auditoriaService)
	reciboService := service.NewReciboService(reciboRepo, deudaRepo, asociadoRepo, empresaService, auditoriaService)
	proveedorService := service.NewProveedorService(proveedorRepo, compraRepo, auditoriaService)
	oficinaService := service.NewOficinaService(oficinaRepo, auditoriaService)
	inventarioService := service.NewInventarioService(inventarioRepo, activoRepo, auditoriaService)
	cuentaService := service.NewCuentaService(cuentaRepo, auditoriaService)
	respaldoService := service.NewRespaldoService(respaldoRepo, auditoriaService)
	reporteService := service.NewReporteService(reporteRepo, guiaRepo, compraRepo, empresaService)
	mantenimientoService := service.NewMantenimientoService(mantenimientoRepo, auditoriaService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		User:          handler.NewUserHandler(userService),
		Guia:          handler.NewGuiaHandler(guiaService),
		Cliente:       handler.NewClienteHandler(clienteService),
		Asociado:      handler.NewAsociadoHandler(asociadoService),
		Deuda:         handler.NewDeudaHandler(deudaService),
		Recibo:        handler.NewReciboHandler(reciboService),
		Proveedor:     handler.NewProveedorHandler(proveedorService),
		Oficina:       handler.NewOficinaHandler(oficinaService),
		Empresa:       handler.NewEmpresaHandler(empresaService),
		Inventario:    handler.NewInventarioHandler(inventarioService),
		Cuenta:        handler.NewCuentaHandler(cuentaService),
		Respaldo:      handler.NewRespaldoHandler(respaldoService),
		Reporte:       handler.NewReporteHandler(reporteService),
		Auditoria:     handler.NewAuditoriaHandler(auditoriaService),
		Mantenimiento: handler.NewMantenimientoHandler(mantenimientoService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
