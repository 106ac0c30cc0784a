package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coopertrans/guias-api/internal/config"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/internal/presentation/http/handler"
	"github.com/coopertrans/guias-api/internal/presentation/http/middleware"
	"github.com/coopertrans/guias-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Guia          *handler.GuiaHandler
	Cliente       *handler.ClienteHandler
	Asociado      *handler.AsociadoHandler
	Deuda         *handler.DeudaHandler
	Recibo        *handler.ReciboHandler
	Proveedor     *handler.ProveedorHandler
	Oficina       *handler.OficinaHandler
	Empresa       *handler.EmpresaHandler
	Inventario    *handler.InventarioHandler
	Cuenta        *handler.CuentaHandler
	Respaldo      *handler.RespaldoHandler
	Reporte       *handler.ReporteHandler
	Auditoria     *handler.AuditoriaHandler
	Mantenimiento *handler.MantenimientoHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Shipping guides
	registerGuiaRoutes(protected, h, deps)

	// Clients
	registerClienteRoutes(protected, h)

	// Cooperative members
	registerAsociadoRoutes(protected, h)

	// Debts
	registerDeudaRoutes(protected, h)

	// Receipts
	registerReciboRoutes(protected, h, deps)

	// Suppliers and purchases
	registerProveedorRoutes(protected, h)

	// Inventory and fixed assets
	registerInventarioRoutes(protected, h)

	// Chart of accounts
	registerCuentaRoutes(protected, h)

	// Offices
	registerOficinaRoutes(protected, h)

	// Company configuration
	registerEmpresaRoutes(protected, h)

	// Reports
	registerReporteRoutes(protected, h)

	// Audit trail
	registerAuditoriaRoutes(protected, h)

	// Users, roles and permissions (Admin)
	registerUserRoutes(protected, h)

	// Backups (Admin)
	registerRespaldoRoutes(protected, h)

	// Data integrity maintenance (Admin)
	registerMantenimientoRoutes(protected, h)
}

func registerGuiaRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	guias := protected.Group("/guias")
	guias.Use(middleware.RequirePermission("gestionar-guias"))
	{
		guias.GET("", h.Guia.List)
		// Guide creation uses idempotency middleware to prevent duplicates
		guias.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Guia.Create)
		guias.POST("/cotizar", h.Guia.Cotizar)
		guias.GET("/numero/:numero", h.Guia.GetByNumero)
		guias.GET("/:id", h.Guia.Get)
		guias.PUT("/:id", h.Guia.Update)
		guias.POST("/:id/anular", middleware.RequirePermission("anular-guias"), h.Guia.Anular)
	}
}

func registerClienteRoutes(protected *gin.RouterGroup, h *Handlers) {
	clientes := protected.Group("/clientes")
	clientes.Use(middleware.RequirePermission("gestionar-clientes"))
	{
		clientes.GET("", h.Cliente.List)
		clientes.POST("", h.Cliente.Create)
		clientes.GET("/buscar", h.Cliente.Buscar)
		clientes.GET("/:id", h.Cliente.Get)
		clientes.PUT("/:id", h.Cliente.Update)
		clientes.DELETE("/:id", h.Cliente.Delete)
	}
}

func registerAsociadoRoutes(protected *gin.RouterGroup, h *Handlers) {
	asociados := protected.Group("/asociados")
	asociados.Use(middleware.RequirePermission("gestionar-asociados"))
	{
		asociados.GET("", h.Asociado.List)
		asociados.POST("", h.Asociado.Create)
		asociados.GET("/:id", h.Asociado.Get)
		asociados.GET("/:id/estado-cuenta", h.Asociado.EstadoCuenta)
		asociados.PUT("/:id", h.Asociado.Update)
		asociados.DELETE("/:id", h.Asociado.Delete)
	}
}

func registerDeudaRoutes(protected *gin.RouterGroup, h *Handlers) {
	deudas := protected.Group("/deudas")
	deudas.Use(middleware.RequirePermission("gestionar-deudas"))
	{
		deudas.GET("", h.Deuda.List)
		deudas.POST("", h.Deuda.Create)
		deudas.POST("/generar-masiva", h.Deuda.GenerarMasiva)
		deudas.POST("/generar-produccion", h.Deuda.GenerarProduccion)
		deudas.GET("/:id", h.Deuda.Get)
		deudas.PUT("/:id", h.Deuda.Update)
		deudas.DELETE("/:id", h.Deuda.Delete)
	}
}

func registerReciboRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	recibos := protected.Group("/recibos")
	recibos.Use(middleware.RequirePermission("gestionar-recibos"))
	{
		recibos.GET("", h.Recibo.List)
		// Receipt creation uses idempotency middleware to prevent duplicates
		recibos.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Recibo.Create)
		recibos.GET("/numero/:numero", h.Recibo.GetByNumero)
		recibos.GET("/:id", h.Recibo.Get)
	}
}

func registerProveedorRoutes(protected *gin.RouterGroup, h *Handlers) {
	proveedores := protected.Group("/proveedores")
	proveedores.Use(middleware.RequirePermission("gestionar-proveedores"))
	{
		proveedores.GET("", h.Proveedor.List)
		proveedores.POST("", h.Proveedor.Create)
		proveedores.GET("/:id", h.Proveedor.Get)
		proveedores.PUT("/:id", h.Proveedor.Update)
		proveedores.DELETE("/:id", h.Proveedor.Delete)
	}

	compras := protected.Group("/compras")
	compras.Use(middleware.RequirePermission("gestionar-compras"))
	{
		compras.GET("", h.Proveedor.ListCompras)
		compras.POST("", h.Proveedor.CreateCompra)
		compras.GET("/:id", h.Proveedor.GetCompra)
		compras.DELETE("/:id", h.Proveedor.DeleteCompra)
	}
}

func registerInventarioRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventario := protected.Group("/inventario")
	inventario.Use(middleware.RequirePermission("gestionar-inventario"))
	{
		inventario.GET("", h.Inventario.ListItems)
		inventario.POST("", h.Inventario.CreateItem)
		inventario.GET("/:id", h.Inventario.GetItem)
		inventario.PUT("/:id", h.Inventario.UpdateItem)
		inventario.POST("/:id/ajustar", h.Inventario.AjustarStock)
		inventario.DELETE("/:id", h.Inventario.DeleteItem)
	}

	activos := protected.Group("/activos")
	activos.Use(middleware.RequirePermission("gestionar-activos"))
	{
		activos.GET("", h.Inventario.ListActivos)
		activos.POST("", h.Inventario.CreateActivo)
		activos.GET("/:id", h.Inventario.GetActivo)
		activos.PUT("/:id", h.Inventario.UpdateActivo)
		activos.DELETE("/:id", h.Inventario.DeleteActivo)
	}
}

func registerCuentaRoutes(protected *gin.RouterGroup, h *Handlers) {
	cuentas := protected.Group("/cuentas")
	cuentas.Use(middleware.RequirePermission("gestionar-cuentas"))
	{
		cuentas.GET("", h.Cuenta.List)
		cuentas.POST("", h.Cuenta.Create)
		cuentas.GET("/:id", h.Cuenta.Get)
		cuentas.PUT("/:id", h.Cuenta.Update)
		cuentas.DELETE("/:id", h.Cuenta.Delete)
	}
}

func registerOficinaRoutes(protected *gin.RouterGroup, h *Handlers) {
	oficinas := protected.Group("/oficinas")
	{
		// Any authenticated user can read the office list
		oficinas.GET("", h.Oficina.List)
		oficinas.GET("/:id", h.Oficina.Get)

		admin := oficinas.Group("")
		admin.Use(middleware.RequirePermission("gestionar-configuracion"))
		{
			admin.POST("", h.Oficina.Create)
			admin.PUT("/:id", h.Oficina.Update)
			admin.DELETE("/:id", h.Oficina.Delete)
		}
	}
}

func registerEmpresaRoutes(protected *gin.RouterGroup, h *Handlers) {
	empresa := protected.Group("/empresa")
	{
		// Rates are needed by every quoting screen
		empresa.GET("", h.Empresa.GetConfig)
		empresa.PUT("", middleware.RequirePermission("gestionar-configuracion"), h.Empresa.UpdateConfig)
	}
}

func registerReporteRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/dashboard", middleware.RequirePermission("ver-dashboard"), h.Reporte.Dashboard)

	reportes := protected.Group("/reportes")
	reportes.Use(middleware.RequirePermission("ver-reportes"))
	{
		reportes.GET("/facturacion-diaria", h.Reporte.FacturacionDiaria)
		reportes.GET("/top-clientes", h.Reporte.TopClientes)
		reportes.GET("/top-deudores", h.Reporte.TopDeudores)
		reportes.GET("/libro-ventas", h.Reporte.LibroVentas)
		reportes.GET("/libro-compras", h.Reporte.LibroCompras)
	}
}

func registerAuditoriaRoutes(protected *gin.RouterGroup, h *Handlers) {
	auditoria := protected.Group("/auditoria")
	auditoria.Use(middleware.RequirePermission("ver-auditoria"))
	{
		auditoria.GET("", h.Auditoria.List)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("gestionar-usuarios"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("gestionar-usuarios"))
	{
		roles.GET("", h.User.ListRoles)
	}

	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("gestionar-usuarios"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerRespaldoRoutes(protected *gin.RouterGroup, h *Handlers) {
	respaldos := protected.Group("/respaldos")
	respaldos.Use(middleware.RequirePermission("gestionar-respaldos"))
	{
		respaldos.GET("/exportar", h.Respaldo.Exportar)
		respaldos.POST("/previsualizar", h.Respaldo.Previsualizar)
		respaldos.POST("/fusionar", h.Respaldo.Fusionar)
		respaldos.POST("/reemplazar", middleware.RequireRole("admin"), h.Respaldo.Reemplazar)
	}
}

func registerMantenimientoRoutes(protected *gin.RouterGroup, h *Handlers) {
	mantenimiento := protected.Group("/mantenimiento")
	mantenimiento.Use(middleware.RequireRole("admin"))
	{
		mantenimiento.GET("/escanear", h.Mantenimiento.Escanear)
		mantenimiento.POST("/reparar", h.Mantenimiento.Reparar)
	}
}
