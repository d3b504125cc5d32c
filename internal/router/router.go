package router

import (
	"time"

	"reservas/internal/config"
	"reservas/internal/handler"
	"reservas/internal/middleware"
	"reservas/internal/repository"
	"reservas/internal/service"
	"reservas/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	escenarioRepo := repository.NewEscenarioRepository(db)
	elementoRepo := repository.NewElementoRepository(db)
	reservaRepo := repository.NewReservaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	escenarioSvc := service.NewEscenarioService(escenarioRepo)
	elementoSvc := service.NewElementoService(elementoRepo)
	reservaSvc := service.NewReservaService(reservaRepo, escenarioRepo, elementoRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	escenariosH := handler.NewEscenariosHandler(escenarioSvc)
	elementosH := handler.NewElementosHandler(elementoSvc)
	reservasH := handler.NewReservasHandler(reservaSvc)
	disponibilidadH := handler.NewDisponibilidadHandler(escenarioRepo, reservaRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Catalog reads and availability — no auth required
	r.GET("/v1/escenarios", escenariosH.Listar)
	r.GET("/v1/escenarios/:id", escenariosH.ObtenerPorID)
	r.GET("/v1/escenarios/:id/disponibilidad", disponibilidadH.Consultar)
	r.GET("/v1/elementos", elementosH.Listar)
	r.GET("/v1/elementos/:codigo", elementosH.ObtenerPorCodigo)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Reservations — any authenticated user operates on their own
		v1.POST("/reservas", reservasH.Crear)
		v1.GET("/reservas", reservasH.ListarMias)
		v1.GET("/reservas/:id", reservasH.Obtener)
		v1.POST("/reservas/:id/elementos", reservasH.AgregarElementos)
		v1.DELETE("/reservas/:id/elementos/:codigo", reservasH.QuitarElemento)
		v1.PATCH("/reservas/:id/estado", reservasH.ActualizarEstado)
		v1.DELETE("/reservas/:id", reservasH.Cancelar)

		// Own profile
		v1.GET("/usuarios/me", usuariosH.Perfil)

		// Catalog writes — administrador only
		escenarios := v1.Group("/escenarios", middleware.RequireRole("administrador"))
		{
			escenarios.POST("", escenariosH.Crear)
			escenarios.PUT("/:id", escenariosH.Actualizar)
			escenarios.DELETE("/:id", escenariosH.Eliminar)
		}

		elementos := v1.Group("/elementos", middleware.RequireRole("administrador"))
		{
			elementos.POST("", elementosH.Crear)
			elementos.PUT("/:codigo", elementosH.Actualizar)
			elementos.DELETE("/:codigo", elementosH.Eliminar)
		}

		// User management — administrador only
		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:correo", usuariosH.Obtener)
			usuarios.PUT("/:correo", usuariosH.Actualizar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
