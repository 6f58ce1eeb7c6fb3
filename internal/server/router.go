package server

import (
	"gestion-radiografias/internal/config"
	"gestion-radiografias/internal/handlers"
	"gestion-radiografias/internal/middleware"
	"gestion-radiografias/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.Produccion() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(handlers.InternalError))

	r.MaxMultipartMemory = handlers.TamMaxArchivo

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60, // la sesión caduca a las 24 h, sin renovación
		HttpOnly: true,
		Secure:   cfg.Produccion(),
	})
	r.Use(sessions.Sessions("gestion_radiografias", store))

	r.Use(middleware.InyectarIdentidad())

	// AUTENTICACIÓN
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/registro", handlers.ShowRegistro)
	r.POST("/registro", handlers.Registro)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DASHBOARD Y APIS DE SESIÓN
	auth.GET("/", handlers.Index)
	auth.GET("/api/menu", handlers.APIMenu)
	auth.GET("/api/tipo-usuario", handlers.APITipoUsuario)
	auth.GET("/logout", handlers.Logout)

	// BÚSQUEDA (cualquier usuario autenticado)
	auth.GET("/busqueda", handlers.Busqueda)
	auth.GET("/api/buscar/pacientes", handlers.APIBuscarPacientes)

	// PACIENTES (admin + médico)
	clinico := middleware.RequireRole(models.RolAdmin, models.RolMedico)
	auth.GET("/pacientes", clinico, handlers.ListPacientes)
	auth.GET("/pacientes/nuevo", clinico, handlers.ShowNuevoPaciente)
	auth.POST("/pacientes/nuevo", clinico, handlers.CrearPaciente)
	auth.GET("/pacientes/:id", clinico, handlers.DetallePaciente)

	// IMPORTAR / EXPORTAR (admin + médico)
	auth.GET("/importar-exportar", clinico, handlers.ImportarExportar)
	auth.POST("/importar/pacientes", clinico, handlers.ImportarPacientes)
	auth.GET("/exportar/pacientes", clinico, handlers.ExportarPacientes)

	// ESTADÍSTICAS (admin + médico)
	auth.GET("/estadisticas", clinico, handlers.Estadisticas)

	// ADMINISTRACIÓN (sólo admin)
	soloAdmin := middleware.RequireRole(models.RolAdmin)
	auth.GET("/usuarios", soloAdmin, handlers.ListUsuarios)
	auth.GET("/codigos", soloAdmin, handlers.ListCodigos)
	auth.GET("/codigos/nuevo", soloAdmin, handlers.ShowNuevoCodigo)
	auth.POST("/codigos/nuevo", soloAdmin, handlers.CrearCodigo)

	r.NoRoute(handlers.NotFound)

	return r
}
