package handlers

import (
	"net/http"

	"gestion-radiografias/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render — envoltorio de c.HTML que añade la identidad actual a todas las
// plantillas bajo la clave "user" (nil si no hay sesión).
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if _, ya := data["user"]; !ya {
		if id, ok := middleware.IdentidadActual(c); ok {
			data["user"] = id
		} else {
			data["user"] = nil
		}
	}

	c.HTML(status, tmpl, data)
}

// renderError muestra la página de error temática con el mensaje dado.
func renderError(c *gin.Context, status int, titulo, mensaje string) {
	render(c, status, "error.html", gin.H{
		"title":   titulo,
		"message": mensaje,
	})
}

// NotFound responde el 404 temático; se registra como NoRoute.
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound,
		"Página no encontrada", "La página que buscas no existe.")
}

// InternalError es el manejador de pánicos: loguea gin y aquí sólo se
// traduce a un mensaje genérico, nunca al detalle del error.
func InternalError(c *gin.Context, _ interface{}) {
	renderError(c, http.StatusInternalServerError,
		"Error del servidor", "Ocurrió un error interno. Por favor, intenta nuevamente.")
}
