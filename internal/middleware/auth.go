package middleware

import (
	"net/http"

	"gestion-radiografias/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireAuth redirige al login a quien no tiene sesión; nunca responde 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentidadActual(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole deja pasar sólo a los roles indicados. Sin sesión se redirige
// al login; con sesión pero sin el rol se responde 403 con la página de
// error: son fallos distintos y el usuario los ve distinto.
func RequireRole(roles ...models.Rol) gin.HandlerFunc {
	roleSet := map[models.Rol]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := IdentidadActual(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if _, ok := roleSet[id.TipoUsuario]; !ok {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"title":   "Acceso Denegado",
				"message": "No tienes permisos para acceder a esta página.",
				"user":    id,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
