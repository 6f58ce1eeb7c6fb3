package middleware

import (
	"gestion-radiografias/internal/auth"
	"gestion-radiografias/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const claveIdentidad = "Identidad"

// claves dentro de la sesión
const (
	SesUserID         = "user_id"
	SesUsername       = "username"
	SesTipoUsuario    = "tipo_usuario"
	SesNombreCompleto = "nombre_completo"
)

// InyectarIdentidad reconstruye la identidad a partir de la sesión y la deja
// en el contexto de la petición. No consulta la BD: el rol que viaja en la
// cookie es el del último login.
func InyectarIdentidad() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		uid, ok := sess.Get(SesUserID).(uint)
		if !ok || uid == 0 {
			c.Next()
			return
		}

		username, _ := sess.Get(SesUsername).(string)
		rolStr, _ := sess.Get(SesTipoUsuario).(string)
		nombre, _ := sess.Get(SesNombreCompleto).(string)

		rol := models.Rol(rolStr)
		if !rol.EsValido() {
			c.Next()
			return
		}

		c.Set(claveIdentidad, auth.Identity{
			UserID:         uid,
			Username:       username,
			TipoUsuario:    rol,
			NombreCompleto: nombre,
		})
		c.Next()
	}
}

// IdentidadActual devuelve la identidad de la petición, si la hay.
func IdentidadActual(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(claveIdentidad)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// GuardarIdentidad escribe la identidad en la sesión (login).
func GuardarIdentidad(c *gin.Context, id auth.Identity) error {
	sess := sessions.Default(c)
	sess.Set(SesUserID, id.UserID)
	sess.Set(SesUsername, id.Username)
	sess.Set(SesTipoUsuario, string(id.TipoUsuario))
	sess.Set(SesNombreCompleto, id.NombreCompleto)
	return sess.Save()
}

// DestruirSesion invalida la sesión de inmediato (logout).
func DestruirSesion(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}
