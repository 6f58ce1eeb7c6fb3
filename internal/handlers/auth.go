package handlers

import (
	"errors"
	"log"
	"net/http"

	"gestion-radiografias/internal/auth"
	"gestion-radiografias/internal/database"
	"gestion-radiografias/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	if _, ok := middleware.IdentidadActual(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"title": "Iniciar Sesión",
		"error": nil,
	})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"title": "Iniciar Sesión",
			"error": "Datos inválidos",
		})
		return
	}

	id, err := auth.Autenticar(database.DB, form.Username, form.Password)
	switch {
	case errors.Is(err, auth.ErrUsuarioNoEncontrado):
		render(c, http.StatusOK, "login.html", gin.H{
			"title": "Iniciar Sesión",
			"error": "Usuario no encontrado",
		})
		return
	case errors.Is(err, auth.ErrPasswordIncorrecta):
		render(c, http.StatusOK, "login.html", gin.H{
			"title": "Iniciar Sesión",
			"error": "Contraseña incorrecta",
		})
		return
	case err != nil:
		log.Printf("error en login: %v", err)
		render(c, http.StatusOK, "login.html", gin.H{
			"title": "Iniciar Sesión",
			"error": "Error interno del servidor",
		})
		return
	}

	if err := middleware.GuardarIdentidad(c, id); err != nil {
		log.Printf("error guardando sesión: %v", err)
		render(c, http.StatusOK, "login.html", gin.H{
			"title": "Iniciar Sesión",
			"error": "Error interno del servidor",
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func ShowRegistro(c *gin.Context) {
	if _, ok := middleware.IdentidadActual(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "registro.html", gin.H{
		"title": "Registro",
		"error": nil,
	})
}

type registroForm struct {
	Username       string `form:"username"`
	Password       string `form:"password"`
	CodigoAcceso   string `form:"codigo_acceso"`
	NombreCompleto string `form:"nombre_completo"`
	Email          string `form:"email"`
}

func Registro(c *gin.Context) {
	var form registroForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "registro.html", gin.H{
			"title": "Registro",
			"error": "Datos inválidos",
		})
		return
	}

	usuario, err := auth.Registrar(database.DB,
		form.Username, form.Password, form.CodigoAcceso,
		form.NombreCompleto, form.Email)
	switch {
	case errors.Is(err, auth.ErrCodigoInvalido):
		render(c, http.StatusOK, "registro.html", gin.H{
			"title": "Registro",
			"error": "Código de acceso inválido o ya utilizado",
		})
		return
	case err != nil:
		log.Printf("error en registro: %v", err)
		render(c, http.StatusOK, "registro.html", gin.H{
			"title": "Registro",
			"error": "Error al registrar usuario. Intente nuevamente.",
		})
		return
	}

	render(c, http.StatusOK, "registro_exitoso.html", gin.H{
		"title":    "Registro Exitoso",
		"username": usuario.Username,
		"rol":      usuario.TipoUsuario,
	})
}

func Logout(c *gin.Context) {
	if err := middleware.DestruirSesion(c); err != nil {
		log.Printf("error cerrando sesión: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
