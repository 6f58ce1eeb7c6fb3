package handlers

import (
	"log"
	"net/http"

	"gestion-radiografias/internal/database"
	"gestion-radiografias/internal/models"

	"github.com/gin-gonic/gin"
)

// ListUsuarios lista las cuentas sin exponer jamás el hash de contraseña.
func ListUsuarios(c *gin.Context) {
	type filaUsuario struct {
		ID             uint
		Username       string
		TipoUsuario    models.Rol
		NombreCompleto string
		Email          string
	}

	var usuarios []filaUsuario
	err := database.DB.Model(&models.Usuario{}).
		Select("id, username, tipo_usuario, nombre_completo, email").
		Scan(&usuarios).Error
	if err != nil {
		log.Printf("error cargando usuarios: %v", err)
		renderError(c, http.StatusOK, "Error", "Error al cargar usuarios")
		return
	}

	render(c, http.StatusOK, "usuarios.html", gin.H{
		"title":    "Usuarios",
		"usuarios": usuarios,
	})
}
