package handlers

import (
	"log"
	"net/http"
	"strings"

	"gestion-radiografias/internal/database"
	"gestion-radiografias/internal/models"

	"github.com/gin-gonic/gin"
)

func ListCodigos(c *gin.Context) {
	var codigos []models.CodigoAcceso
	if err := database.DB.Find(&codigos).Error; err != nil {
		log.Printf("error cargando códigos: %v", err)
		renderError(c, http.StatusOK, "Error", "Error al cargar códigos")
		return
	}

	render(c, http.StatusOK, "codigos.html", gin.H{
		"title":   "Códigos de Acceso",
		"codigos": codigos,
	})
}

func ShowNuevoCodigo(c *gin.Context) {
	render(c, http.StatusOK, "codigo_nuevo.html", gin.H{
		"title": "Nuevo Código",
		"error": nil,
	})
}

func CrearCodigo(c *gin.Context) {
	codigo := strings.TrimSpace(c.PostForm("codigo"))
	tipo := models.Rol(strings.TrimSpace(c.PostForm("tipo_usuario")))

	if codigo == "" || !tipo.EsValido() {
		render(c, http.StatusOK, "codigo_nuevo.html", gin.H{
			"title": "Nuevo Código",
			"error": "Código y tipo de usuario son requeridos",
		})
		return
	}

	// un código vivo (sin usar) no puede repetirse, sin importar mayúsculas
	var count int64
	database.DB.Model(&models.CodigoAcceso{}).
		Where("UPPER(codigo) = UPPER(?) AND usado = ?", codigo, false).
		Count(&count)
	if count > 0 {
		render(c, http.StatusOK, "codigo_nuevo.html", gin.H{
			"title": "Nuevo Código",
			"error": "Ya existe un código activo con ese valor",
		})
		return
	}

	ca := models.CodigoAcceso{Codigo: codigo, TipoUsuario: tipo}
	if err := database.DB.Create(&ca).Error; err != nil {
		log.Printf("error creando código: %v", err)
		renderError(c, http.StatusOK, "Error", "Error al crear código")
		return
	}

	c.Redirect(http.StatusFound, "/codigos")
}
