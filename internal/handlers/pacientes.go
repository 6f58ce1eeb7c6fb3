package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"gestion-radiografias/internal/database"
	"gestion-radiografias/internal/models"

	"github.com/gin-gonic/gin"
)

// limitación conocida: lista plana de 50 sin paginación
const limitePacientes = 50

func ListPacientes(c *gin.Context) {
	var pacientes []models.Paciente
	if err := database.DB.Limit(limitePacientes).Find(&pacientes).Error; err != nil {
		log.Printf("error cargando pacientes: %v", err)
		renderError(c, http.StatusOK, "Error", "Error al cargar pacientes")
		return
	}

	render(c, http.StatusOK, "pacientes.html", gin.H{
		"title":     "Pacientes",
		"pacientes": pacientes,
	})
}

func ShowNuevoPaciente(c *gin.Context) {
	render(c, http.StatusOK, "paciente_nuevo.html", gin.H{
		"title": "Nuevo Paciente",
		"error": nil,
	})
}

func CrearPaciente(c *gin.Context) {
	nombre := strings.TrimSpace(c.PostForm("nombre"))
	edadStr := strings.TrimSpace(c.PostForm("edad"))
	genero := strings.TrimSpace(c.PostForm("genero"))

	if nombre == "" {
		render(c, http.StatusOK, "paciente_nuevo.html", gin.H{
			"title": "Nuevo Paciente",
			"error": "El nombre del paciente es requerido",
		})
		return
	}

	paciente := models.Paciente{Nombre: nombre}
	if edadStr != "" {
		edad, err := strconv.Atoi(edadStr)
		if err != nil {
			render(c, http.StatusOK, "paciente_nuevo.html", gin.H{
				"title": "Nuevo Paciente",
				"error": "La edad debe ser un número",
			})
			return
		}
		paciente.Edad = &edad
	}
	if genero != "" {
		paciente.Genero = &genero
	}

	if err := database.DB.Create(&paciente).Error; err != nil {
		log.Printf("error creando paciente: %v", err)
		render(c, http.StatusOK, "paciente_nuevo.html", gin.H{
			"title": "Nuevo Paciente",
			"error": "Error al crear paciente",
		})
		return
	}

	c.Redirect(http.StatusFound, "/pacientes")
}

func DetallePaciente(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		renderError(c, http.StatusNotFound,
			"Paciente no encontrado", "El paciente que buscas no existe.")
		return
	}

	var paciente models.Paciente
	if err := database.DB.Preload("Radiografias").First(&paciente, id).Error; err != nil {
		renderError(c, http.StatusNotFound,
			"Paciente no encontrado", "El paciente que buscas no existe.")
		return
	}

	render(c, http.StatusOK, "paciente_detalle.html", gin.H{
		"title":        "Paciente: " + paciente.Nombre,
		"paciente":     paciente,
		"radiografias": paciente.Radiografias,
	})
}

func Busqueda(c *gin.Context) {
	render(c, http.StatusOK, "busqueda.html", gin.H{
		"title": "Búsqueda",
	})
}

type resultadoBusqueda struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Edad   *int   `json:"edad"`
}

// APIBuscarPacientes alimenta la búsqueda en vivo; con menos de dos
// caracteres o ante cualquier error devuelve lista vacía, nunca un 500.
func APIBuscarPacientes(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 2 {
		c.JSON(http.StatusOK, []resultadoBusqueda{})
		return
	}

	var resultados []resultadoBusqueda
	err := database.DB.Model(&models.Paciente{}).
		Select("id, nombre, edad").
		Where("nombre LIKE ?", "%"+q+"%").
		Limit(10).
		Scan(&resultados).Error
	if err != nil {
		log.Printf("error en búsqueda: %v", err)
		c.JSON(http.StatusOK, []resultadoBusqueda{})
		return
	}
	if resultados == nil {
		resultados = []resultadoBusqueda{}
	}

	c.JSON(http.StatusOK, resultados)
}
