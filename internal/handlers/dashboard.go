package handlers

import (
	"fmt"
	"log"
	"net/http"

	"gestion-radiografias/internal/database"
	"gestion-radiografias/internal/middleware"
	"gestion-radiografias/internal/models"

	"github.com/gin-gonic/gin"
)

type statsDashboard struct {
	TotalPacientes        int64 `json:"total_pacientes"`
	TotalMedicos          int64 `json:"total_medicos"`
	TotalPacientesUsuario int64 `json:"total_pacientes_usuarios"`
}

func Index(c *gin.Context) {
	var stats statsDashboard

	err := database.DB.Model(&models.Paciente{}).Count(&stats.TotalPacientes).Error
	if err == nil {
		err = database.DB.Model(&models.Usuario{}).
			Where("tipo_usuario = ?", models.RolMedico).
			Count(&stats.TotalMedicos).Error
	}
	if err == nil {
		err = database.DB.Model(&models.Usuario{}).
			Where("tipo_usuario = ?", models.RolPaciente).
			Count(&stats.TotalPacientesUsuario).Error
	}
	if err != nil {
		// el dashboard se muestra igual, con contadores a cero
		log.Printf("error cargando dashboard: %v", err)
		stats = statsDashboard{}
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"title": "Dashboard",
		"stats": stats,
	})
}

func APIMenu(c *gin.Context) {
	id, ok := middleware.IdentidadActual(c)
	if !ok {
		c.JSON(http.StatusOK, []MenuItem{})
		return
	}
	c.JSON(http.StatusOK, MenuParaRol(id.TipoUsuario))
}

func APITipoUsuario(c *gin.Context) {
	id, _ := middleware.IdentidadActual(c)
	c.JSON(http.StatusOK, gin.H{"tipo_usuario": id.TipoUsuario})
}

type resumenEstadisticas struct {
	TotalPacientes int64    `json:"total_pacientes"`
	EdadPromedio   *float64 `json:"edad_promedio"`
	Hombres        int64    `json:"hombres"`
	Mujeres        int64    `json:"mujeres"`
}

type usuariosPorTipo struct {
	TipoUsuario models.Rol `json:"tipo_usuario"`
	Cantidad    int64      `json:"cantidad"`
}

func Estadisticas(c *gin.Context) {
	var resumen resumenEstadisticas
	err := database.DB.Model(&models.Paciente{}).
		Select(`COUNT(*) as total_pacientes,
			AVG(edad) as edad_promedio,
			COUNT(CASE WHEN genero = 'M' THEN 1 END) as hombres,
			COUNT(CASE WHEN genero = 'F' THEN 1 END) as mujeres`).
		Scan(&resumen).Error
	if err != nil {
		log.Printf("error cargando estadísticas: %v", err)
		renderError(c, http.StatusOK, "Error", "Error al cargar estadísticas")
		return
	}

	var porTipo []usuariosPorTipo
	err = database.DB.Model(&models.Usuario{}).
		Select("tipo_usuario, COUNT(*) as cantidad").
		Group("tipo_usuario").
		Scan(&porTipo).Error
	if err != nil {
		log.Printf("error cargando estadísticas: %v", err)
		renderError(c, http.StatusOK, "Error", "Error al cargar estadísticas")
		return
	}

	edadPromedio := "—"
	if resumen.EdadPromedio != nil {
		edadPromedio = fmt.Sprintf("%.1f", *resumen.EdadPromedio)
	}

	render(c, http.StatusOK, "estadisticas.html", gin.H{
		"title":           "Estadísticas",
		"estadisticas":    resumen,
		"edadPromedio":    edadPromedio,
		"usuariosPorTipo": porTipo,
	})
}
