package handlers

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gestion-radiografias/internal/database"
	"gestion-radiografias/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// TamMaxArchivo limita las subidas a 50 MB.
const TamMaxArchivo = 50 * 1024 * 1024

// DirSubidas es el directorio de archivos temporales; las pruebas lo apuntan
// a un directorio desechable.
var DirSubidas = "uploads"

var tiposPermitidos = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

func ImportarExportar(c *gin.Context) {
	render(c, http.StatusOK, "importar_exportar.html", gin.H{
		"title": "Importar/Exportar",
	})
}

func renderImportError(c *gin.Context, mensaje string) {
	render(c, http.StatusOK, "importar_resultado.html", gin.H{
		"title": "Importar Pacientes",
		"error": mensaje,
	})
}

// ImportarPacientes procesa un .xlsx subido en el campo "archivo": una fila,
// un paciente. Cada fila falla por separado — una fila mala no tumba el
// lote — y el archivo temporal se borra pase lo que pase.
func ImportarPacientes(c *gin.Context) {
	archivo, err := c.FormFile("archivo")
	if err != nil {
		renderImportError(c, "No se subió ningún archivo")
		return
	}

	if archivo.Size > TamMaxArchivo {
		renderImportError(c, "El archivo supera el tamaño máximo permitido (50 MB)")
		return
	}
	if tipo := archivo.Header.Get("Content-Type"); !tiposPermitidos[tipo] {
		renderImportError(c, "Tipo de archivo no permitido")
		return
	}

	if err := os.MkdirAll(DirSubidas, 0o755); err != nil {
		log.Printf("error creando directorio de subidas: %v", err)
		renderImportError(c, "Error procesando el archivo Excel")
		return
	}

	// nombre único: marca de tiempo + sufijo aleatorio, como el original
	nombreTmp := fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(), rand.Int63n(1_000_000_000),
		filepath.Ext(archivo.Filename))
	ruta := filepath.Join(DirSubidas, nombreTmp)

	if err := c.SaveUploadedFile(archivo, ruta); err != nil {
		log.Printf("error guardando archivo temporal: %v", err)
		renderImportError(c, "Error procesando el archivo Excel")
		return
	}
	defer func() {
		if err := os.Remove(ruta); err != nil {
			log.Printf("error eliminando archivo temporal: %v", err)
		}
	}()

	importados, errores, err := importarDesdeXLSX(ruta)
	if err != nil {
		log.Printf("error importando Excel: %v", err)
		renderImportError(c, "Error procesando el archivo Excel")
		return
	}

	render(c, http.StatusOK, "importar_resultado.html", gin.H{
		"title":      "Importación Completa",
		"importados": importados,
		"errores":    errores,
	})
}

// importarDesdeXLSX lee la primera hoja y crea un paciente por fila de
// datos. Devuelve cuántas filas entraron y cuántas fallaron.
func importarDesdeXLSX(ruta string) (importados, errores int, err error) {
	f, err := excelize.OpenFile(ruta)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return 0, 0, fmt.Errorf("el libro no tiene hojas")
	}
	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return 0, 0, err
	}
	if len(filas) == 0 {
		return 0, 0, nil
	}

	encabezados := filas[0]

	for _, fila := range filas[1:] {
		paciente, err := pacienteDesdeFila(encabezados, fila)
		if err != nil {
			errores++
			continue
		}
		if err := database.DB.Create(paciente).Error; err != nil {
			log.Printf("error insertando fila: %v", err)
			errores++
			continue
		}
		importados++
	}

	return importados, errores, nil
}

// celda busca la columna por encabezado exacto y, si no está, por la
// variante capitalizada ("nombre" → "Nombre").
func celda(encabezados, fila []string, nombre string) string {
	idx := -1
	for i, h := range encabezados {
		if h == nombre {
			idx = i
			break
		}
	}
	if idx == -1 {
		capitalizado := strings.ToUpper(nombre[:1]) + nombre[1:]
		for i, h := range encabezados {
			if h == capitalizado {
				idx = i
				break
			}
		}
	}
	if idx == -1 || idx >= len(fila) {
		return ""
	}
	return strings.TrimSpace(fila[idx])
}

func pacienteDesdeFila(encabezados, fila []string) (*models.Paciente, error) {
	nombre := celda(encabezados, fila, "nombre")
	if nombre == "" {
		return nil, fmt.Errorf("fila sin nombre")
	}

	paciente := &models.Paciente{Nombre: nombre}

	if edadStr := celda(encabezados, fila, "edad"); edadStr != "" {
		edad, err := strconv.Atoi(edadStr)
		if err != nil {
			return nil, fmt.Errorf("edad inválida: %q", edadStr)
		}
		paciente.Edad = &edad
	}
	if genero := celda(encabezados, fila, "genero"); genero != "" {
		paciente.Genero = &genero
	}

	return paciente, nil
}

// ExportarPacientes descarga todos los pacientes en un .xlsx de una hoja.
func ExportarPacientes(c *gin.Context) {
	var pacientes []models.Paciente
	if err := database.DB.Find(&pacientes).Error; err != nil {
		log.Printf("error exportando Excel: %v", err)
		c.String(http.StatusInternalServerError, "Error exportando datos")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Pacientes"
	f.SetSheetName(f.GetSheetName(0), hoja)

	encabezados := []interface{}{"id", "nombre", "edad", "genero", "usuario_id"}
	if err := f.SetSheetRow(hoja, "A1", &encabezados); err != nil {
		log.Printf("error exportando Excel: %v", err)
		c.String(http.StatusInternalServerError, "Error exportando datos")
		return
	}

	for i, p := range pacientes {
		fila := []interface{}{p.ID, p.Nombre}
		if p.Edad != nil {
			fila = append(fila, *p.Edad)
		} else {
			fila = append(fila, nil)
		}
		if p.Genero != nil {
			fila = append(fila, *p.Genero)
		} else {
			fila = append(fila, nil)
		}
		if p.UsuarioID != nil {
			fila = append(fila, *p.UsuarioID)
		} else {
			fila = append(fila, nil)
		}

		celdaInicial, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			log.Printf("error exportando Excel: %v", err)
			c.String(http.StatusInternalServerError, "Error exportando datos")
			return
		}
		if err := f.SetSheetRow(hoja, celdaInicial, &fila); err != nil {
			log.Printf("error exportando Excel: %v", err)
			c.String(http.StatusInternalServerError, "Error exportando datos")
			return
		}
	}

	c.Header("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=pacientes.xlsx")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("error escribiendo Excel: %v", err)
	}
}
