package models

import (
	"time"

	"gorm.io/gorm"
)

// Radiografia guarda sólo los metadatos; el archivo vive en disco.
type Radiografia struct {
	gorm.Model
	PacienteID uint
	Paciente   Paciente

	Descripcion string `gorm:"type:text"`
	RutaArchivo string `gorm:"size:500"`
	FechaToma   *time.Time
}

func (Radiografia) TableName() string { return "radiografias" }
