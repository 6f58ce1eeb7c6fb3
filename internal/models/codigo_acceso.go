package models

import (
	"time"

	"gorm.io/gorm"
)

// CodigoAcceso es un token de un solo uso que autoriza el auto-registro
// con el rol indicado en TipoUsuario. La comparación del código es
// insensible a mayúsculas; usado pasa de false a true exactamente una vez.
type CodigoAcceso struct {
	gorm.Model
	Codigo      string `gorm:"size:50;not null"`
	TipoUsuario Rol    `gorm:"type:varchar(20);not null"`
	Usado       bool   `gorm:"not null;default:false"`
	FechaUso    *time.Time
}

func (CodigoAcceso) TableName() string { return "codigos_acceso" }
