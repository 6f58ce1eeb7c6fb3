package models

import "gorm.io/gorm"

type Paciente struct {
	gorm.Model
	Nombre string  `gorm:"size:255;not null"`
	Edad   *int
	Genero *string `gorm:"size:20"` // "M" / "F"

	// UsuarioID enlaza con la cuenta cuando el paciente se registró él mismo.
	UsuarioID *uint

	Radiografias []Radiografia
}

func (Paciente) TableName() string { return "pacientes" }
