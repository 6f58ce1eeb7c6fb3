package models

import "gorm.io/gorm"

// Rol es un tipo cerrado: sólo existen estos tres valores.
type Rol string

const (
	RolAdmin    Rol = "admin"
	RolMedico   Rol = "medico"
	RolPaciente Rol = "paciente"
)

// EsValido reporta si r es uno de los tres roles conocidos.
func (r Rol) EsValido() bool {
	switch r {
	case RolAdmin, RolMedico, RolPaciente:
		return true
	}
	return false
}

type Usuario struct {
	gorm.Model
	Username       string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash   string `gorm:"column:password;not null"`
	TipoUsuario    Rol    `gorm:"type:varchar(20);not null"`
	NombreCompleto string `gorm:"size:255"`
	Email          string `gorm:"size:255"`
}

func (Usuario) TableName() string { return "usuarios" }
