package auth

import (
	"errors"
	"strings"
	"time"

	"gestion-radiografias/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// login
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrPasswordIncorrecta  = errors.New("contraseña incorrecta")

	// registro
	ErrCodigoInvalido = errors.New("código de acceso inválido o ya utilizado")
)

// Autenticar busca el usuario por username exacto y verifica la contraseña.
// Los dos caminos de fallo no son de tiempo constante entre sí: el compare
// de bcrypt sólo corre cuando el usuario existe. Comportamiento conocido y
// documentado, no lo "arreglamos" en silencio.
func Autenticar(db *gorm.DB, username, password string) (Identity, error) {
	var usuario models.Usuario
	err := db.Where("username = ?", username).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return Identity{}, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrPasswordIncorrecta
	}

	return Identity{
		UserID:         usuario.ID,
		Username:       usuario.Username,
		TipoUsuario:    usuario.TipoUsuario,
		NombreCompleto: usuario.NombreCompleto,
	}, nil
}

// Registrar canjea un código de acceso y da de alta al usuario con el rol
// que el código autoriza. Todo en una transacción: usuario, paciente (si el
// rol es paciente) y el marcado del código; cualquier fallo revierte los
// tres. El UPDATE condicional sobre usado=false garantiza que dos canjes
// concurrentes del mismo código no puedan tener éxito ambos.
func Registrar(db *gorm.DB, username, password, codigo, nombreCompleto, email string) (*models.Usuario, error) {
	username = strings.TrimSpace(username)
	codigo = strings.TrimSpace(codigo)

	var ca models.CodigoAcceso
	err := db.Where("UPPER(codigo) = UPPER(?) AND usado = ?", codigo, false).
		First(&ca).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCodigoInvalido
	}
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := models.Usuario{
		Username:       username,
		PasswordHash:   string(hash),
		TipoUsuario:    ca.TipoUsuario,
		NombreCompleto: nombreCompleto,
		Email:          email,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usuario).Error; err != nil {
			return err
		}

		if ca.TipoUsuario == models.RolPaciente {
			paciente := models.Paciente{
				Nombre:    nombreCompleto,
				UsuarioID: &usuario.ID,
			}
			if err := tx.Create(&paciente).Error; err != nil {
				return err
			}
		}

		ahora := time.Now()
		res := tx.Model(&models.CodigoAcceso{}).
			Where("id = ? AND usado = ?", ca.ID, false).
			Updates(map[string]interface{}{"usado": true, "fecha_uso": ahora})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			// alguien canjeó el código entre la consulta y el update
			return ErrCodigoInvalido
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usuario, nil
}
