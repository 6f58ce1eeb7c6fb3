package auth

import "gestion-radiografias/internal/models"

// Identity es lo que la sesión sabe de un usuario autenticado. Se construye
// al iniciar sesión y viaja en la cookie: no se vuelve a leer de la BD en
// cada petición, así que un cambio de rol surte efecto en el siguiente login.
type Identity struct {
	UserID         uint
	Username       string
	TipoUsuario    models.Rol
	NombreCompleto string
}

func (i Identity) EsAdmin() bool { return i.TipoUsuario == models.RolAdmin }
