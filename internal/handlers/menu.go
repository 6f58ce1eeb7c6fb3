package handlers

import "gestion-radiografias/internal/models"

type MenuItem struct {
	Nombre string `json:"nombre"`
	URL    string `json:"url"`
	Icon   string `json:"icon"`
}

// MenuParaRol arma el menú lateral según el rol. El switch cubre los tres
// roles: si algún día aparece uno nuevo, el hueco se ve aquí.
func MenuParaRol(rol models.Rol) []MenuItem {
	menu := []MenuItem{
		{Nombre: "Dashboard", URL: "/", Icon: "🏠"},
		{Nombre: "Pacientes", URL: "/pacientes", Icon: "👨‍⚕️"},
		{Nombre: "Búsqueda", URL: "/busqueda", Icon: "🔍"},
	}

	switch rol {
	case models.RolAdmin:
		menu = append(menu,
			MenuItem{Nombre: "Usuarios", URL: "/usuarios", Icon: "👥"},
			MenuItem{Nombre: "Códigos", URL: "/codigos", Icon: "🔑"},
			MenuItem{Nombre: "Estadísticas", URL: "/estadisticas", Icon: "📈"},
		)
	case models.RolMedico:
		menu = append(menu,
			MenuItem{Nombre: "Mis Pacientes", URL: "/mis-pacientes", Icon: "👨‍⚕️"},
			MenuItem{Nombre: "Reportes", URL: "/reportes", Icon: "📄"},
		)
	case models.RolPaciente:
		menu = append(menu,
			MenuItem{Nombre: "Mis Datos", URL: "/mis-datos", Icon: "👤"},
		)
	}

	menu = append(menu, MenuItem{Nombre: "Cerrar Sesión", URL: "/logout", Icon: "🚪"})
	return menu
}
