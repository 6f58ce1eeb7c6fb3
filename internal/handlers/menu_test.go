package handlers

import (
	"testing"

	"gestion-radiografias/internal/models"
)

func urls(menu []MenuItem) map[string]bool {
	m := make(map[string]bool, len(menu))
	for _, item := range menu {
		m[item.URL] = true
	}
	return m
}

func TestMenuParaRol_EntradasPorRol(t *testing.T) {
	casos := []struct {
		rol      models.Rol
		contiene []string
		excluye  []string
	}{
		{
			rol:      models.RolAdmin,
			contiene: []string{"/usuarios", "/codigos", "/estadisticas"},
			excluye:  []string{"/mis-pacientes", "/mis-datos"},
		},
		{
			rol:      models.RolMedico,
			contiene: []string{"/mis-pacientes", "/reportes"},
			excluye:  []string{"/usuarios", "/codigos", "/mis-datos"},
		},
		{
			rol:      models.RolPaciente,
			contiene: []string{"/mis-datos"},
			excluye:  []string{"/usuarios", "/codigos", "/mis-pacientes"},
		},
	}

	for _, caso := range casos {
		menu := MenuParaRol(caso.rol)
		tiene := urls(menu)

		// todos los roles comparten la base y el cierre de sesión
		for _, base := range []string{"/", "/pacientes", "/busqueda", "/logout"} {
			if !tiene[base] {
				t.Errorf("rol %s: falta la entrada base %s", caso.rol, base)
			}
		}
		for _, url := range caso.contiene {
			if !tiene[url] {
				t.Errorf("rol %s: falta %s", caso.rol, url)
			}
		}
		for _, url := range caso.excluye {
			if tiene[url] {
				t.Errorf("rol %s: no debería ver %s", caso.rol, url)
			}
		}
		if menu[len(menu)-1].URL != "/logout" {
			t.Errorf("rol %s: Cerrar Sesión debe ir al final", caso.rol)
		}
	}
}
