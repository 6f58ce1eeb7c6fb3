package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gestion-radiografias/internal/auth"
	"gestion-radiografias/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// motorDePrueba arma un router mínimo con sesiones, una ruta que inicia
// sesión con el rol pedido y rutas protegidas como las reales.
func motorDePrueba(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("secreto-de-prueba"))
	r.Use(sessions.Sessions("sesion_prueba", store))
	r.Use(InyectarIdentidad())

	r.GET("/entrar", func(c *gin.Context) {
		rol := models.Rol(c.Query("rol"))
		err := GuardarIdentidad(c, auth.Identity{
			UserID:         7,
			Username:       "prueba",
			TipoUsuario:    rol,
			NombreCompleto: "Usuario de Prueba",
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "no se pudo guardar la sesión")
			return
		}
		c.String(http.StatusOK, "ok")
	})
	r.GET("/salir", func(c *gin.Context) {
		_ = DestruirSesion(c)
		c.String(http.StatusOK, "ok")
	})

	priv := r.Group("/")
	priv.Use(RequireAuth())
	priv.GET("/privada", func(c *gin.Context) { c.String(http.StatusOK, "privada") })
	priv.GET("/solo-admin", RequireRole(models.RolAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "zona admin")
	})

	return r
}

func iniciarSesion(t *testing.T, r *gin.Engine, rol models.Rol) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/entrar?rol="+string(rol), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login de prueba: status %d", w.Code)
	}
	return w.Result().Cookies()
}

func pedir(r *gin.Engine, ruta string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, ruta, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_SinSesionRedirige(t *testing.T) {
	r := motorDePrueba(t)

	w := pedir(r, "/privada", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("sin sesión esperaba 302, fue %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirección a %q, esperaba /login", loc)
	}
}

func TestRequireRole_SinSesionRedirige(t *testing.T) {
	r := motorDePrueba(t)

	w := pedir(r, "/solo-admin", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("sin sesión esperaba redirección, fue %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirección a %q, esperaba /login", loc)
	}
}

func TestRequireRole_RolIncorrectoVe403(t *testing.T) {
	r := motorDePrueba(t)
	cookies := iniciarSesion(t, r, models.RolMedico)

	w := pedir(r, "/solo-admin", cookies)
	if w.Code != http.StatusForbidden {
		t.Fatalf("rol incorrecto esperaba 403, fue %d", w.Code)
	}
	// es una página de denegación, no una redirección
	if loc := w.Header().Get("Location"); loc != "" {
		t.Fatalf("no debía redirigir, Location=%q", loc)
	}
	if !strings.Contains(w.Body.String(), "No tienes permisos") {
		t.Fatalf("la página 403 no muestra el mensaje de denegación: %s", w.Body.String())
	}
}

func TestRequireRole_RolCorrectoPasa(t *testing.T) {
	r := motorDePrueba(t)
	cookies := iniciarSesion(t, r, models.RolAdmin)

	w := pedir(r, "/solo-admin", cookies)
	if w.Code != http.StatusOK || w.Body.String() != "zona admin" {
		t.Fatalf("admin debía pasar: status=%d body=%q", w.Code, w.Body.String())
	}
}

func TestRequireAuth_ConSesionPasa(t *testing.T) {
	r := motorDePrueba(t)
	cookies := iniciarSesion(t, r, models.RolPaciente)

	w := pedir(r, "/privada", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("con sesión esperaba 200, fue %d", w.Code)
	}
}

func TestDestruirSesion_InvalidaLaCookie(t *testing.T) {
	r := motorDePrueba(t)
	cookies := iniciarSesion(t, r, models.RolAdmin)

	// cerrar sesión con esa cookie
	req := httptest.NewRequest(http.MethodGet, "/salir", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// la cookie de respuesta ya no sirve para entrar
	w2 := pedir(r, "/privada", w.Result().Cookies())
	if w2.Code != http.StatusFound {
		t.Fatalf("tras logout esperaba redirección al login, fue %d", w2.Code)
	}
}

func TestInyectarIdentidad_RolDesconocidoNoAutentica(t *testing.T) {
	r := motorDePrueba(t)
	cookies := iniciarSesion(t, r, models.Rol("superusuario"))

	w := pedir(r, "/privada", cookies)
	if w.Code != http.StatusFound {
		t.Fatalf("rol desconocido no debe contar como sesión válida, fue %d", w.Code)
	}
}
