package guard

import (
	"strings"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// Route ruta protegida. Roles vacío = solo requiere sesión.
type Route struct {
	Pattern string
	Roles   []entity.Role
}

var (
	employees = []entity.Role{entity.RoleEmployee}
	borrowers = []entity.Role{entity.RoleBorrower}
	everyone  = []entity.Role{entity.RoleEmployee, entity.RoleBorrower}
	admins    = []entity.Role{entity.RoleAdmin}
)

// publicRoutes no pasan por ninguna guarda.
var publicRoutes = []string{"/login", "/registro", "/acceso-denegado"}

// Routes tabla de rutas protegidas de la aplicación.
var Routes = []Route{
	{"/prestatarios", employees},
	{"/prestatarios/nuevo", employees},
	{"/prestamos", everyone},
	{"/prestamos/nuevo", borrowers},
	{"/prestamos/gestion", employees},
	{"/prestamos/:id", everyone},
	{"/cuotas/:idPrestamo", everyone},
	{"/cuotas/pendientes", employees},
	{"/reportes/resumen-prestamos", employees},
	{"/reportes/morosos", employees},
	{"/reportes/refinanciaciones", employees},
	{"/notificaciones", everyone},
	{"/notificaciones/gestion", employees},
	{"/empleados", admins},
	{"/empleados/nuevo", admins},
	{"/auditoria", employees},
	{"/cliente/inicio", borrowers},
	{"/cliente/perfil", borrowers},
	{"/perfil", everyone},
	{"/solicitudes", borrowers},
	{"/solicitudes/nueva", borrowers},
	{"/solicitudes/admin", employees},
	{"/refinanciaciones", borrowers},
	{"/refinanciaciones/admin", employees},
	{"/ayuda", nil},
	{"/", nil},
}

// Lookup busca la ruta que corresponde a path. Las rutas literales ganan sobre las que tienen parámetros.
func Lookup(path string) (Route, bool) {
	var candidate *Route
	for i := range Routes {
		r := &Routes[i]
		if r.Pattern == path {
			return *r, true
		}
		if candidate == nil && Match(r.Pattern, path) {
			candidate = r
		}
	}
	if candidate == nil {
		return Route{}, false
	}
	return *candidate, true
}

// Match compara un patrón con segmentos ":param" contra una ruta concreta.
func Match(pattern, path string) bool {
	ps := splitPath(pattern)
	xs := splitPath(path)
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

// Check evalúa las guardas de la ruta. Rutas desconocidas redirigen al inicio, como el comodín del router.
func Check(s ports.IdentitySource, path string) Decision {
	for _, p := range publicRoutes {
		if p == path {
			return allow
		}
	}
	r, ok := Lookup(path)
	if !ok {
		return Decision{Redirect: "/"}
	}
	if d := RequireAuth(s); !d.Allowed {
		return d
	}
	if len(r.Roles) == 0 {
		return allow
	}
	return RequireRole(s, r.Roles...)
}
