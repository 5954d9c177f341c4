package guard

import (
	"github.com/jhoicas/banco-cliente/internal/application/gateway"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// Decision resultado de evaluar una guarda. Si no está permitido, Redirect indica el destino.
type Decision struct {
	Allowed  bool
	Redirect string
}

var allow = Decision{Allowed: true}

// RequireAuth exige un token presente (aunque no se haya podido decodificar).
func RequireAuth(s ports.IdentitySource) Decision {
	if s.Token() == "" {
		return Decision{Redirect: gateway.PathLogin}
	}
	return allow
}

// RequireRole exige identidad con alguno de los roles. ADMIN cumple los requisitos de EMPLEADO.
func RequireRole(s ports.IdentitySource, roles ...entity.Role) Decision {
	id := s.Identity()
	if id == nil {
		return Decision{Redirect: gateway.PathLogin}
	}
	for _, r := range roles {
		if id.Role.Satisfies(r) {
			return allow
		}
	}
	return Decision{Redirect: gateway.PathAccessDenied}
}

// HomePath pantalla inicial según el rol.
func HomePath(id *entity.Identity) string {
	if id == nil {
		return gateway.PathLogin
	}
	switch id.Role {
	case entity.RoleBorrower:
		return "/cliente/inicio"
	case entity.RoleEmployee, entity.RoleAdmin:
		return "/prestatarios"
	default:
		return gateway.PathLogin
	}
}
