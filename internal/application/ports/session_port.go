package ports

import (
	"context"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

// TokenSource provee el bearer token vigente ("" si no hay sesión).
type TokenSource interface {
	Token() string
}

// Authenticator colaborador de autenticación: devuelve el token emitido.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// SessionTerminator cierre forzado de sesión (lo usa el gateway ante un 401).
type SessionTerminator interface {
	Logout()
}

// IdentitySource identidad decodificada de la sesión actual; nil si no hay.
type IdentitySource interface {
	Token() string
	Identity() *entity.Identity
}
