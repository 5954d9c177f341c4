package remote

import (
	"context"
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
)

// AuthAPI colaborador de autenticación.
type AuthAPI struct {
	c *Client
}

var _ ports.Authenticator = (*AuthAPI)(nil)

// NewAuthAPI construye el adaptador.
func NewAuthAPI(c *Client) *AuthAPI { return &AuthAPI{c: c} }

// Login POST /api/auth/login (sin bearer). Devuelve el token emitido.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (string, error) {
	var out any
	if err := a.c.PostAnonymous(ctx, "/api/auth/login", dto.LoginRequest{Username: username, Password: password}, &out); err != nil {
		return "", err
	}
	token := asRecord(out).str("token")
	if token == "" {
		return "", fmt.Errorf("remote: login sin token en la respuesta")
	}
	return token, nil
}
