package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos que emite el servicio de préstamos.
// IDPrestatario solo viene en tokens de rol PRESTATARIO.
type Claims struct {
	jwt.RegisteredClaims
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Role          string `json:"role"` // "EMPLEADO" | "PRESTATARIO" | "ADMIN"
	IDPrestatario *int64 `json:"id_prestatario,omitempty"`
}

// Subject datos de la identidad que se firman en el token.
type Subject struct {
	ID            int64
	Username      string
	Role          string
	IDPrestatario *int64
}

// Generate genera un token JWT firmado con HS256.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		ID:            sub.ID,
		Username:      sub.Username,
		Role:          sub.Role,
		IDPrestatario: sub.IDPrestatario,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// Decode lee los claims sin verificar la firma. El cliente no conoce el secreto:
// solo necesita la identidad para decidir qué mostrar; el servidor sigue siendo la autoridad.
func Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
