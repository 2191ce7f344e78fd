package auth

import (
	"crypto/rsa"
	"errors"
	"strings"

	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/pkg/jwt"
)

// ErrMissingToken no se recibió el header Authorization o viene vacío.
var ErrMissingToken = errors.New("token requerido")

// Gate verifica tokens Bearer RS256 contra la llave pública configurada.
type Gate struct {
	publicKey       *rsa.PublicKey
	expectedSubject string
}

// NewGate construye el verificador. expectedSubject vacío desactiva la comparación del sub.
func NewGate(publicKey *rsa.PublicKey, expectedSubject string) *Gate {
	return &Gate{publicKey: publicKey, expectedSubject: expectedSubject}
}

// Authenticate valida un valor de header "Bearer <token>" y devuelve el principal.
// Errores: ErrMissingToken si falta el token; domain.ErrUnauthorized si es inválido.
func (g *Gate) Authenticate(authorization string) (Principal, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return Principal{}, ErrMissingToken
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, domain.ErrUnauthorized
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return Principal{}, ErrMissingToken
	}
	claims, err := jwt.Verify(g.publicKey, token, g.expectedSubject)
	if err != nil {
		return Principal{}, errors.Join(domain.ErrUnauthorized, err)
	}
	return Principal{Subject: claims.Subject, Roles: claims.Roles}, nil
}
