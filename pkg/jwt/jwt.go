package jwt

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSubjectMismatch el sub del token no coincide con el esperado.
var ErrSubjectMismatch = errors.New("jwt: subject no coincide")

// Claims incluye los claims estándar JWT más la lista de roles del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Generate firma un token RS256 con subject y roles.
func Generate(key *rsa.PrivateKey, subject string, roles []string, issuer string, expMinutes int) (string, error) {
	if key == nil {
		return "", fmt.Errorf("jwt: llave privada vacía")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(key)
}

// Verify valida firma RS256 y expiración, y devuelve los claims.
// Si expectedSubject no está vacío, el sub del token debe coincidir.
func Verify(key *rsa.PublicKey, tokenString, expectedSubject string) (*Claims, error) {
	if key == nil {
		return nil, fmt.Errorf("jwt: llave pública vacía")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("jwt: subject vacío")
	}
	if expectedSubject != "" && claims.Subject != expectedSubject {
		return nil, ErrSubjectMismatch
	}
	return claims, nil
}

// LoadPublicKey lee una llave pública RSA en formato PEM.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer llave pública: %w", err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("parsear llave pública: %w", err)
	}
	return key, nil
}

// LoadPrivateKey lee una llave privada RSA en formato PEM (PKCS#1 o PKCS#8).
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer llave privada: %w", err)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("parsear llave privada: %w", err)
	}
	return key, nil
}
