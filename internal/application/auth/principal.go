package auth

import (
	"context"
	"slices"
)

// Principal usuario autenticado: subject del token y sus roles.
type Principal struct {
	Subject string
	Roles   []string
}

// HasAnyRole indica si el principal tiene alguno de los roles indicados.
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if slices.Contains(p.Roles, r) {
			return true
		}
	}
	return false
}

type principalKey struct{}

// WithPrincipal devuelve un contexto hijo que lleva el principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extrae el principal del contexto. ok=false si la llamada no está autenticada.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
