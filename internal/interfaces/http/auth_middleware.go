package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticket-logger-api/internal/application/auth"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// TokenVerifier valida el header Authorization (lo implementa *auth.Gate).
type TokenVerifier interface {
	Authenticate(authorization string) (auth.Principal, error)
}

// AuthMiddleware valida el Bearer Token RS256 y deja el principal en c.Locals y en c.UserContext().
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := verifier.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				return writeCode(c, fiber.StatusUnauthorized, CodeMissingToken, domain.MsgMissingToken)
			}
			return writeCode(c, fiber.StatusUnauthorized, CodeInvalidToken, domain.MsgInvalidToken)
		}
		c.Locals(LocalPrincipal, p)
		c.SetUserContext(auth.WithPrincipal(c.UserContext(), p))
		return c.Next()
	}
}

// RequireRole exige que el principal tenga alguno de los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return writeCode(c, fiber.StatusUnauthorized, CodeMissingToken, domain.MsgMissingToken)
		}
		if len(p.Roles) == 0 {
			return writeCode(c, fiber.StatusUnauthorized, CodeMissingRole, domain.MsgMissingRole)
		}
		if !p.HasAnyRole(roles...) {
			return writeCode(c, fiber.StatusForbidden, CodeForbidden, domain.MsgForbidden)
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal autenticado (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (auth.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(auth.Principal)
	return p, ok
}

// RequestLogger registra cada petición con su status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
			if err, ok := c.Locals(localError).(error); ok {
				ev = ev.Err(err)
			} else if chainErr != nil {
				ev = ev.Err(chainErr)
			}
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		if p, ok := GetPrincipal(c); ok {
			ev = ev.Str("sub", p.Subject)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}
