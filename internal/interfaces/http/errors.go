package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/ticket-logger-api/internal/application/auth"
	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/pkg/i18n"
)

// Locals keys usadas por los middlewares.
const (
	LocalPrincipal   = "principal"
	localBundle      = "i18n.bundle"
	localLang        = "i18n.lang"
	localError       = "error"
	localUpgradeAuth = "ws.authorization"
)

// Códigos de ErrorResponse.
const (
	CodeValidation   = "VALIDATION"
	CodeDuplicate    = "DUPLICATE"
	CodeNotFound     = "NOT_FOUND"
	CodeInUse        = "IN_USE"
	CodeStorage      = "STORAGE"
	CodeInternal     = "INTERNAL"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeMissingRole  = "MISSING_ROLE"
	CodeForbidden    = "FORBIDDEN"
)

// Localize resuelve el idioma de la petición desde Accept-Language.
func Localize(bundle *i18n.Bundle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localBundle, bundle)
		c.Locals(localLang, bundle.Match(c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

func translate(c *fiber.Ctx, key string, args ...any) string {
	bundle, ok := c.Locals(localBundle).(*i18n.Bundle)
	if !ok {
		return key
	}
	tag, ok := c.Locals(localLang).(language.Tag)
	if !ok {
		tag = bundle.Default()
	}
	return bundle.Translate(tag, key, args...)
}

// classify traduce un error de aplicación a status HTTP, código y clave de mensaje por defecto.
func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, CodeDuplicate, domain.MsgInvalidBody
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, CodeValidation, domain.MsgInvalidBody
	case errors.Is(err, domain.ErrInUse):
		return fiber.StatusBadRequest, CodeInUse, domain.MsgInUse
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound, domain.MsgNotFound
	case errors.Is(err, domain.ErrStorage):
		return fiber.StatusInternalServerError, CodeStorage, domain.MsgInternal
	case errors.Is(err, auth.ErrMissingToken):
		return fiber.StatusUnauthorized, CodeMissingToken, domain.MsgMissingToken
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, CodeInvalidToken, domain.MsgInvalidToken
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, CodeForbidden, domain.MsgForbidden
	default:
		return fiber.StatusInternalServerError, CodeInternal, domain.MsgInternal
	}
}

// writeError responde con ErrorResponse localizado. Los 5xx dejan el error en Locals para RequestLogger.
func writeError(c *fiber.Ctx, err error) error {
	status, code, key := classify(err)
	var args []any
	if k, a, ok := domain.MessageKey(err); ok && code != CodeInternal {
		key, args = k, a
	}
	if status >= fiber.StatusInternalServerError {
		c.Locals(localError, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: translate(c, key, args...)})
}

func writeCode(c *fiber.Ctx, status int, code, key string, args ...any) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: translate(c, key, args...)})
}

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(domain.MsgInvalidID)
	}
	return id, nil
}

func pageQuery(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p
}

func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.Invalid(domain.MsgInvalidBody)
	}
	return nil
}
