package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrStorage      = errors.New("error de almacenamiento de archivos")
	ErrInUse        = errors.New("recurso referenciado por otros registros")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Error asocia un error sentinela con una clave de mensaje localizable.
// La capa HTTP traduce Key con el idioma de la petición.
type Error struct {
	Kind error
	Key  string
	Args []any
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Key
}

func (e *Error) Unwrap() error { return e.Kind }

// NotFound construye un error ErrNotFound con clave de mensaje.
func NotFound(key string, args ...any) error {
	return &Error{Kind: ErrNotFound, Key: key, Args: args}
}

// Duplicate construye un error ErrDuplicate con clave de mensaje.
func Duplicate(key string, args ...any) error {
	return &Error{Kind: ErrDuplicate, Key: key, Args: args}
}

// Invalid construye un error ErrInvalidInput con clave de mensaje.
func Invalid(key string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Key: key, Args: args}
}

// InUse construye un error ErrInUse con clave de mensaje.
func InUse(key string, args ...any) error {
	return &Error{Kind: ErrInUse, Key: key, Args: args}
}

// Storage construye un error ErrStorage con clave de mensaje.
func Storage(key string, args ...any) error {
	return &Error{Kind: ErrStorage, Key: key, Args: args}
}

// MessageKey devuelve la clave y argumentos de err si es un *Error.
func MessageKey(err error) (string, []any, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Key, de.Args, true
	}
	return "", nil, false
}
