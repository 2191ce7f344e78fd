package ports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedImage el archivo no tiene una extensión de imagen aceptada.
var ErrUnsupportedImage = errors.New("extensión de imagen no permitida")

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".svg": true,
}

// ImageExt devuelve la extensión en minúsculas de filename, o ErrUnsupportedImage.
func ImageExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExts[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}
	return ext, nil
}

// ImageStorage puerto para guardar y borrar imágenes de categorías.
// Las implementaciones viven en infrastructure/storage (disco local o S3/MinIO).
type ImageStorage interface {
	// Save guarda el contenido y devuelve la referencia (clave) a persistir en la categoría.
	Save(ctx context.Context, filename, contentType string, size int64, content io.Reader) (string, error)
	// Delete borra el archivo referenciado. Borrar una referencia inexistente no es error.
	Delete(ctx context.Context, ref string) error
	// URL devuelve la URL pública de la referencia.
	URL(ref string) string
}
