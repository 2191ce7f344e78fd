// Package storage guarda las imágenes de categorías en disco local o en un bucket S3/MinIO.
package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
)

// objectKey genera una clave única "categories/<uuid><ext>" para filename.
// La clave conserva la extensión original.
func objectKey(filename string) (string, error) {
	ext, err := ports.ImageExt(filename)
	if err != nil {
		return "", err
	}
	return path.Join("categories", uuid.NewString()+ext), nil
}

// cleanKey normaliza una referencia guardada y rechaza rutas que escapen del prefijo.
func cleanKey(ref string) (string, error) {
	key := strings.TrimPrefix(path.Clean(strings.ReplaceAll(ref, "\\", "/")), "/")
	if key == "" || key == "." || strings.HasPrefix(key, "..") {
		return "", fmt.Errorf("referencia de imagen inválida: %q", ref)
	}
	return key, nil
}
