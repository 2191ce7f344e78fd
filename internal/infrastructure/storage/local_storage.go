package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

var _ ports.ImageStorage = (*LocalStorage)(nil)

// LocalStorage guarda las imágenes bajo basePath; el router las sirve en baseURL.
type LocalStorage struct {
	basePath string
	baseURL  string
	log      *logger.Logger
}

// NewLocalStorage crea el directorio base si no existe.
func NewLocalStorage(basePath, baseURL string, log *logger.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	return &LocalStorage{basePath: basePath, baseURL: strings.TrimSuffix(baseURL, "/"), log: log}, nil
}

// BasePath directorio raíz de las imágenes.
func (l *LocalStorage) BasePath() string { return l.basePath }

func (l *LocalStorage) Save(_ context.Context, filename, _ string, _ int64, content io.Reader) (string, error) {
	key, err := objectKey(filename)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio: %w", err)
	}
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("cerrar archivo: %w", err)
	}
	l.log.Debug().Str("key", key).Msg("imagen guardada en disco")
	return key, nil
}

// Delete borra el archivo; si ya no existe no es error.
func (l *LocalStorage) Delete(_ context.Context, ref string) error {
	key, err := cleanKey(ref)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(l.basePath, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("borrar archivo: %w", err)
	}
	l.log.Debug().Str("key", key).Msg("imagen borrada de disco")
	return nil
}

func (l *LocalStorage) URL(ref string) string {
	return l.baseURL + "/" + strings.TrimPrefix(ref, "/")
}
