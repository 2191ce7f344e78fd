package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

func TestLocalStorage_SaveDeleteURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "/images/", logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := s.Save(ctx, "Foto.PNG", "image/png", 3, strings.NewReader("abc"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "categories/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))
	assert.Equal(t, "/images/"+ref, s.URL(ref))

	require.NoError(t, s.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, ref), "borrar dos veces no falla")
}

func TestLocalStorage_RechazaExtensionYRutas(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/images", logger.Nop())
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "script.sh", "text/plain", 1, strings.NewReader("x"))
	assert.ErrorIs(t, err, ports.ErrUnsupportedImage)

	assert.Error(t, s.Delete(context.Background(), "../../etc/passwd"))
}

func TestCleanKey(t *testing.T) {
	k, err := cleanKey("/categories/a.png")
	require.NoError(t, err)
	assert.Equal(t, "categories/a.png", k)

	k, err = cleanKey(`categories\b.png`)
	require.NoError(t, err)
	assert.Equal(t, "categories/b.png", k)

	_, err = cleanKey("")
	assert.Error(t, err)
}
