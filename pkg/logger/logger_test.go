package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

func TestNew_ArchivoRotadoConComponente(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "api.log")
	log := logger.New(logger.Config{Env: "production", Level: "info", File: file, MaxSizeMB: 1})

	log.Named("websocket").Info().Str("session", "s-1").Msg("sesión STOMP conectada")
	log.Debug().Msg("no se escribe en nivel info")

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"component":"websocket"`)
	assert.Contains(t, out, `"session":"s-1"`)
	assert.NotContains(t, out, "no se escribe")
}
