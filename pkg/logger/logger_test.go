package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}

func TestPrintf_EscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")

	l.Printf("OK   %s\n", "00001_create_vendedor.sql")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "OK   00001_create_vendedor.sql", entry["message"])
}

func TestNivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "error")

	l.Info().Msg("oculto")
	assert.Zero(t, buf.Len())

	l.Error().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
