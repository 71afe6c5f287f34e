package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/lazysim/internal/adapters/logging"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
)

func TestLogger_JSONIncludesMetadata(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)

	// Act
	logger.Log("INFO", "Mining estimate computed", map[string]interface{}{
		"deposit_id":      "dep-1",
		"estimated_yield": 3,
	})

	// Assert
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Mining estimate computed", line["msg"])
	assert.Equal(t, "dep-1", line["deposit_id"])
	assert.EqualValues(t, 3, line["estimated_yield"])
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "warn", Format: "text"})
	require.NoError(t, err)

	logger.Log("DEBUG", "hidden", nil)
	logger.Log("INFO", "hidden too", nil)
	logger.Log("WARN", "Deposit crew exceeds capacity", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Deposit crew exceeds capacity")

	buf.Reset()
	logger.SetLevel("DEBUG")
	logger.Log("DEBUG", "now visible", nil)
	assert.Contains(t, buf.String(), "now visible")
}

func TestLogger_InvalidLevel(t *testing.T) {
	_, err := logging.NewWithWriter(&bytes.Buffer{}, config.LoggingConfig{Level: "chatty"})

	assert.ErrorContains(t, err, "invalid log level")
}

func TestLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazysim.log")
	logger, err := logging.New(config.LoggingConfig{Level: "info", Format: "logfmt", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Log("INFO", "written", map[string]interface{}{"k": "v"})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written"))
	assert.True(t, strings.Contains(string(data), "k=v"))
}
