package common_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/lazysim/internal/application/common"
)

type entry struct {
	level    string
	message  string
	metadata map[string]interface{}
}

type recordingLogger struct{ entries []entry }

func (r *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	r.entries = append(r.entries, entry{level, message, metadata})
}

func TestLoggerFromContext_DefaultsToNoOp(t *testing.T) {
	logger := common.LoggerFromContext(context.Background())

	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Log("INFO", "ignored", nil) })
}

func TestWithFields_MergesMetadata(t *testing.T) {
	// Arrange
	rec := &recordingLogger{}
	ctx := common.WithLogger(context.Background(), common.WithFields(rec, map[string]interface{}{
		"evaluation_id": "mining-dep-1-abcd1234",
		"deposit_id":    "dep-1",
	}))

	// Act
	common.LoggerFromContext(ctx).Log("INFO", "estimate computed", map[string]interface{}{
		"deposit_id": "dep-override",
		"yield":      3,
	})

	// Assert
	require.Len(t, rec.entries, 1)
	got := rec.entries[0]
	assert.Equal(t, "INFO", got.level)
	assert.Equal(t, "mining-dep-1-abcd1234", got.metadata["evaluation_id"])
	assert.Equal(t, "dep-override", got.metadata["deposit_id"])
	assert.Equal(t, 3, got.metadata["yield"])
}
