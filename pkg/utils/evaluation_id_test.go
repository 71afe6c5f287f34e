package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEvaluationID(t *testing.T) {
	tests := []struct {
		name      string
		kind      string
		subjectID string
		pattern   string
	}{
		{"plain id", "mining", "dep-42", `^mining-dep-42-[0-9a-f]{8}$`},
		{"uuid id is compacted", "production", "3f0c1a52-9d7e-4e1b-8a44-1c2d3e4f5a6b", `^production-3f0c1a52-[0-9a-f]{8}$`},
		{"empty subject", "watch", "", `^watch-[0-9a-f]{8}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := GenerateEvaluationID(tt.kind, tt.subjectID)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), id)
		})
	}
}

func TestGenerateEvaluationID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateEvaluationID("energy", "emp-1")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
