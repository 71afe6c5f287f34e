package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateEvaluationID creates a short, human-readable id that ties together
// the log lines of one estimate.
// Format: {kind}-{subjectID}-{8charHexUUID}
//
// Example:
//   - Input: kind="mining", subjectID="dep-42"
//   - Output: "mining-dep-42-a3f8e2b1"
func GenerateEvaluationID(kind, subjectID string) string {
	subject := compactSubject(subjectID)
	if subject == "" {
		return kind + "-" + generateShortUUID()
	}
	return kind + "-" + subject + "-" + generateShortUUID()
}

// compactSubject keeps backend ids readable in logs.
// UUID-shaped ids are cut to their first group; anything else is kept as-is.
//   - "3f0c1a52-9d7e-4e1b-8a44-1c2d3e4f5a6b" -> "3f0c1a52"
//   - "dep-42" -> "dep-42"
func compactSubject(subjectID string) string {
	if _, err := uuid.Parse(subjectID); err == nil {
		return strings.SplitN(subjectID, "-", 2)[0]
	}
	return strings.TrimSpace(subjectID)
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
