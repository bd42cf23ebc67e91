package logging

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a random request identifier used to correlate
// the log lines of one build or dispatch.
func GenerateRequestID() string {
	return uuid.NewString()
}
