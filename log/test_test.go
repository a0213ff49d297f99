package log

import (
	"testing"

	"github.com/oisee/i8086dis/assert"
)

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	assert.Equal(t, DebugLevel, logger.level.Level())
}
