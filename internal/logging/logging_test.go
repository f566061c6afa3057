package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]int{"": INFO, "info": INFO, "DEBUG": DEBUG, " trace ": TRACE} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewLoggerVerbosity(t *testing.T) {
	logger, err := NewLogger(Options{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, logger.V(DEBUG).Enabled())
	assert.False(t, logger.V(TRACE).Enabled())

	logger, err = NewLogger(Options{})
	require.NoError(t, err)
	assert.True(t, logger.Enabled())
	assert.False(t, logger.V(DEBUG).Enabled())
}

func TestNewLoggerRejectsBadOptions(t *testing.T) {
	_, err := NewLogger(Options{Level: "loud"})
	assert.Error(t, err)
	_, err = NewLogger(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNewTestLogger(t *testing.T) {
	assert.True(t, NewTestLogger().V(TRACE).Enabled())
}
