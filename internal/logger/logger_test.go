package logger_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/mailprobe/internal/logger"
)

func TestNew_LevelParsing(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.New("debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, logger.New("warn").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, logger.New("nonsense").GetLevel(), "bad level falls back to info")
}

func TestNewRunID(t *testing.T) {
	a := logger.NewRunID()
	b := logger.NewRunID()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
