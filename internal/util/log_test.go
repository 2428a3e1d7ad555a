package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	logger, err := InitLogger("debug")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	require.Same(t, logger, zap.L())

	_, err = InitLogger("loud")
	require.Error(t, err)
}
