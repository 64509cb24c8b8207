package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yang-ventures/portfolio-backend/internal/logger"
)

func TestContextRoundTrip(t *testing.T) {
	log := logger.Nop()
	ctx := logger.WithContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	assert.Same(t, zap.S(), logger.FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("nonsense"))
}

func TestNew(t *testing.T) {
	dev := logger.New("dev", "debug")
	assert.True(t, dev.Desugar().Core().Enabled(zapcore.DebugLevel))

	prod := logger.New("production", "")
	assert.False(t, prod.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Desugar().Core().Enabled(zapcore.InfoLevel))
}
