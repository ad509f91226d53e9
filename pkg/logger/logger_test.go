package logger_test

import (
	"context"
	"prospector/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
	}{
		{name: "development default level", environment: logger.DevelopmentEnvironment},
		{name: "production default level", environment: logger.ProductionEnvironment},
		{name: "explicit debug level", environment: logger.ProductionEnvironment, level: "debug"},
		{name: "unparseable level keeps default", environment: logger.DevelopmentEnvironment, level: "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment, tt.level)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestLevelOverride(t *testing.T) {
	logger.Setup(logger.ProductionEnvironment, "debug")
	require.Equal(t, zap.DebugLevel, logger.Get(context.Background()).Level())

	logger.Setup(logger.ProductionEnvironment, "warn")
	require.Equal(t, zap.WarnLevel, logger.Get(context.Background()).Level())
}

func TestGetPrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")

	custom, _ := zap.NewDevelopment()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx))

	// empty context falls back to the default logger
	require.NotNil(t, logger.Get(context.Background()))
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	ctx := logger.WithFields(context.Background(), zap.String("webset", "ws_1"))
	require.NotNil(t, logger.Get(ctx))
}

func TestLoggingFunctions(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}
