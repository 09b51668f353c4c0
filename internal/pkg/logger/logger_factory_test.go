//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings func(t *testing.T) *config.LoggerSettings
		wantErr  bool
	}{
		{
			name:     "console logger",
			settings: func(t *testing.T) *config.LoggerSettings { return config.DefaultLoggerSettings() },
		},
		{
			name: "file logger with rotation",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel:   config.LogLevelInfo,
					LogType:    config.LogTypeFile,
					FilePath:   filepath.Join(t.TempDir(), "workbench.log"),
					MaxSize:    10,
					MaxBackups: 3,
					MaxAge:     28,
				}
			},
		},
		{
			name:     "nil settings",
			settings: func(t *testing.T) *config.LoggerSettings { return nil },
			wantErr:  true,
		},
		{
			name: "invalid log level",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: "invalid", LogType: config.LogTypeConsole}
			},
			wantErr: true,
		},
		{
			name: "file logger missing rotation settings",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel: config.LogLevelInfo,
					LogType:  config.LogTypeFile,
					FilePath: filepath.Join(t.TempDir(), "workbench.log"),
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)
			settings := tt.settings(t)

			err := InitLogger(settings)

			if tt.wantErr {
				assert.Error(t, err)
				logger, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, logger)
				return
			}

			require.NoError(t, err)
			logger, err := GetLogger()
			require.NoError(t, err)
			require.NotNil(t, logger)

			if settings.LogType == config.LogTypeFile {
				logger.Info("rotation check")
				_, err := os.Stat(settings.FilePath)
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logger, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_FirstSettingsWin(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(config.DefaultLoggerSettings()))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestWriterLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelWarning, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestWriterLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	assert.PanicsWithValue(t, "boom", func() { logger.Panic("boom") })
	assert.Contains(t, buf.String(), "boom")
}

func TestFileLogger_WritesJSON(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "workbench.log")
	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28, false)

	logger.Info("encrypted ", 3, " messages")
	logger.Error("decrypt failed")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	output := string(content)
	assert.Contains(t, output, `"msg":"encrypted 3 messages"`)
	assert.Contains(t, output, `"level":"ERROR"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, levelCritical},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "test", formatArgs("test"))
	assert.Equal(t, "key saved to /tmp/k", formatArgs("key saved to ", "/tmp/k"))
}
