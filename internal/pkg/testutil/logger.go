// Package testutil holds helpers shared by the unit tests.
package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger initializes the singleton console logger and returns it.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	require.NoError(t, logger.InitLogger(config.DefaultLoggerSettings()))

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
