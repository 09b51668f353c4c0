//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/crypto-workbench/internal/domain/workbench"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/config"
	"github.com/MGTheTrain/crypto-workbench/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// SetupTestService wires the workbench service to the real platform codecs for integration tests
func SetupTestService(t *testing.T, settings *config.WorkbenchSettings) workbench.Service {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	codecs, err := NewCodecs(settings, logger)
	require.NoError(t, err, "Failed to create codecs")

	service, err := NewWorkbenchService(codecs, settings, logger)
	require.NoError(t, err, "Failed to create WorkbenchService")

	return service
}
