package mcp

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moolen/crewline/internal/agent/tools"
)

func TestNewServer(t *testing.T) {
	registry := tools.NewRegistry(tools.Dependencies{})

	srv, err := NewServer(registry, "test")
	require.NoError(t, err)
	assert.NotNil(t, srv.GetMCPServer())
}

func TestNewServer_NilRegistry(t *testing.T) {
	_, err := NewServer(nil, "test")
	require.Error(t, err)
}

func TestMetricsServer_StartStop(t *testing.T) {
	m := NewMetricsServer("127.0.0.1:0")
	assert.Equal(t, "mcp.metrics", m.Name())

	ctx := context.Background()
	require.NoError(t, m.Start(ctx))

	// Start is idempotent
	require.NoError(t, m.Start(ctx))

	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, m.Stop(stopCtx))

	// Stop after stop is a no-op
	require.NoError(t, m.Stop(stopCtx))
}

func TestMetricsServer_ServesMetrics(t *testing.T) {
	m := NewMetricsServer("127.0.0.1:19521")
	ctx := context.Background()
	require.NoError(t, m.Start(ctx))
	defer func() {
		stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		_ = m.Stop(stopCtx)
	}()

	// Give the listener a moment to come up
	var resp *http.Response
	var err error
	for i := 0; i < 20; i++ {
		resp, err = http.Get("http://127.0.0.1:19521/metrics")
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
