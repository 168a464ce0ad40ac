// ABOUTME: Tests for server lifecycle: agent main supervision and shutdown hooks.
// ABOUTME: Uses real loopback listeners, as the gRPC server binds during Run.

package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidemill/agent-bridge/internal/agent"
	"github.com/tidemill/agent-bridge/internal/config"
)

// crashingAgent fails its main loop immediately.
type crashingAgent struct {
	mu     sync.Mutex
	closed bool
}

func (a *crashingAgent) Main(_ context.Context) error {
	return errors.New("event loop exploded")
}

func (a *crashingAgent) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

func (a *crashingAgent) isClosed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

// idleAgent runs until canceled and records its shutdown hooks.
type idleAgent struct {
	mu      sync.Mutex
	started bool
	closed  bool
}

func (a *idleAgent) Start(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.started = true
	return nil
}

func (a *idleAgent) Main(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (a *idleAgent) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

func (a *idleAgent) hooks() (started, closed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started, a.closed
}

var (
	lastCrashing *crashingAgent
	lastIdle     *idleAgent
)

func init() {
	agent.Register("server-test-crashing", func() any {
		lastCrashing = &crashingAgent{}
		return lastCrashing
	})
	agent.Register("server-test-idle", func() any {
		lastIdle = &idleAgent{}
		return lastIdle
	})
}

// testConfig builds a minimal config bound to an available loopback port.
func testConfig(t *testing.T, agentName string) *config.Config {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	return &config.Config{
		Server: config.ServerConfig{
			GRPCAddr:        addr,
			ShutdownTimeout: time.Second,
		},
		Agent: config.AgentConfig{Name: agentName},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunReturnsMainErrorAndClosesAgent(t *testing.T) {
	srv, err := New(testConfig(t, "server-test-crashing"), testLogger())
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(context.Background()) }()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "agent main")
		assert.Contains(t, err.Error(), "event loop exploded")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the main loop failed")
	}

	assert.True(t, lastCrashing.isClosed(), "Close hook must run even on a main failure")
}

func TestRunShutsDownCleanlyOnCancel(t *testing.T) {
	srv, err := New(testConfig(t, "server-test-idle"), testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	// Give the listener time to come up before canceling.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	started, closed := lastIdle.hooks()
	assert.True(t, started, "Start hook runs before serving")
	assert.True(t, closed, "Close hook runs on shutdown")
}

func TestNewUnknownAgent(t *testing.T) {
	_, err := New(testConfig(t, "server-test-missing"), testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating agent")
}
