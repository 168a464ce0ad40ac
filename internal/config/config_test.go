// ABOUTME: Tests for configuration loading, env expansion, and validation.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  grpc_addr: "127.0.0.1:18790"
  shutdown_timeout: "10s"
agent:
  name: "word-counter"
  configuration:
    window: 5
    topic: "events"
  environment:
    - key: "API_TOKEN"
      value: "secret"
  state_dir: "/var/lib/bridge"
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:18790", cfg.Server.GRPCAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "word-counter", cfg.Agent.Name)
	assert.Equal(t, 5, cfg.Agent.Configuration["window"])
	assert.Equal(t, "events", cfg.Agent.Configuration["topic"])
	require.Len(t, cfg.Agent.Environment, 1)
	assert.Equal(t, "API_TOKEN", cfg.Agent.Environment[0].Key)
	assert.Equal(t, "secret", cfg.Agent.Environment[0].Value)
	assert.Equal(t, "/var/lib/bridge", cfg.Agent.StateDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_BRIDGE_ADDR", "0.0.0.0:9001")
	t.Setenv("TEST_BRIDGE_TOKEN", "tok-123")

	path := writeConfig(t, `
server:
  grpc_addr: "${TEST_BRIDGE_ADDR}"
agent:
  name: "echo"
  environment:
    - key: "TOKEN"
      value: "${TEST_BRIDGE_TOKEN}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9001", cfg.Server.GRPCAddr)
	assert.Equal(t, "tok-123", cfg.Agent.Environment[0].Value)
}

func TestLoadUnsetEnvVarExpandsEmpty(t *testing.T) {
	path := writeConfig(t, `
server:
  grpc_addr: "localhost:9000${TEST_BRIDGE_DEFINITELY_UNSET}"
agent:
  name: "echo"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.GRPCAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadInvalidDuration(t *testing.T) {
	path := writeConfig(t, `
server:
  grpc_addr: "localhost:9000"
  shutdown_timeout: "not-a-duration"
agent:
  name: "echo"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing shutdown_timeout")
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "missing grpc_addr",
			yaml: `
agent:
  name: "echo"
`,
			wantErr: "server.grpc_addr is required",
		},
		{
			name: "missing agent name",
			yaml: `
server:
  grpc_addr: "localhost:9000"
`,
			wantErr: "agent.name is required",
		},
		{
			name: "environment entry without key",
			yaml: `
server:
  grpc_addr: "localhost:9000"
agent:
  name: "echo"
  environment:
    - value: "orphan"
`,
			wantErr: "agent.environment[0].key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
