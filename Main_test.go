package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "ACCESS_TOKEN_SECRET", "REDIS_ADDR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestStartExitCode(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: memory\n")
		assert.Equal(t, 1, start(path))
	})

	t.Run("server error returns instead of exiting", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: "-1"
storage:
  driver: memory
token:
  secret: test-secret
log:
  level: error
`)
		assert.Equal(t, 1, start(path))
	})
}
