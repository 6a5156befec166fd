package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithMemoryBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8888", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "AdmissionDB", cfg.Mongo.Database)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, 30, cfg.Chat.RateLimit)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.SMTPEnabled())
}

func TestLoadYAMLThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := []byte(`
server:
  port: "9000"
store:
  backend: memory
budget:
  loan_initial: 250000
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, yamlBody, 0o600))

	t.Setenv("APP_PORT", "9100")
	t.Setenv("CHAT_RATE_LIMIT", "5")
	t.Setenv("REDIS_URI", "localhost:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Chat.RateLimit)
	assert.Equal(t, 250000.0, cfg.Budget.LoanInitial)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.RedisEnabled())
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mongo without uri", map[string]string{"STORE_BACKEND": "mongo", "MONGO_URI": ""}},
		{"unknown backend", map[string]string{"STORE_BACKEND": "chroma"}},
		{"auth without secret", map[string]string{"STORE_BACKEND": "memory", "AUTH_ENABLED": "true", "JWT_SECRET": ""}},
		{"bad integer", map[string]string{"STORE_BACKEND": "memory", "CHAT_RATE_LIMIT": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
			assert.Error(t, err)
		})
	}
}
