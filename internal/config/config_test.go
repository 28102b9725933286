package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifeguard/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	require.Equal(t, 5*time.Second, cfg.Checks.Timeout)
	require.Equal(t, "https://api.pwnedpasswords.com", cfg.Checks.BreachBaseURL)
	require.Empty(t, cfg.SafeBrowsing.APIKey)
	require.Equal(t, "activity", cfg.Activity.Queue)
	require.Empty(t, cfg.Activity.Kafka.Brokers)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
checks:
  timeout: 2s
ipqs:
  apiKey: from-file
activity:
  kafka:
    brokers: ["k1:9092", "k2:9092"]
`), 0o600))

	t.Setenv("IPQS_API_KEY", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 2*time.Second, cfg.Checks.Timeout)
	require.Equal(t, "from-env", cfg.IPQS.APIKey)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Activity.Kafka.Brokers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
