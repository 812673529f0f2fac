package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAddr(t *testing.T) {
	tests := []struct {
		name string
		web  WebConfig
		want string
	}{
		{
			name: "defaults",
			web:  WebConfig{Host: "0.0.0.0", Port: 1816},
			want: "0.0.0.0:1816",
		},
		{
			name: "localhost",
			web:  WebConfig{Host: "127.0.0.1", Port: 8080},
			want: "127.0.0.1:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AppConfig{Web: tt.web}
			assert.Equal(t, tt.want, cfg.ListenAddr())
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Equal(t, DefaultAppConfig.Web.Port, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storeapi.yml")
	data := []byte("web:\n  host: 127.0.0.1\n  port: 9000\ndatabase:\n  type: sqlite\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg := LoadConfig(path)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 9000, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("STOREAPI_WEB_PORT", "9100")
	t.Setenv("STOREAPI_DB_TYPE", "sqlite")
	t.Setenv("STOREAPI_LOGGER_FILE_ENABLE", "false")

	cfg := LoadConfig("")
	assert.Equal(t, 9100, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.False(t, cfg.Logger.FileEnable)
}
