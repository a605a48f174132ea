package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  mode: test\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
store:
  driver: sqlite
  seed: false
  sqlite_path: /tmp/x.db
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, "/tmp/x.db", cfg.Store.SQLitePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SHOWS_SERVER_ADDRESS", "127.0.0.1:9999")
	t.Setenv("SHOWS_DB_PORT", "6543")
	t.Setenv("SHOWS_DB_HOST", "dbhost")
	t.Setenv("SHOWS_DB_PASSWORD", "s3cret")

	// 設定檔中沒有 db 區塊，密碼只能來自環境變數
	cfg, err := Load(writeConfig(t, "server:\n  address: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Address)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "dbhost", cfg.DB.Host)
	assert.Equal(t, "s3cret", cfg.DB.Password)
}

func TestLoad_UnknownDriver(t *testing.T) {
	_, err := Load(writeConfig(t, "store:\n  driver: mongo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}

func TestValidate_LogFormat(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Driver: DriverMemory}, Log: LogConfig{Format: "xml"}}
	assert.Error(t, cfg.Validate())

	cfg.Log.Format = "json"
	assert.NoError(t, cfg.Validate())
}
