package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showtracker/pkg/config"
)

func TestOpenRepositories_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory, Seed: true}}

	repos, closeDB, err := openRepositories(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeDB()

	count, err := repos.Show.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestOpenRepositories_SQLiteWithoutSeed(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "shows.db"),
	}}

	repos, closeDB, err := openRepositories(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeDB()

	count, err := repos.Show.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOpenRepositories_SQLiteRestartKeepsDeletions(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:     config.DriverSQLite,
		Seed:       true,
		SQLitePath: filepath.Join(t.TempDir(), "shows.db"),
	}}

	repos, closeDB, err := openRepositories(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	shows, err := repos.Show.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 6)
	for _, show := range shows {
		require.NoError(t, repos.Show.Delete(ctx, show.ID))
	}
	closeDB()

	// 資料表已存在時，即使被清空也不再寫入初始資料
	repos, closeDB, err = openRepositories(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeDB()

	count, err := repos.Show.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMigrateCommand_SQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "shows.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store:\n  driver: sqlite\n  sqlite_path: "+dbPath+"\nlog:\n  level: error\n"), 0o600))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, dbPath)
}

func TestMigrateCommand_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store:\n  driver: mongo\n"), 0o600))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--config", cfgPath})
	cmd.SetErr(new(nopWriter))
	assert.Error(t, cmd.Execute())
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
