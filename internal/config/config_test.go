package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// given
	t.Chdir(t.TempDir())

	// when
	app, err := Load("missing.yaml")

	// then
	require.NoError(t, err)
	assert.Equal(t, Defaults(), app)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	// given
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "application.yaml")
	yaml := "listen: \":9000\"\nstorage:\n  backend: postgres\ndb:\n  host: db.internal\n  port: 6543\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("OTPAY_DB_HOST", "override.internal")
	t.Setenv("OTPAY_STORAGE_SQLITE_PATH", "/tmp/otpay.db")

	// when
	app, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, ":9000", app.Listen)
	assert.Equal(t, BackendPostgres, app.Storage.Backend)
	assert.Equal(t, "override.internal", app.Database.Host)
	assert.Equal(t, 6543, app.Database.Port)
	assert.Equal(t, "/tmp/otpay.db", app.Storage.SQLite.Path)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// given
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OTPAY_LISTEN=:7070\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("OTPAY_LISTEN") })

	// when
	app, err := Load("missing.yaml")

	// then
	require.NoError(t, err)
	assert.Equal(t, ":7070", app.Listen)
}

func TestValidate_RejectsUnknownBackend(t *testing.T) {
	// given
	app := Defaults()
	app.Storage.Backend = "mongo"

	// when
	err := app.Validate()

	// then
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
