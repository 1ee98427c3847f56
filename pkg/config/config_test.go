package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 10, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 100, cfg.Pagination.MaxPerPage)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:8080/api", cfg.Client.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout())
}

func TestLoad_Env(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("PAGINATION_MAX_PER_PAGE", "50")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("VENDEDORES_API_URL", "http://10.0.2.2:8000/api/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.SQLitePath)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 50, cfg.Pagination.MaxPerPage)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://10.0.2.2:8000/api", cfg.Client.APIURL)
}

func TestLoad_Invalid(t *testing.T) {
	testChdir(t, t.TempDir())

	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("PAGINATION_DEFAULT_PER_PAGE", "20")
	t.Setenv("PAGINATION_MAX_PER_PAGE", "5")
	_, err = Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:word", DBName: "vendedores", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aword@db:5432/vendedores?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
