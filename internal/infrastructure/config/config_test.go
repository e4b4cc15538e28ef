package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "graphql-crm", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "crm", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "http://localhost:8000/graphql", cfg.GraphQL.Endpoint)
	assert.Equal(t, "/tmp/crm_heartbeat_log.txt", cfg.Jobs.HeartbeatLogPath)
	assert.Equal(t, "/tmp/low_stock_updates_log.txt", cfg.Jobs.LowStockLogPath)
	assert.Equal(t, "/tmp/crm_report_log.txt", cfg.Jobs.ReportLogPath)
	assert.Equal(t, "/tmp/order_reminders_log.txt", cfg.Jobs.RemindersLogPath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CRM_DATABASE_HOST", "db.internal")
	t.Setenv("CRM_APP_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "http://localhost:9000/graphql", cfg.GraphQL.Endpoint)
}

func TestValidateRejectsBadPoolSettings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns + 1

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_idle_conns")
}

func TestDSNEscapesCredentials(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user@name",
		Password: "p@ss:word",
		DBName:   "crm",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "user%40name")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:word")
}
