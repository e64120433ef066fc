package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "farmacia-api", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "farmacia", cfg.DB.DBName)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Ledger.CumulativeSalesReturnBound,
		"el tope acumulado de devoluciones de venta viene apagado")
	assert.False(t, cfg.Ledger.StrictSalesReturnInventory)
}

func TestLoad_EnvSobrescribeDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_CUMULATIVE_SALES_RETURN_BOUND", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Ledger.CumulativeSalesReturnBound)
}

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host:     "db.example.com",
		Port:     5432,
		User:     "farmacia",
		Password: "p@ss/w:rd",
		DBName:   "farmacia",
		SSLMode:  "require",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fw%3Ard",
		"la contraseña debe ir URL-encoded en el DSN")
	assert.Contains(t, dsn, "db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@remoto:5432/prod?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, "postgresql://u:p@remoto:5432/prod?sslmode=require", db.ConnectionString())

	db.DatabaseURL = ""
	assert.NotContains(t, db.ConnectionString(), "remoto",
		"sin DATABASE_URL se construye el DSN por partes")
}
