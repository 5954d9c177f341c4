package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.Equal(t, 5*time.Second, cfg.UI.AutoHide())
	assert.Equal(t, "BasesDeDatos2", cfg.UI.RegistrationSecret)
	assert.Equal(t, 2, cfg.Sandbox.MaxActiveLoans)
	assert.Equal(t, "0.0.0.0:3000", cfg.Sandbox.Addr())
	assert.Empty(t, cfg.Sandbox.DatabaseURL, "sin URL el sandbox usa memoria")
}

func TestFromViper_SobrescribeDesdeVariables(t *testing.T) {
	v := viper.New()
	v.Set("API_BASE_URL", "https://banco.example.com/")
	v.Set("API_TIMEOUT_MS", "2500")
	v.Set("SANDBOX_MAX_ACTIVE_LOANS", 3)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://banco.example.com", cfg.API.BaseURL, "la barra final se recorta")
	assert.Equal(t, 2500*time.Millisecond, cfg.API.Timeout())
	assert.Equal(t, 3, cfg.Sandbox.MaxActiveLoans)
}

func TestFromViper_TimeoutInvalido(t *testing.T) {
	v := viper.New()
	v.Set("API_TIMEOUT_MS", "0")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_AutoHideNegativo(t *testing.T) {
	v := viper.New()
	v.Set("NOTIFY_AUTOHIDE_MS", "-1")

	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("NOTIFY_AUTOHIDE_MS", "0")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Zero(t, cfg.UI.AutoHide())
}
