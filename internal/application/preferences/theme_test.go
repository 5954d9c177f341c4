package preferences_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-cliente/internal/application/preferences"
	"github.com/jhoicas/banco-cliente/internal/infrastructure/storage"
)

func TestTheme_PorDefectoLight(t *testing.T) {
	s := preferences.NewStore(storage.NewMemory(), nil)
	assert.Equal(t, preferences.Light, s.Theme())
}

func TestTheme_ValorDesconocidoEsLight(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(preferences.ThemeKey, "sepia"))
	assert.Equal(t, preferences.Light, preferences.NewStore(kv, nil).Theme())
}

func TestToggle_Persiste(t *testing.T) {
	kv := storage.NewMemory()
	s := preferences.NewStore(kv, nil)

	next, err := s.Toggle()
	require.NoError(t, err)
	assert.Equal(t, preferences.Dark, next)

	v, _, _ := kv.Get(preferences.ThemeKey)
	assert.Equal(t, "dark", v)
	assert.Equal(t, preferences.Dark, preferences.NewStore(kv, nil).Theme())

	next, _ = s.Toggle()
	assert.Equal(t, preferences.Light, next)
}
