package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "web/seed/seed.json", cfg.SeedPath)
	assert.False(t, cfg.ForceDemoMode)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FIREBASE_PROJECT_ID", "qa-board-test")
	t.Setenv("SEED_PATH", "/srv/seed.json")
	t.Setenv("FORCE_DEMO_MODE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "qa-board-test", cfg.FirebaseProjectID)
	assert.Equal(t, "/srv/seed.json", cfg.SeedPath)
	assert.True(t, cfg.ForceDemoMode)
}

func TestRemoteConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.RemoteConfigured())

	cfg.FirebaseProjectID = "qa-board"
	assert.True(t, cfg.RemoteConfigured())
}

func TestAdminList(t *testing.T) {
	cfg := &Config{AdminEmails: " Admin@Example.com , second@example.org ,, "}
	assert.Equal(t, []string{"admin@example.com", "second@example.org"}, cfg.AdminList())

	assert.Nil(t, (&Config{}).AdminList())
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminEmails: "admin@example.com"}

	assert.True(t, cfg.IsAdmin("admin@example.com"))
	assert.True(t, cfg.IsAdmin("ADMIN@Example.COM"))
	assert.False(t, cfg.IsAdmin("other@example.com"))
	assert.False(t, cfg.IsAdmin(""))
}
