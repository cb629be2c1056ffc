package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminEmails: []string{"Admin@Example.com", "ops@example.com"}}

	assert.True(t, cfg.IsAdmin("admin@example.com"))
	assert.True(t, cfg.IsAdmin("ADMIN@EXAMPLE.COM"))
	assert.True(t, cfg.IsAdmin("ops@example.com"))
	assert.False(t, cfg.IsAdmin("user@example.com"))
	assert.False(t, (&Config{}).IsAdmin("admin@example.com"))
}

func TestLoadAdminEmails(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "a@example.com, b@example.com ,")

	cfg := Load()
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.AdminEmails)
}
