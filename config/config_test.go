package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVICE_NAME", "SERVICE_PORT", "USER_API_URL", "USER_API_TIMEOUT",
		"UI_TITLE", "UI_EMPTY_MESSAGE", "SESSION_TTL", "SESSION_MAX",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "userform", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, time.Duration(0), cfg.UserAPI.Timeout)
	assert.Equal(t, "User Management", cfg.UI.Title)
	assert.Equal(t, `No users available. Click "Fetch Users" to load data.`, cfg.UI.EmptyMessage)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 10000, cfg.Session.Max)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("USER_API_URL", "http://api.local/users")
	t.Setenv("USER_API_TIMEOUT", "3s")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("SESSION_MAX", "5")

	cfg := Load()

	assert.Equal(t, "http://api.local/users", cfg.UserAPI.URL)
	assert.Equal(t, 3*time.Second, cfg.UserAPI.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL, "bad duration falls back to default")
	assert.Equal(t, 5, cfg.Session.Max)
}

func TestConfig_EndpointURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"empty", "", true},
		{"relative", "/users", true},
		{"bad scheme", "ftp://host/users", true},
		{"no host", "http:///users", true},
		{"valid", "https://api.example.com/users?x=1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := Config{UserAPI: UserAPI{URL: tt.url}}
			got, err := c.EndpointURL()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, got, "endpoint must be used unmodified")
		})
	}
}
