package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	defaultEmptyMessage = `No users available. Click "Fetch Users" to load data.`
	defaultTitle        = "User Management"
)

type (
	APP struct {
		Name    string
		Host    string
		Port    string
		Env     string
		Version string
	}
	UserAPI struct {
		URL     string
		Timeout time.Duration
	}
	UI struct {
		Title        string
		EmptyMessage string
	}
	Session struct {
		TTL time.Duration
		Max int
	}

	Config struct {
		App     APP
		UserAPI UserAPI
		UI      UI
		Session Session
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := getEnv(key, ""); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := getEnv(key, ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() Config {
	app := APP{
		Name:    getEnv("SERVICE_NAME", "userform"),
		Host:    getEnv("SERVICE_HOST", ""),
		Port:    getEnv("SERVICE_PORT", "8080"),
		Env:     getEnv("SERVICE_ENV", ""),
		Version: getEnv("SERVICE_VERSION", "dev"),
	}
	// zero timeout leaves the transport defaults in charge
	userAPI := UserAPI{
		URL:     getEnv("USER_API_URL", ""),
		Timeout: getEnvDuration("USER_API_TIMEOUT", 0),
	}
	ui := UI{
		Title:        getEnv("UI_TITLE", defaultTitle),
		EmptyMessage: getEnv("UI_EMPTY_MESSAGE", defaultEmptyMessage),
	}
	session := Session{
		TTL: getEnvDuration("SESSION_TTL", 30*time.Minute),
		Max: getEnvInt("SESSION_MAX", 10000),
	}

	return Config{
		App:     app,
		UserAPI: userAPI,
		UI:      ui,
		Session: session,
	}
}

// EndpointURL returns the configured endpoint untouched once it is known to be
// an absolute http(s) URL.
func (c Config) EndpointURL() (string, error) {
	if c.UserAPI.URL == "" {
		return "", fmt.Errorf("incomplete user api config: USER_API_URL is required")
	}
	u, err := url.ParseRequestURI(c.UserAPI.URL)
	if err != nil {
		return "", fmt.Errorf("invalid USER_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid USER_API_URL: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid USER_API_URL: host is required")
	}

	return c.UserAPI.URL, nil
}

func (c Config) Addr() string { return c.App.Host + ":" + c.App.Port }
