package testutil

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/habtools/habctl/internal/config"
)

// ConfigBuilder provides a fluent interface for building test
// configurations.
type ConfigBuilder struct {
	config *config.Config
}

// NewConfigBuilder creates a new config builder with sensible defaults
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: &config.Config{
			Host:        "hab.local",
			Port:        8080,
			RESTEnabled: true,
		},
	}
}

// WithHost sets the server host
func (b *ConfigBuilder) WithHost(host string) *ConfigBuilder {
	b.config.Host = host
	return b
}

// WithPort sets the server port
func (b *ConfigBuilder) WithPort(port int) *ConfigBuilder {
	b.config.Port = port
	return b
}

// WithCredentials sets the username and password
func (b *ConfigBuilder) WithCredentials(username, password string) *ConfigBuilder {
	b.config.Username = username
	b.config.Password = password
	return b
}

// WithServerURL points the config at a test server URL
// (e.g. an httptest.Server address).
func (b *ConfigBuilder) WithServerURL(serverURL string) *ConfigBuilder {
	u, err := url.Parse(serverURL)
	if err != nil {
		return b
	}
	b.config.Host = u.Scheme + "://" + u.Hostname()
	if portStr := u.Port(); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			b.config.Port = port
		}
	}
	return b
}

// Build returns the assembled configuration
func (b *ConfigBuilder) Build() *config.Config {
	cfg := *b.config
	cfg.Host = strings.TrimSuffix(cfg.Host, "/")
	return &cfg
}
