package sleeper

import (
	"context"
	"time"
)

// Config contains all settings for the Sleeper API client.
type Config struct {
	BaseURL   string        `description:"Base URL of the Sleeper API."`
	Timeout   time.Duration `description:"Timeout applied to every upstream request."`
	UserAgent string        `description:"User-Agent header sent upstream."`
}

// Name of the configuration root.
func (*Config) Name() string {
	return "sleeper"
}

// Component is a settings component that produces a Client.
type Component struct{}

// NewComponent populates the default values.
func NewComponent() *Component {
	return &Component{}
}

// Settings generates a config with all defaults set.
func (*Component) Settings() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   20 * time.Second,
		UserAgent: "matchups/1.0",
	}
}

// New constructs a Client from the given config.
func (*Component) New(_ context.Context, conf *Config) (*Client, error) {
	return NewClient(conf.BaseURL, conf.Timeout, conf.UserAgent), nil
}
