package config

import "time"

// Config holds runtime settings for the authgate client.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the authentication backend.
//   - RequestTimeout: upper bound for a single outbound HTTP call.
//   - DatabasePath: sqlite file holding the local session state.
//   - LogLevel: minimum level for the structured logger (debug|info|warn|error).
type Config struct {
	BaseURL        string        `env:"AUTHGATE_BASE_URL"`
	RequestTimeout time.Duration `env:"AUTHGATE_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"AUTHGATE_DATABASE_PATH"`
	LogLevel       string        `env:"AUTHGATE_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "auth.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
