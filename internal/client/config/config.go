package config

// DefaultBaseURL is the backend address used when nothing else is given.
// Release builds may override it with -ldflags "-X ...config.DefaultBaseURL=...".
var DefaultBaseURL = "http://127.0.0.1:8080"

// Config holds runtime settings for the sondage terminal client.
//
// Fields:
//   - BaseURL: scheme://host:port of the poll backend.
//   - SessionFile: path of the local SQLite file holding the session.
//   - Verbose: enables debug logging on stderr.
type Config struct {
	BaseURL     string
	SessionFile string
	Verbose     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.SessionFile = "sondage.db"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
