package config

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: base URL of the storefront HTTP API.
//   - ProcessorBaseURL: base URL of the card processor's REST API.
//   - ProcessorKey: the processor's publishable (client-side) key.
//   - DatabasePath: path of the local sqlite file holding the persisted
//     session.
type Config struct {
	APIBaseURL       string
	ProcessorBaseURL string
	ProcessorKey     string
	DatabasePath     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost"
	c.ProcessorBaseURL = "https://api.stripe.com"
	c.ProcessorKey = ""
	c.DatabasePath = "storefront.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
