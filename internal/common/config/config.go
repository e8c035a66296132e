// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig             `mapstructure:"app"`
	API     APIConfig             `mapstructure:"api"`
	Uploads UploadsConfig         `mapstructure:"uploads"`
	Session SessionConfig         `mapstructure:"session"`
	Forms   map[string]FormConfig `mapstructure:"forms"`
	Logging LoggingConfig         `mapstructure:"logging"`
	Metrics MetricsConfig         `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig holds settings for the enquiry backend.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// UploadsConfig holds settings for the remote asset host.
type UploadsConfig struct {
	CloudName    string `mapstructure:"cloud_name"`
	UploadPreset string `mapstructure:"upload_preset"`
	UploadURL    string `mapstructure:"upload_url"` // overrides the Cloudinary default, set in tests
	Timeout      int    `mapstructure:"timeout"`    // milliseconds
	MaxFileBytes int64  `mapstructure:"max_file_bytes"`
}

// SessionConfig holds settings for the bearer-token store.
type SessionConfig struct {
	StorageKey string      `mapstructure:"storage_key"`
	LoginURL   string      `mapstructure:"login_url"`
	Redis      RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FormConfig holds per-form overrides. Every registered form works with zero config.
type FormConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	EndpointPath string `mapstructure:"endpoint_path"` // overrides the registry default
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds the Prometheus scrape endpoint settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// EnquiryURL joins the API base with a form's endpoint path.
func (a APIConfig) EnquiryURL(path string) string {
	return fmt.Sprintf("%s/%s", trimSlash(a.BaseURL), path)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
