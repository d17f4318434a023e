package models

import "time"

type Config struct {
	Database DatabaseConfig `json:"database" yaml:"database"`
	HTTP     HTTPConfig     `json:"http" yaml:"http"`
	Ingest   IngestConfig   `json:"ingest" yaml:"ingest"`
	Admin    AdminConfig    `json:"admin" yaml:"admin"`
	Misc     MiscConfig     `json:"misc" yaml:"misc"`
}

type DatabaseConfig struct {
	DBType           string `json:"db_type" yaml:"db_type" validate:"required,oneof=sqlite postgres mysql"`
	ConnectionString string `json:"connection_string" yaml:"connection_string" validate:"required"`
}

type HTTPConfig struct {
	Port            int    `json:"port" yaml:"port" validate:"required,min=1,max=65535"`
	ListeningAddr   string `json:"listening_addr" yaml:"listening_addr" validate:"required"`
	RateLimit       int    `json:"rate_limit" yaml:"rate_limit" validate:"min=0"`
	DefaultPageSize int    `json:"default_page_size" yaml:"default_page_size" validate:"min=1,max=100"`
	MaxPageSize     int    `json:"max_page_size" yaml:"max_page_size" validate:"min=1,max=1000,gtefield=DefaultPageSize"`
}

// IngestConfig controls how the ingestion tool talks to PokeAPI. Delays and
// timeouts are in seconds.
type IngestConfig struct {
	BaseURL      string  `json:"base_url" yaml:"base_url" validate:"required,url"`
	UserAgent    string  `json:"user_agent" yaml:"user_agent"`
	Timeout      float64 `json:"timeout" yaml:"timeout" validate:"gt=0"`
	MaxRetries   int     `json:"max_retries" yaml:"max_retries" validate:"min=0,max=10"`
	RetryDelay   float64 `json:"retry_delay" yaml:"retry_delay" validate:"min=0"`
	RequestDelay float64 `json:"request_delay" yaml:"request_delay" validate:"min=0"`
}

func (c IngestConfig) TimeoutDuration() time.Duration {
	return seconds(c.Timeout)
}

func (c IngestConfig) RetryDelayDuration() time.Duration {
	return seconds(c.RetryDelay)
}

func (c IngestConfig) RequestDelayDuration() time.Duration {
	return seconds(c.RequestDelay)
}

type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

type MiscConfig struct {
	SeedDatabase bool `json:"seed_database" yaml:"seed_database"`
}

// DefaultConfig is written to disk when no configuration file exists yet.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DBType:           "sqlite",
			ConnectionString: "file:local-dex.db?cache=shared&_pragma=foreign_keys(1)",
		},
		HTTP: HTTPConfig{
			Port:            8080,
			ListeningAddr:   "0.0.0.0",
			RateLimit:       300,
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Ingest: IngestConfig{
			BaseURL:      "https://pokeapi.co/api/v2",
			UserAgent:    "local-dex/1.0 (+https://github.com/FlagBrew/local-dex)",
			Timeout:      30,
			MaxRetries:   3,
			RetryDelay:   1,
			RequestDelay: 1,
		},
		// Write endpoints stay locked until a password is configured.
		Admin: AdminConfig{
			Username: "admin",
		},
		Misc: MiscConfig{
			SeedDatabase: true,
		},
	}
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
