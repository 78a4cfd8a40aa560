package config

import "time"

// Records — удалённое хранилище записей со сделками.
type Records struct {
	BaseURL string        `env:"RECORDS_BASE_URL"`
	Table   string        `env:"RECORDS_TABLE" envDefault:"deals"`
	APIKey  string        `env:"RECORDS_API_KEY" json:"-"`
	Timeout time.Duration `env:"RECORDS_TIMEOUT" envDefault:"15s"`
}
