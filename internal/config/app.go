package config

import "time"

type App struct {
	Name            string        `env:"APP_NAME" envDefault:"crm-pipeline"`
	Version         string        `env:"APP_VERSION" envDefault:"dev"`
	Debug           bool          `env:"APP_DEBUG" envDefault:"false"`
	HTTPAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ProbeAddress    string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress  string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	LogFieldMaxLen  int           `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}
