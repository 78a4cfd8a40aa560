package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

var (
	errUnknownBackend = errors.New("unknown pipeline backend")
	errMissingSetting = errors.New("missing setting")
)

type Config struct {
	App      App
	Postgres Postgres
	Redis    Redis
	Records  Records
	Bot      Bot
	Pipeline Pipeline
	Asynq    Asynq
}

// Load читает конфигурацию из окружения; .env, если он есть, подгружается первым.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

// Validate проверяет настройки, обязательность которых зависит от выбранного хранилища.
func (c Config) Validate() error {
	switch c.Pipeline.Backend {
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: PG_DSN", errMissingSetting)
		}
	case BackendRecords:
		if c.Records.BaseURL == "" {
			return fmt.Errorf("%w: RECORDS_BASE_URL", errMissingSetting)
		}

		if c.Records.APIKey == "" {
			return fmt.Errorf("%w: RECORDS_API_KEY", errMissingSetting)
		}
	default:
		return fmt.Errorf("%w: %q", errUnknownBackend, c.Pipeline.Backend)
	}

	if (c.Bot.Token == "") != (c.Bot.ChatID == 0) {
		return fmt.Errorf("%w: BOT_TOKEN and BOT_CHAT_ID go together", errMissingSetting)
	}

	return nil
}
