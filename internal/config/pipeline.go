package config

import "time"

const (
	BackendPostgres = "postgres"
	BackendRecords  = "records"
)

type Pipeline struct {
	// Backend — авторитетное хранилище сделок: postgres или records
	Backend         string        `env:"PIPELINE_BACKEND" envDefault:"postgres"`
	CommitTimeout   time.Duration `env:"PIPELINE_COMMIT_TIMEOUT" envDefault:"30s"`
	RefreshInterval time.Duration `env:"PIPELINE_REFRESH_INTERVAL" envDefault:"1m"`
	CacheTTL        time.Duration `env:"PIPELINE_CACHE_TTL" envDefault:"1m"`
	NoticeQueueSize int           `env:"PIPELINE_NOTICE_QUEUE_SIZE" envDefault:"64"`
}

type Asynq struct {
	Queue       string `env:"ASYNQ_QUEUE" envDefault:"pipeline"`
	Concurrency int    `env:"ASYNQ_CONCURRENCY" envDefault:"4"`
}
