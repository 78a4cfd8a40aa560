package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"crm_pipeline/internal/config"
	"crm_pipeline/internal/domain/service/deal"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/infrastructure/cache"
	"crm_pipeline/internal/infrastructure/notifier"
	"crm_pipeline/internal/infrastructure/persistence"
	"crm_pipeline/internal/infrastructure/records"
	"crm_pipeline/internal/server"
	"crm_pipeline/internal/transport/bot"
	"crm_pipeline/internal/worker"
	"crm_pipeline/pkg/application/connectors"
	"crm_pipeline/pkg/application/modules"
	"crm_pipeline/pkg/contextx"
	"crm_pipeline/pkg/logx"
	"crm_pipeline/pkg/probe"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var errBoardNotLoaded = errors.New("board has not been loaded yet")

// Run собирает зависимости и работает до отмены ctx или падения одного из модулей.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := newLogger(cfg.App)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	redisConnector := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer redisConnector.Close(ctx)

	checks := make(map[string]probe.Check)

	source, closeSource, err := newDealSource(ctx, cfg, checks)
	if err != nil {
		return err
	}
	defer closeSource()

	repo := cache.NewDealRepository(source, redisConnector.Client(ctx), cfg.Pipeline.CacheTTL)

	notify := pipeline.Notifier(notifier.NewLog())

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Bot.Enabled() {
		telegramNotifier, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID, cfg.Pipeline.NoticeQueueSize)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		notify = telegramNotifier

		g.Go(func() error {
			return untilCanceled(telegramNotifier.Run(ctx))
		})
	}

	store := pipeline.NewStore()
	committer := pipeline.NewCommitter(repo, store, notify)
	board := pipeline.NewBoard(store, repo, committer).WithCommitTimeout(cfg.Pipeline.CommitTimeout)
	dealService := deal.NewDealService(repo, store)

	// Пустая доска лучше, чем отказ стартовать: следующий тик refresher'а повторит загрузку
	if err = board.Refresh(ctx); err != nil {
		logger(ctx).Warn("initial board load failed", logx.Error(err))
	}

	checks["board"] = func(context.Context) error {
		if !board.Loaded() {
			return errBoardNotLoaded
		}

		return nil
	}

	refresher := worker.NewRefresher(board, cfg.Pipeline.RefreshInterval)
	if err = refresher.Start(ctx); err != nil {
		return fmt.Errorf("refresher.Start: %w", err)
	}
	defer refresher.Stop()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	})
	defer asynqClient.Close()

	srv := server.NewServer(
		server.NewDealServer(dealService),
		server.NewBoardServer(board, committer, worker.NewEnqueuer(asynqClient, cfg.Asynq.Queue)),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr: cfg.App.HTTPAddress,
		Handler: srv.Router(server.RouterOptions{
			Logger:              logger(ctx),
			SensitiveDataMasker: logx.NewSensitiveDataMasker(),
			LogFieldMaxLen:      cfg.App.LogFieldMaxLen,
		}),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
	}

	modules.HTTPServer{ShutdownTimeout: cfg.App.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.MetricServer{ListenAddress: cfg.App.MetricsAddress}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddress,
		Checks:        checks,
	}.Run(ctx, g)
	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
		Concurrency:   cfg.Asynq.Concurrency,
	}.Run(ctx, g, modules.AsynqQueues{cfg.Asynq.Queue: 1}, worker.NewStageBatch(committer).Handler())

	if cfg.Bot.Enabled() {
		commandBot, err := bot.New(cfg.Bot.Token, cfg.Bot.ChatID, board, refresher)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			return untilCanceled(commandBot.Run(ctx))
		})
	}

	logger(ctx).Info("application started", slog.String("backend", cfg.Pipeline.Backend))

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}

// newDealSource подключает авторитетное хранилище сделок по cfg.Pipeline.Backend.
func newDealSource(
	ctx context.Context,
	cfg config.Config,
	checks map[string]probe.Check,
) (cache.Repository, func(), error) {
	if cfg.Pipeline.Backend == config.BackendRecords {
		client := records.NewClient(records.Options{
			BaseURL:        cfg.Records.BaseURL,
			Table:          cfg.Records.Table,
			APIKey:         cfg.Records.APIKey,
			Timeout:        cfg.Records.Timeout,
			LogFieldMaxLen: cfg.App.LogFieldMaxLen,
		})

		return client, func() {}, nil
	}

	if cfg.Postgres.Migrate {
		if err := persistence.Migrate(cfg.Postgres.DSN); err != nil {
			return nil, nil, fmt.Errorf("persistence.Migrate: %w", err)
		}

		logger(ctx).Info("postgres migrations applied")
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)

	checks["postgres"] = db.PingContext

	return persistence.NewDealRepository(db), func() { pg.Close(ctx) }, nil
}

func newLogger(cfg config.App) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
}

func untilCanceled(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
