package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/pkg/logx"
)

//go:generate moq -rm -out board_refresher_mock.gen.go . BoardRefresher:BoardRefresherMock
type BoardRefresher interface {
	Refresh(ctx context.Context) error
}

// Refresher периодически перечитывает доску из хранилища, чтобы
// подтягивать изменения других клиентов.
type Refresher struct {
	board    BoardRefresher
	interval time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewRefresher(board BoardRefresher, interval time.Duration) *Refresher {
	return &Refresher{
		board:    board,
		interval: interval,
	}
}

// Start запускает Run в фоне. Повторный вызов при работающем цикле — ошибка.
func (w *Refresher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("refresher is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("refresher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *Refresher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Refresher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run перечитывает доску раз в interval до отмены контекста.
// Неудачная перезагрузка оставляет доску как есть и ждёт следующего тика.
func (w *Refresher) Run(ctx context.Context) error {
	logger(ctx).Info("board refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("board refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			err := w.board.Refresh(ctx)
			switch {
			case err == nil:
			case errors.Is(err, pipeline.ErrRefreshSuperseded):
				// Доска уже отражает свежие коммиты, следующий тик повторит загрузку
			default:
				logger(ctx).Error("board refresh failed", logx.Error(err))
			}
		}
	}
}
