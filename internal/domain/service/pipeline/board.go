package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/logx"
)

const (
	defaultCommitTimeout = 30 * time.Second
	inFlightCleanup      = time.Minute
	refreshAttempts      = 3
)

// ErrRefreshSuperseded — каждая попытка перезагрузки пересеклась с коммитом.
var ErrRefreshSuperseded = errors.New("board refresh superseded by concurrent commits")

// DealLister — источник полного списка сделок для перезагрузки доски.
//
//go:generate moq -rm -out deal_lister_mock.gen.go . DealLister:DealListerMock
type DealLister interface {
	List(ctx context.Context) ([]entity.Deal, error)
}

// DealsByStage возвращает сделки стадии в исходном порядке.
func DealsByStage(deals []entity.Deal, stage value.Stage) []entity.Deal {
	return lo.Filter(deals, func(d entity.Deal, _ int) bool {
		return d.Stage == stage
	})
}

// StageTotal — сумма value по сделкам стадии; для пустой стадии ноль.
func StageTotal(deals []entity.Deal, stage value.Stage) decimal.Decimal {
	return lo.Reduce(DealsByStage(deals, stage), func(sum decimal.Decimal, d entity.Deal, _ int) decimal.Decimal {
		return sum.Add(d.Value)
	}, decimal.Zero)
}

// Column — колонка доски с агрегатами.
type Column struct {
	Stage value.Stage
	Deals []entity.Deal
	Count int
	Total decimal.Decimal
}

// Columns раскладывает сделки по колонкам доски. Сделки Closed Lost на доску не попадают.
func Columns(deals []entity.Deal) []Column {
	return lo.Map(value.Stages(), func(stage value.Stage, _ int) Column {
		stageDeals := DealsByStage(deals, stage)

		return Column{
			Stage: stage,
			Deals: stageDeals,
			Count: len(stageDeals),
			Total: StageTotal(deals, stage),
		}
	})
}

type Outcome string

const (
	// OutcomeUnchanged — сделку бросили в её же стадию, коммита нет.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeAbandoned — жест прерван или брошен мимо колонки.
	OutcomeAbandoned Outcome = "abandoned"
	// OutcomeInFlight — по сделке уже идёт коммит, повторный не запускается.
	OutcomeInFlight Outcome = "in_flight"
	// OutcomeCommitting — коммит запущен, результат придёт в DropResult.Done.
	OutcomeCommitting Outcome = "committing"
)

type CommitResult struct {
	Deal entity.Deal
	Err  error
}

type DropResult struct {
	Outcome Outcome
	// Done закрывается после единственной отправки результата.
	// nil для всех исходов, кроме OutcomeCommitting.
	Done <-chan CommitResult
}

// Board — контроллер доски: группировка сделок и перетаскивание между стадиями.
// Собственного состояния не хранит, работает поверх Store.
type Board struct {
	store         *Store
	lister        DealLister
	committer     *Committer
	inFlight      *cache.Cache
	commitTimeout time.Duration
	loaded        atomic.Bool
}

func NewBoard(store *Store, lister DealLister, committer *Committer) *Board {
	return &Board{
		store:         store,
		lister:        lister,
		committer:     committer,
		inFlight:      cache.New(defaultCommitTimeout, inFlightCleanup),
		commitTimeout: defaultCommitTimeout,
	}
}

// WithCommitTimeout ограничивает время фонового коммита.
// Отметка «коммит в процессе» живёт столько же.
func (b *Board) WithCommitTimeout(timeout time.Duration) *Board {
	b.commitTimeout = timeout
	b.inFlight = cache.New(timeout, inFlightCleanup)
	return b
}

func (b *Board) Store() *Store {
	return b.store
}

// Refresh перезагружает стор из хранилища. При ошибке стор не меняется.
// Если пока шла загрузка стор принял коммит, список считается устаревшим
// и загружается заново; после refreshAttempts попыток стор остаётся прежним.
func (b *Board) Refresh(ctx context.Context) error {
	for range refreshAttempts {
		gen := b.store.Generation()

		deals, err := b.lister.List(ctx)
		if err != nil {
			logger(ctx).Error("failed to refresh board", logx.Error(err))
			return fmt.Errorf("lister.List: %w", err)
		}

		if b.store.LoadIfUnchanged(deals, gen) {
			b.loaded.Store(true)
			logger(ctx).Info("board refreshed", slog.Int("deals", len(deals)))

			return nil
		}

		logger(ctx).Debug("store changed during refresh, reloading")
	}

	logger(ctx).Warn("board refresh superseded by commits", slog.Int("attempts", refreshAttempts))

	return ErrRefreshSuperseded
}

// Loaded сообщает, была ли хотя бы одна успешная загрузка из хранилища.
func (b *Board) Loaded() bool {
	return b.loaded.Load()
}

func (b *Board) Columns() []Column {
	return Columns(b.store.Snapshot())
}

func (b *Board) Summary() Summary {
	return Summarize(b.store.Snapshot())
}

// BeginDrag начинает жест: Idle -> Dragging, фиксируя снимок сделки.
func (b *Board) BeginDrag(dealID int64) (*Drag, error) {
	deal, ok := b.store.Get(dealID)
	if !ok {
		return nil, domain.ErrDealNotFound(dealID)
	}

	return &Drag{
		board: b,
		state: DragDragging,
		deal:  deal,
	}, nil
}

// Move — перенос без жеста (HTTP, бот). В отличие от Drop принимает любую
// валидную стадию, включая Closed Lost.
func (b *Board) Move(ctx context.Context, dealID int64, target value.Stage) (DropResult, error) {
	if !target.IsValid() {
		return DropResult{}, domain.NewError(errcodes.InvalidStage, fmt.Sprintf("unknown stage %q", target))
	}

	drag, err := b.BeginDrag(dealID)
	if err != nil {
		return DropResult{}, err
	}

	return drag.release(ctx, target), nil
}

func (b *Board) transition(ctx context.Context, deal entity.Deal, target value.Stage) DropResult {
	if deal.Stage == target {
		logger(ctx).Debug("deal dropped onto its own stage", slog.Int64(logx.FieldDealID, deal.ID))
		return DropResult{Outcome: OutcomeUnchanged}
	}

	key := strconv.FormatInt(deal.ID, 10)

	// Add атомарен: второй перенос той же сделки не стартует, пока жив первый
	if err := b.inFlight.Add(key, target, cache.DefaultExpiration); err != nil {
		logger(ctx).Warn("stage commit already in flight",
			slog.Int64(logx.FieldDealID, deal.ID),
			logx.Stringer(logx.FieldStage, target),
		)
		return DropResult{Outcome: OutcomeInFlight}
	}

	done := make(chan CommitResult, 1)

	go func() {
		defer close(done)

		// Начатый коммит не отменяется вместе с запросом
		commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.commitTimeout)
		defer cancel()

		updated, err := b.committer.Commit(commitCtx, deal.ID, target)

		b.inFlight.Delete(key)
		done <- CommitResult{Deal: updated, Err: err}
	}()

	return DropResult{Outcome: OutcomeCommitting, Done: done}
}

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// Drag — один жест перетаскивания. У каждого жеста своё состояние,
// поэтому параллельные клиенты не мешают друг другу.
type Drag struct {
	board *Board
	mu    sync.Mutex
	state DragState
	deal  entity.Deal
}

func (d *Drag) State() DragState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// Deal возвращает снимок сделки на момент начала жеста.
func (d *Drag) Deal() entity.Deal {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.deal
}

// Drop завершает жест над колонкой target. Жест возвращается в Idle сразу,
// не дожидаясь коммита.
func (d *Drag) Drop(ctx context.Context, target value.Stage) DropResult {
	if !target.IsColumn() {
		d.Cancel()
		return DropResult{Outcome: OutcomeAbandoned}
	}

	return d.release(ctx, target)
}

// Cancel прерывает жест без коммита.
func (d *Drag) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = DragIdle
}

func (d *Drag) release(ctx context.Context, target value.Stage) DropResult {
	d.mu.Lock()
	if d.state != DragDragging {
		d.mu.Unlock()
		return DropResult{Outcome: OutcomeAbandoned}
	}

	d.state = DragIdle
	deal := d.deal
	d.mu.Unlock()

	return d.board.transition(ctx, deal, target)
}
