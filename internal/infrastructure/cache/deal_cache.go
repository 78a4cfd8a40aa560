package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	keyList    = "deals:list"
	keyContact = "deals:contact:"
	keyDeal    = "deals:id:"

	scanBatch = 100
)

//go:generate moq -rm -out repository_mock.gen.go . Repository:RepositoryMock
type Repository interface {
	List(ctx context.Context) ([]entity.Deal, error)
	ListByContact(ctx context.Context, contactID int64) ([]entity.Deal, error)
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	Create(ctx context.Context, fields entity.DealFields) (*entity.Deal, error)
	Update(ctx context.Context, id int64, fields entity.DealFields) (*entity.Deal, error)
	UpdateStage(ctx context.Context, id int64, stage value.Stage) (*entity.Deal, error)
	UpdateStages(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error)
	Delete(ctx context.Context, id int64) error
}

// DealRepository — read-through кэш в Redis поверх любого репозитория сделок.
// Чтения одного ключа склеиваются через singleflight, любая запись сбрасывает
// списки и затронутые сделки. Недоступный Redis не ломает запросы:
// ошибки кэша логируются, и запрос идёт в репозиторий.
//
// Каждая инвалидация увеличивает поколение. Загрузка, начатая в прошлом
// поколении, в кэш не пишется и не склеивается с загрузками нового.
type DealRepository struct {
	next Repository
	rdb  *redis.Client
	ttl  time.Duration
	sf   singleflight.Group

	// mu упорядочивает запись загруженного значения и смену поколения
	mu  sync.RWMutex
	gen atomic.Uint64
}

func NewDealRepository(next Repository, rdb *redis.Client, ttl time.Duration) *DealRepository {
	return &DealRepository{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
	}
}

func (r *DealRepository) List(ctx context.Context) ([]entity.Deal, error) {
	return readThrough(ctx, r, keyList, func() ([]entity.Deal, error) {
		return r.next.List(ctx)
	})
}

func (r *DealRepository) ListByContact(ctx context.Context, contactID int64) ([]entity.Deal, error) {
	return readThrough(ctx, r, keyContact+strconv.FormatInt(contactID, 10), func() ([]entity.Deal, error) {
		return r.next.ListByContact(ctx, contactID)
	})
}

func (r *DealRepository) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	deal, err := readThrough(ctx, r, dealKey(id), func() (entity.Deal, error) {
		d, err := r.next.GetByID(ctx, id)
		if err != nil {
			return entity.Deal{}, err
		}
		return *d, nil
	})
	if err != nil {
		return nil, err
	}

	return &deal, nil
}

func (r *DealRepository) Create(ctx context.Context, fields entity.DealFields) (*entity.Deal, error) {
	deal, err := r.next.Create(ctx, fields)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	r.invalidate(ctx)

	return deal, nil
}

func (r *DealRepository) Update(ctx context.Context, id int64, fields entity.DealFields) (*entity.Deal, error) {
	deal, err := r.next.Update(ctx, id, fields)
	r.invalidate(ctx, id)

	return deal, err //nolint:wrapcheck
}

func (r *DealRepository) UpdateStage(ctx context.Context, id int64, stage value.Stage) (*entity.Deal, error) {
	deal, err := r.next.UpdateStage(ctx, id, stage)
	r.invalidate(ctx, id)

	return deal, err //nolint:wrapcheck
}

func (r *DealRepository) UpdateStages(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error) {
	result, err := r.next.UpdateStages(ctx, changes)

	ids := make([]int64, 0, len(changes))
	for _, change := range changes {
		ids = append(ids, change.DealID)
	}

	r.invalidate(ctx, ids...)

	return result, err //nolint:wrapcheck
}

func (r *DealRepository) Delete(ctx context.Context, id int64) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)

	return err //nolint:wrapcheck
}

// readThrough отдаёт значение из Redis, а при промахе загружает его один раз
// на ключ, сколько бы запросов ни пришло одновременно.
func readThrough[T any](ctx context.Context, r *DealRepository, key string, load func() (T, error)) (T, error) {
	var cached T

	b, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached, nil
		}
		logger(ctx).Warn("corrupted cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger(ctx).Warn("cache read failed", slog.String("key", key), logx.Error(err))
	}

	gen := r.gen.Load()

	v, err, _ := r.sf.Do(key+"@"+strconv.FormatUint(gen, 10), func() (any, error) {
		loaded, err := load()
		if err != nil {
			return nil, err
		}

		r.storeIfCurrent(ctx, gen, key, loaded)

		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err //nolint:wrapcheck
	}

	return v.(T), nil //nolint:forcetypeassert
}

// storeIfCurrent пишет значение, только если с начала загрузки не было
// инвалидаций.
func (r *DealRepository) storeIfCurrent(ctx context.Context, gen uint64, key string, v any) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.gen.Load() != gen {
		logger(ctx).Debug("stale load not cached", slog.String("key", key))
		return
	}

	r.store(ctx, key, v)
}

func (r *DealRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger(ctx).Error("json.Marshal", slog.String("key", key), logx.Error(err))
		return
	}

	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logger(ctx).Warn("cache write failed", slog.String("key", key), logx.Error(err))
	}
}

// invalidate сбрасывает общий список, все выборки по контактам и переданные сделки.
func (r *DealRepository) invalidate(ctx context.Context, ids ...int64) {
	r.mu.Lock()
	r.gen.Add(1)
	r.mu.Unlock()

	keys := []string{keyList}
	for _, id := range ids {
		keys = append(keys, dealKey(id))
	}

	iter := r.rdb.Scan(ctx, 0, keyContact+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		logger(ctx).Warn("cache scan failed", logx.Error(err))
	}

	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		logger(ctx).Warn("cache invalidation failed", logx.Error(err))
	}
}

func dealKey(id int64) string {
	return keyDeal + strconv.FormatInt(id, 10)
}
