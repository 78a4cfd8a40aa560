package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/internal/infrastructure/cache"
)

func sampleDeals() []entity.Deal {
	return []entity.Deal{
		{ID: 1, Title: "A", Value: decimal.NewFromInt(100), Stage: value.StageLead, ContactID: 4},
		{ID: 2, Title: "B", Value: decimal.RequireFromString("250.75"), Stage: value.StageNegotiation,
			ExpectedCloseDate: value.NewDate(2024, time.March, 3)},
	}
}

func backingRepo() *cache.RepositoryMock {
	deals := sampleDeals()

	return &cache.RepositoryMock{
		ListFunc: func(context.Context) ([]entity.Deal, error) {
			return deals, nil
		},
		GetByIDFunc: func(_ context.Context, id int64) (*entity.Deal, error) {
			for _, d := range deals {
				if d.ID == id {
					return &d, nil
				}
			}
			return nil, domain.ErrDealNotFound(id)
		},
		UpdateStageFunc: func(_ context.Context, id int64, stage value.Stage) (*entity.Deal, error) {
			for i := range deals {
				if deals[i].ID == id {
					deals[i].Stage = stage
					d := deals[i]
					return &d, nil
				}
			}
			return nil, domain.ErrDealNotFound(id)
		},
	}
}

func TestUnavailableRedisFallsThrough(t *testing.T) {
	rq := require.New(t)

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := backingRepo()
	cached := cache.NewDealRepository(repo, rdb, time.Minute)

	deals, err := cached.List(context.Background())
	rq.NoError(err)
	rq.Len(deals, 2)

	_, err = cached.GetByID(context.Background(), 99)
	rq.True(domain.IsNotFound(err))

	moved, err := cached.UpdateStage(context.Background(), 1, value.StageProposal)
	rq.NoError(err)
	rq.Equal(value.StageProposal, moved.Stage)

	_, err = cached.List(context.Background())
	rq.NoError(err)
	rq.Len(repo.ListCalls(), 2)
}

// Проверки с живым Redis идут только при заданном REDIS_TEST_ADDR.
func TestReadThroughAndInvalidation(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is not set")
	}

	rq := require.New(t)
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	rq.NoError(rdb.FlushDB(ctx).Err())

	repo := backingRepo()
	cached := cache.NewDealRepository(repo, rdb, time.Minute)

	first, err := cached.List(ctx)
	rq.NoError(err)

	second, err := cached.List(ctx)
	rq.NoError(err)
	rq.Len(repo.ListCalls(), 1)

	rq.Len(second, len(first))
	for i := range first {
		rq.True(first[i].Equal(second[i]))
	}

	got, err := cached.GetByID(ctx, 2)
	rq.NoError(err)
	rq.Equal("2024-03-03", got.ExpectedCloseDate.String())

	_, err = cached.GetByID(ctx, 2)
	rq.NoError(err)
	rq.Len(repo.GetByIDCalls(), 1)

	_, err = cached.UpdateStage(ctx, 2, value.StageClosedWon)
	rq.NoError(err)

	after, err := cached.GetByID(ctx, 2)
	rq.NoError(err)
	rq.Equal(value.StageClosedWon, after.Stage)
	rq.Len(repo.GetByIDCalls(), 2)

	_, err = cached.List(ctx)
	rq.NoError(err)
	rq.Len(repo.ListCalls(), 2)
}

func TestLoadRacingWriteIsNotCached(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR is not set")
	}

	rq := require.New(t)
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	rq.NoError(rdb.FlushDB(ctx).Err())

	var (
		repo    = backingRepo()
		list    = repo.ListFunc
		started = make(chan struct{})
		release = make(chan struct{})
		first   = true
	)

	repo.ListFunc = func(ctx context.Context) ([]entity.Deal, error) {
		deals, err := list(ctx)
		snapshot := append([]entity.Deal(nil), deals...)

		if first {
			first = false
			close(started)
			<-release
		}

		return snapshot, err
	}

	cached := cache.NewDealRepository(repo, rdb, time.Minute)

	done := make(chan []entity.Deal)
	go func() {
		deals, _ := cached.List(ctx)
		done <- deals
	}()

	<-started
	_, err := cached.UpdateStage(ctx, 1, value.StageQualified)
	rq.NoError(err)
	close(release)

	stale := <-done
	rq.Equal(value.StageLead, stale[0].Stage)

	fresh, err := cached.List(ctx)
	rq.NoError(err)
	rq.Equal(value.StageQualified, fresh[0].Stage)
	rq.Len(repo.ListCalls(), 2)
}
