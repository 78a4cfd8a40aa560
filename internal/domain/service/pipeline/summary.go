package pipeline

import (
	"math"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
)

type StageStat struct {
	Stage value.Stage
	Count int
	Value decimal.Decimal
}

// Summary — агрегаты для дашборда.
type Summary struct {
	TotalDeals     int
	OpenValue      decimal.Decimal
	ClosedWonCount int
	ClosedWonValue decimal.Decimal
	// ConversionRate — доля выигранных сделок в процентах, округлённая до целого.
	ConversionRate int
	Stages         []StageStat
}

func Summarize(deals []entity.Deal) Summary {
	open := lo.Filter(deals, func(d entity.Deal, _ int) bool {
		return d.Stage.IsActive()
	})
	won := DealsByStage(deals, value.StageClosedWon)

	summary := Summary{
		TotalDeals:     len(deals),
		OpenValue:      sumValues(open),
		ClosedWonCount: len(won),
		ClosedWonValue: sumValues(won),
		Stages: lo.Map(value.Stages(), func(stage value.Stage, _ int) StageStat {
			return StageStat{
				Stage: stage,
				Count: len(DealsByStage(deals, stage)),
				Value: StageTotal(deals, stage),
			}
		}),
	}

	if len(deals) > 0 {
		summary.ConversionRate = int(math.Round(float64(len(won)) / float64(len(deals)) * 100)) //nolint:mnd
	}

	return summary
}

func sumValues(deals []entity.Deal) decimal.Decimal {
	return lo.Reduce(deals, func(sum decimal.Decimal, d entity.Deal, _ int) decimal.Decimal {
		return sum.Add(d.Value)
	}, decimal.Zero)
}
