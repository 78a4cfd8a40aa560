package server

import (
	"fmt"
	"strconv"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/lox"
	"crm_pipeline/pkg/rest"
)

func newRESTDeal(deal entity.Deal) rest.Deal {
	result := rest.Deal{
		ID:          deal.ID,
		Title:       deal.Title,
		Value:       deal.Value,
		Stage:       deal.Stage.String(),
		Probability: deal.Probability,
		Description: deal.Description,
	}

	if deal.ContactID > 0 {
		result.ContactID = lo.ToPtr(deal.ContactID)
	}

	if !deal.ExpectedCloseDate.IsZero() {
		result.ExpectedCloseDate = lo.ToPtr(deal.ExpectedCloseDate.String())
	}

	if !deal.CreatedAt.IsZero() {
		result.CreatedAt = deal.CreatedAt.Format(time.RFC3339)
	}

	if !deal.UpdatedAt.IsZero() {
		result.UpdatedAt = deal.UpdatedAt.Format(time.RFC3339)
	}

	return result
}

func newRESTDeals(deals []entity.Deal) []rest.Deal {
	return lox.Map(deals, newRESTDeal)
}

func newDomainDealFields(input rest.DealInput) (entity.DealFields, error) {
	fields := entity.DealFields{
		Title:       input.Title,
		Value:       input.Value,
		ContactID:   input.ContactID,
		Probability: input.Probability,
		Description: input.Description,
	}

	if input.Stage != nil {
		stage, err := value.ParseStage(*input.Stage)
		if err != nil {
			return entity.DealFields{}, fmt.Errorf("value.ParseStage: %w", err)
		}
		fields.Stage = &stage
	}

	if input.ExpectedCloseDate != nil {
		date, err := value.ParseDate(*input.ExpectedCloseDate)
		if err != nil {
			return entity.DealFields{}, failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("value.ParseDate: %w", err),
				failure.WithCode(errcodes.InvalidCloseDate),
			)
		}
		fields.ExpectedCloseDate = &date
	}

	return fields, nil
}

func newRESTBoard(columns []pipeline.Column) rest.Board {
	return rest.Board{
		Columns: lox.Map(columns, func(col pipeline.Column) rest.Column {
			return rest.Column{
				Stage: col.Stage.String(),
				Count: col.Count,
				Total: col.Total,
				Deals: newRESTDeals(col.Deals),
			}
		}),
	}
}

func newRESTSummary(summary pipeline.Summary) rest.Summary {
	return rest.Summary{
		TotalDeals:     summary.TotalDeals,
		OpenValue:      summary.OpenValue,
		ClosedWonCount: summary.ClosedWonCount,
		ClosedWonValue: summary.ClosedWonValue,
		ConversionRate: summary.ConversionRate,
		Stages: lox.Map(summary.Stages, func(stat pipeline.StageStat) rest.StageStat {
			return rest.StageStat{
				Stage: stat.Stage.String(),
				Count: stat.Count,
				Value: stat.Value,
			}
		}),
	}
}

// newDomainStageChanges не отбрасывает неизвестные стадии: в пакете они
// становятся отдельными отказами, а не ошибкой всего запроса.
func newDomainStageChanges(changes []rest.StageChange) []entity.StageChange {
	return lox.Map(changes, func(change rest.StageChange) entity.StageChange {
		return entity.StageChange{
			DealID: change.DealID,
			Stage:  value.Stage(change.Stage),
		}
	})
}

func newRESTBatchResult(result entity.BatchResult) rest.BatchResult {
	return rest.BatchResult{
		Succeeded: newRESTDeals(result.Succeeded),
		Failed: lox.Map(result.Failed, func(f entity.StageFailure) rest.StageFailure {
			return rest.StageFailure{
				DealID:  f.Change.DealID,
				Stage:   f.Change.Stage.String(),
				Kind:    string(f.Kind),
				Message: f.Err.Error(),
			}
		}),
	}
}

func parseDealID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid deal id %q", raw),
			failure.WithCode(errcodes.InvalidDealID),
			failure.WithDescription("Deal id must be a positive integer"),
		)
	}

	return id, nil
}

func parseContactID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.ParseInt: %w", err),
			failure.WithCode(errcodes.InvalidContactID),
		)
	}

	return id, nil
}
