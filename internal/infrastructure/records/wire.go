package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// record — запись таблицы в том виде, в каком её отдаёт сервис.
// Пользовательские поля имеют суффикс _c, у старых записей встречаются
// имена без суффикса.
type record struct {
	ID                 int64               `json:"Id"`
	Name               *string             `json:"Name"`
	TitleC             *string             `json:"title_c"`
	Title              *string             `json:"title"`
	ValueC             *decimal.Decimal    `json:"value_c"`
	Value              *decimal.Decimal    `json:"value"`
	StageC             *string             `json:"stage_c"`
	Stage              *string             `json:"stage"`
	ContactIDC         jsoniter.RawMessage `json:"contact_id_c"`
	ContactID          jsoniter.RawMessage `json:"contact_id"`
	ProbabilityC       *float64            `json:"probability_c"`
	Probability        *float64            `json:"probability"`
	ExpectedCloseDateC *string             `json:"expected_close_date_c"`
	ExpectedCloseDate  *string             `json:"expected_close_date"`
	DescriptionC       *string             `json:"description_c"`
	Description        *string             `json:"description"`
	CreatedOn          *time.Time          `json:"CreatedOn"`
	ModifiedOn         *time.Time          `json:"ModifiedOn"`
}

// lookup — значение поля-ссылки.
type lookup struct {
	ID   int64  `json:"Id"`
	Name string `json:"Name"`
}

// toDomain — единственное место нормализации записи в сделку.
func (r *record) toDomain() (entity.Deal, error) {
	raw := r.ContactIDC
	if isEmptyRaw(raw) {
		raw = r.ContactID
	}

	contactID, err := parseContactID(raw)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("record %d: contact: %w", r.ID, err)
	}

	closeDate, err := value.ParseDate(lo.FromPtr(lo.CoalesceOrEmpty(r.ExpectedCloseDateC, r.ExpectedCloseDate)))
	if err != nil {
		return entity.Deal{}, fmt.Errorf("record %d: expected close date: %w", r.ID, err)
	}

	stage := value.StageLead
	if raw := strings.TrimSpace(lo.FromPtr(lo.CoalesceOrEmpty(r.StageC, r.Stage))); raw != "" {
		var ok bool
		if stage, ok = value.NormalizeStage(raw); !ok {
			return entity.Deal{}, fmt.Errorf("record %d: unknown stage %q", r.ID, raw)
		}
	}

	probability := lo.FromPtr(lo.CoalesceOrEmpty(r.ProbabilityC, r.Probability))

	return entity.Deal{
		ID:                r.ID,
		Title:             lo.FromPtr(lo.CoalesceOrEmpty(r.TitleC, r.Title, r.Name)),
		Value:             lo.FromPtr(lo.CoalesceOrEmpty(r.ValueC, r.Value)),
		Stage:             stage,
		ContactID:         contactID,
		Probability:       int(math.Round(probability)),
		ExpectedCloseDate: closeDate,
		Description:       lo.FromPtr(lo.CoalesceOrEmpty(r.DescriptionC, r.Description)),
		CreatedAt:         lo.FromPtr(r.CreatedOn),
		UpdatedAt:         lo.FromPtr(r.ModifiedOn),
	}, nil
}

func isEmptyRaw(raw jsoniter.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// parseContactID принимает число, строку с числом или объект-ссылку.
func parseContactID(raw jsoniter.RawMessage) (int64, error) {
	if isEmptyRaw(raw) {
		return 0, nil
	}

	trimmed := strings.TrimSpace(string(raw))

	switch trimmed[0] {
	case '{':
		var ref lookup
		if err := json.Unmarshal(raw, &ref); err != nil {
			return 0, fmt.Errorf("json.Unmarshal: %w", err)
		}
		return ref.ID, nil
	case '"':
		unquoted := strings.Trim(trimmed, `"`)
		if unquoted == "" {
			return 0, nil
		}
		id, err := strconv.ParseInt(unquoted, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("strconv.ParseInt: %w", err)
		}
		return id, nil
	default:
		var id float64
		if err := json.Unmarshal(raw, &id); err != nil {
			return 0, fmt.Errorf("json.Unmarshal: %w", err)
		}
		return int64(id), nil
	}
}

// recordFields — тело записи для POST и PATCH. Пишутся только поля с суффиксом _c.
type recordFields struct {
	ID                 *int64   `json:"Id,omitempty"`
	Name               *string  `json:"Name,omitempty"`
	TitleC             *string  `json:"title_c,omitempty"`
	ValueC             *number  `json:"value_c,omitempty"`
	StageC             *string  `json:"stage_c,omitempty"`
	ContactIDC         *int64   `json:"contact_id_c,omitempty"`
	ProbabilityC       *int     `json:"probability_c,omitempty"`
	ExpectedCloseDateC *string  `json:"expected_close_date_c,omitempty"`
	DescriptionC       *string  `json:"description_c,omitempty"`
}

func fromFields(fields entity.DealFields) recordFields {
	rec := recordFields{
		Name:         fields.Title,
		TitleC:       fields.Title,
		ContactIDC:   fields.ContactID,
		ProbabilityC: fields.Probability,
		DescriptionC: fields.Description,
	}

	if fields.Value != nil {
		rec.ValueC = &number{*fields.Value}
	}

	if fields.Stage != nil {
		rec.StageC = lo.ToPtr(fields.Stage.String())
	}

	if fields.ExpectedCloseDate != nil {
		rec.ExpectedCloseDateC = lo.ToPtr(fields.ExpectedCloseDate.String())
	}

	return rec
}

// number пишет decimal JSON-числом без потери точности.
type number struct {
	decimal.Decimal
}

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

type writeRequest struct {
	Records []recordFields `json:"records"`
}

type deleteRequest struct {
	RecordIDs []int64 `json:"RecordIds"`
}

type fieldError struct {
	FieldLabel string `json:"fieldLabel"`
	Message    string `json:"message"`
}

type result struct {
	Success bool         `json:"success"`
	Data    *record      `json:"data"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors"`
}

// reason собирает текст отказа по записи.
func (r result) reason() string {
	parts := lo.Map(r.Errors, func(e fieldError, _ int) string {
		return e.FieldLabel + ": " + e.Message
	})

	if r.Message != "" {
		parts = append([]string{r.Message}, parts...)
	}

	if len(parts) == 0 {
		return "record rejected"
	}

	return strings.Join(parts, "; ")
}

// missing сообщает, что сервис отказал из-за отсутствия записи.
func (r result) missing() bool {
	text := strings.ToLower(r.reason())

	return lo.SomeBy(missingMarkers, func(marker string) bool {
		return strings.Contains(text, marker)
	})
}

//nolint:gochecknoglobals
var missingMarkers = []string{"not found", "does not exist", "no record"}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    jsoniter.RawMessage `json:"data"`
	Results []result            `json:"results"`
}
