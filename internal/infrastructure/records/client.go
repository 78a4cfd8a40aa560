package records

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/httpx"
	"crm_pipeline/pkg/logx"
)

const maxErrorBody = 4 << 10

type Options struct {
	BaseURL        string
	Table          string
	APIKey         string
	Timeout        time.Duration
	LogFieldMaxLen int
}

// Client — репозиторий сделок поверх табличного API записей.
type Client struct {
	baseURL    string
	table      string
	httpClient *http.Client
}

// NewClient собирает клиент с логированием запросов и bearer-авторизацией.
func NewClient(opts Options) *Client {
	transport := httpx.NewAuthBearerRoundTripper(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
		),
		staticToken{token: opts.APIKey},
	)

	return NewClientWithHTTP(opts.BaseURL, opts.Table, &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	})
}

func NewClientWithHTTP(baseURL, table string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		table:      table,
		httpClient: httpClient,
	}
}

func (c *Client) List(ctx context.Context) ([]entity.Deal, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, c.recordsPath(), nil, &env); err != nil {
		return nil, err
	}

	if !env.Success {
		return nil, domain.NewError(errcodes.TransportError, "list failed: "+env.Message)
	}

	var recs []record
	if !isEmptyRaw(env.Data) {
		if err := json.Unmarshal(env.Data, &recs); err != nil {
			return nil, domain.WrapError(err, errcodes.TransportError, "undecodable record list")
		}
	}

	// Запись, которую нельзя привести к сделке, пропускается: одна битая
	// строка таблицы не должна блокировать загрузку доски.
	deals := make([]entity.Deal, 0, len(recs))
	for i := range recs {
		deal, err := recs[i].toDomain()
		if err != nil {
			logger(ctx).Warn("malformed record skipped",
				slog.Int64(logx.FieldDealID, recs[i].ID),
				logx.Error(err),
			)
			continue
		}
		deals = append(deals, deal)
	}

	return deals, nil
}

// ListByContact фильтрует полный список: API не умеет отбирать по ссылке.
func (c *Client) ListByContact(ctx context.Context, contactID int64) ([]entity.Deal, error) {
	deals, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Filter(deals, func(d entity.Deal, _ int) bool {
		return d.ContactID == contactID
	}), nil
}

func (c *Client) GetByID(ctx context.Context, id int64) (*entity.Deal, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, c.recordsPath()+"/"+strconv.FormatInt(id, 10), nil, &env); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrDealNotFound(id)
		}
		return nil, err
	}

	if !env.Success || isEmptyRaw(env.Data) {
		return nil, domain.ErrDealNotFound(id)
	}

	var rec record
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return nil, domain.WrapError(err, errcodes.TransportError, "undecodable record")
	}

	deal, err := rec.toDomain()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.TransportError, "malformed record")
	}

	return &deal, nil
}

func (c *Client) Create(ctx context.Context, fields entity.DealFields) (*entity.Deal, error) {
	results, err := c.write(ctx, http.MethodPost, writeRequest{
		Records: []recordFields{fromFields(fields.WithDefaults())},
	})
	if err != nil {
		return nil, err
	}

	deal, err := results[0].deal()
	if err != nil {
		if domain.IsRejected(err) {
			// Отказ при создании — это ошибка входных данных.
			return nil, domain.WrapError(err, errcodes.ValidationError, "record rejected")
		}
		return nil, err
	}

	return &deal, nil
}

// Update отправляет только переданные поля, остальные сервис сохраняет сам.
func (c *Client) Update(ctx context.Context, id int64, fields entity.DealFields) (*entity.Deal, error) {
	rec := fromFields(fields)
	rec.ID = &id

	results, err := c.write(ctx, http.MethodPatch, writeRequest{Records: []recordFields{rec}})
	if err != nil {
		return nil, err
	}

	deal, err := results[0].deal()
	if err != nil {
		return nil, err
	}

	return &deal, nil
}

func (c *Client) UpdateStage(ctx context.Context, id int64, stage value.Stage) (*entity.Deal, error) {
	return c.Update(ctx, id, entity.DealFields{Stage: &stage})
}

// UpdateStages отправляет все изменения одним PATCH. Результаты разбираются
// по позиции: i-й результат относится к i-му изменению.
func (c *Client) UpdateStages(ctx context.Context, changes []entity.StageChange) (entity.BatchResult, error) {
	recs := lo.Map(changes, func(change entity.StageChange, _ int) recordFields {
		return recordFields{
			ID:     lo.ToPtr(change.DealID),
			StageC: lo.ToPtr(change.Stage.String()),
		}
	})

	results, err := c.write(ctx, http.MethodPatch, writeRequest{Records: recs})
	if err != nil {
		return entity.BatchResult{}, err
	}

	var batch entity.BatchResult

	for i, change := range changes {
		deal, err := results[i].deal()
		if err != nil {
			batch.Failed = append(batch.Failed, entity.StageFailure{
				Change: change,
				Kind:   domain.KindOf(err),
				Err:    err,
			})
			continue
		}

		batch.Succeeded = append(batch.Succeeded, deal)
	}

	return batch, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	var env envelope
	err := c.do(ctx, http.MethodDelete, c.recordsPath(), deleteRequest{RecordIDs: []int64{id}}, &env)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ErrDealNotFound(id)
		}
		return err
	}

	if len(env.Results) != 1 {
		if !env.Success {
			return domain.NewError(errcodes.RecordRejected, env.Message)
		}
		return domain.NewError(errcodes.TransportError, "unexpected number of results")
	}

	if !env.Results[0].Success {
		if env.Results[0].missing() {
			return domain.ErrDealNotFound(id)
		}
		return env.Results[0].failure()
	}

	return nil
}

// write выполняет POST или PATCH и проверяет, что на каждую запись пришёл результат.
func (c *Client) write(ctx context.Context, method string, body writeRequest) ([]result, error) {
	var env envelope
	if err := c.do(ctx, method, c.recordsPath(), body, &env); err != nil {
		return nil, err
	}

	if len(env.Results) == 0 && !env.Success {
		return nil, domain.NewError(errcodes.RecordRejected, env.Message)
	}

	if len(env.Results) != len(body.Records) {
		return nil, domain.NewError(
			errcodes.TransportError,
			fmt.Sprintf("expected %d results, got %d", len(body.Records), len(env.Results)),
		)
	}

	return env.Results, nil
}

func (r result) deal() (entity.Deal, error) {
	if !r.Success {
		return entity.Deal{}, r.failure()
	}

	if r.Data == nil {
		return entity.Deal{}, domain.NewError(errcodes.TransportError, "empty record in result")
	}

	deal, err := r.Data.toDomain()
	if err != nil {
		return entity.Deal{}, domain.WrapError(err, errcodes.TransportError, "malformed record")
	}

	return deal, nil
}

func (c *Client) recordsPath() string {
	return c.baseURL + "/tables/" + url.PathEscape(c.table) + "/records"
}

// do отправляет запрос и раскладывает сбои по таксономии:
// сеть, 5xx и нечитаемый ответ — TransportError, 404 — NotFound,
// прочие 4xx — RecordRejected.
func (c *Client) do(ctx context.Context, method, endpoint string, body, dest any) error {
	payload := io.Reader(http.NoBody)

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to encode request")
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger(ctx).Error("records request failed", slog.String(logx.FieldURL, endpoint), logx.Error(err))

		if errors.Is(err, context.DeadlineExceeded) {
			return domain.WrapError(err, errcodes.TimeoutExceeded, "records service timeout")
		}

		return domain.WrapError(err, errcodes.TransportError, "records service unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewError(errcodes.NotFound, "record not found")
	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.NewError(errcodes.TransportError, fmt.Sprintf("records service status %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.NewError(errcodes.RecordRejected, fmt.Sprintf("status %d: %s", resp.StatusCode, msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.WrapError(err, errcodes.TransportError, "undecodable response")
	}

	return nil
}

// failure переводит отказ по записи в таксономию: отсутствующая запись —
// DealNotFound, прочее — RecordRejected.
func (r result) failure() error {
	if r.missing() {
		return domain.NewError(errcodes.DealNotFound, r.reason())
	}

	return domain.NewError(errcodes.RecordRejected, r.reason())
}
