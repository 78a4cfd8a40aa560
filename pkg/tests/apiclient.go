package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"crm_pipeline/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient — JSON-клиент для тестов HTTP API. Ответ 2xx декодируется
// в dest, остальные в errDest; nil-приёмник пропускается.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(ctx context.Context, endpoint string, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodGet, endpoint, nil, dest, errDest)
}

// Post отправляет body как JSON. Строка уходит как есть, что позволяет
// проверять разбор сломанных тел.
func (a APIClient) Post(ctx context.Context, endpoint string, body, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodPost, endpoint, body, dest, errDest)
}

func (a APIClient) Put(ctx context.Context, endpoint string, body, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodPut, endpoint, body, dest, errDest)
}

func (a APIClient) Delete(ctx context.Context, endpoint string, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodDelete, endpoint, nil, dest, errDest)
}

func (a APIClient) Do(
	ctx context.Context,
	method string,
	endpoint string,
	body any,
	dest any,
	errDest any,
) (*http.Response, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	slog.Default().Debug("api client",
		slog.String(logx.FieldHTTPMethod, method),
		slog.String(logx.FieldURL, endpoint),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
	)

	if err = decodeBody(resp, dest, errDest); err != nil {
		return nil, err
	}

	return resp, nil
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return http.NoBody, nil
	case string:
		return bytes.NewBufferString(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}

		return bytes.NewReader(raw), nil
	}
}

func decodeBody(resp *http.Response, dest, errDest any) error {
	target, kind := errDest, "error"
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		target, kind = dest, "success"
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("json.Decode(%s destination): %w", kind, err)
	}

	return nil
}
