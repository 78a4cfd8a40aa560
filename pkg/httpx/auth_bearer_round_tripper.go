package httpx

import (
	"context"
	"fmt"
	"net/http"
)

//go:generate moq -rm -out authenticator_mock.gen.go . authenticator:AuthenticatorMock
type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

// AuthBearerRoundTripper подставляет Bearer-токен и один раз
// переаутентифицируется, если сервер ответил 401.
type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(ctx); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	resp, err := rt.next.RoundTrip(rt.authorized(req))
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	resp.Body.Close()

	if err = rt.authenticator.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
	}

	retry := rt.authorized(req)

	// Тело первого запроса уже прочитано
	if req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, fmt.Errorf("req.GetBody: %w", err)
		}
	}

	return rt.next.RoundTrip(retry) //nolint:wrapcheck
}

// authorized возвращает копию запроса: RoundTripper не должен менять исходный.
func (rt AuthBearerRoundTripper) authorized(req *http.Request) *http.Request {
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+rt.authenticator.BearerToken())

	return out
}
