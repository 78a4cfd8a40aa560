package records

import (
	"context"
	"errors"
)

var errTokenRejected = errors.New("api key rejected by records service")

// staticToken — ключ API без обновления. Повторная аутентификация
// после 401 невозможна, поэтому Authenticate всегда завершается ошибкой.
type staticToken struct {
	token string
}

func (s staticToken) Authenticate(context.Context) error {
	return errTokenRejected
}

func (s staticToken) BearerToken() string {
	return s.token
}
