package reply

import "git.appkode.ru/pub/go/failure"

// StatusError — ошибка с заранее выбранным HTTP-статусом.
// Error отдаёт её как есть, не разбирая по классам failure.
type StatusError struct {
	Status  int
	Code    failure.ErrorCode
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
