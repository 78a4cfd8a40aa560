package entity

// ErrorKind — класс ошибки, понятный вызывающему коду.
type ErrorKind string

const (
	ErrorKindTransport  ErrorKind = "transport"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindRejected   ErrorKind = "rejected"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindInternal   ErrorKind = "internal"
)

// StageFailure — неуспешный элемент пакетной операции.
type StageFailure struct {
	Change StageChange
	Kind   ErrorKind
	Err    error
}

// BatchResult — итог пакетной операции. Успешные и неуспешные записи
// независимы друг от друга: частичный успех не откатывается.
type BatchResult struct {
	Succeeded []Deal
	Failed    []StageFailure
}

func (r BatchResult) SuccessCount() int {
	return len(r.Succeeded)
}

func (r BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}
