package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/pkg/errcodes"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// KindOf относит ошибку к одному из классов таксономии.
// Ошибки без доменного кода считаются внутренними.
func KindOf(err error) entity.ErrorKind {
	code, ok := GetCode(err)
	if !ok {
		return entity.ErrorKindInternal
	}

	switch code {
	case errcodes.TransportError, errcodes.TimeoutExceeded:
		return entity.ErrorKindTransport
	case errcodes.RecordRejected:
		return entity.ErrorKindRejected
	case errcodes.NotFound, errcodes.DealNotFound:
		return entity.ErrorKindNotFound
	case errcodes.ValidationError,
		errcodes.InvalidDealID,
		errcodes.InvalidContactID,
		errcodes.InvalidStage,
		errcodes.InvalidDealTitle,
		errcodes.InvalidDealValue,
		errcodes.InvalidProbability,
		errcodes.InvalidCloseDate,
		errcodes.EmptyStageBatch:
		return entity.ErrorKindValidation
	default:
		return entity.ErrorKindInternal
	}
}

func IsNotFound(err error) bool {
	return KindOf(err) == entity.ErrorKindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == entity.ErrorKindValidation
}

func IsTransport(err error) bool {
	return KindOf(err) == entity.ErrorKindTransport
}

func IsRejected(err error) bool {
	return KindOf(err) == entity.ErrorKindRejected
}

// ErrDealNotFound — сделки с таким id нет ни в хранилище, ни в текущем представлении.
func ErrDealNotFound(id int64) *AppError {
	return NewError(errcodes.DealNotFound, fmt.Sprintf("deal %d not found", id))
}
