package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Сбой связи с хранилищем записей (сеть, 5xx, битый ответ)
	TransportError failure.ErrorCode = "TransportError"
	// Хранилище отклонило конкретную запись
	RecordRejected failure.ErrorCode = "RecordRejected"

	DealNotFound       failure.ErrorCode = "DealNotFound"
	InvalidDealID      failure.ErrorCode = "InvalidDealID"
	InvalidContactID   failure.ErrorCode = "InvalidContactID"
	InvalidStage       failure.ErrorCode = "InvalidStage"
	InvalidDealTitle   failure.ErrorCode = "InvalidDealTitle"
	InvalidDealValue   failure.ErrorCode = "InvalidDealValue"
	InvalidProbability failure.ErrorCode = "InvalidProbability"
	InvalidCloseDate   failure.ErrorCode = "InvalidCloseDate"
	EmptyStageBatch    failure.ErrorCode = "EmptyStageBatch"
	RefreshConflict    failure.ErrorCode = "RefreshConflict"
)
