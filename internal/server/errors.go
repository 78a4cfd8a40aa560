package server

import (
	"errors"
	"net/http"

	"crm_pipeline/internal/domain"
	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/pkg/errcodes"
	"crm_pipeline/pkg/httpx/reply"
)

// httpError назначает доменным ошибкам HTTP-статус. Остальные ошибки
// (failure из req.Read и разбора параметров) reply.Error разбирает сам.
func httpError(err error) error {
	if errors.Is(err, pipeline.ErrRefreshSuperseded) {
		return &reply.StatusError{
			Status:  http.StatusConflict,
			Code:    errcodes.RefreshConflict,
			Message: "board changed during refresh, retry later",
			Err:     err,
		}
	}

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	status := http.StatusInternalServerError

	switch domain.KindOf(err) {
	case entity.ErrorKindValidation:
		status = http.StatusBadRequest
	case entity.ErrorKindNotFound:
		status = http.StatusNotFound
	case entity.ErrorKindRejected:
		status = http.StatusUnprocessableEntity
	case entity.ErrorKindTransport:
		status = http.StatusBadGateway
		if appErr.Code == errcodes.TimeoutExceeded {
			status = http.StatusGatewayTimeout
		}
	case entity.ErrorKindInternal:
	}

	return &reply.StatusError{
		Status:  status,
		Code:    appErr.Code,
		Message: appErr.Message,
		Err:     err,
	}
}
