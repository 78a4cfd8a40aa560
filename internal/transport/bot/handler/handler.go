package handler

import (
	"context"

	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
)

type Board interface {
	Columns() []pipeline.Column
	Summary() pipeline.Summary
	Move(ctx context.Context, dealID int64, target value.Stage) (pipeline.DropResult, error)
	Refresh(ctx context.Context) error
}

type Refresher interface {
	IsRunning() bool
}

type Handler struct {
	board     Board
	refresher Refresher
}

func New(board Board, refresher Refresher) *Handler {
	return &Handler{
		board:     board,
		refresher: refresher,
	}
}
