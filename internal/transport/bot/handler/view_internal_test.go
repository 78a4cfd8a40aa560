package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/internal/domain/service/pipeline"
	"crm_pipeline/internal/domain/value"
)

func TestParseMoveArgs(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		text      string
		wantID    int64
		wantStage value.Stage
		wantReply string
	}{
		{text: "/move 12 Proposal", wantID: 12, wantStage: value.StageProposal},
		{text: "/move 3 closed won", wantID: 3, wantStage: value.StageClosedWon},
		{text: "/move 3   Closed   Lost", wantID: 3, wantStage: value.StageClosedLost},
		{text: "/move 12", wantReply: MoveUsage},
		{text: "/move abc Lead", wantReply: MoveInvalidID},
		{text: "/move -1 Lead", wantReply: MoveInvalidID},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(*testing.T) {
			id, stage, reply := parseMoveArgs(tc.text)
			rq.Equal(tc.wantReply, reply)
			rq.Equal(tc.wantID, id)
			rq.Equal(tc.wantStage, stage)
		})
	}

	_, _, reply := parseMoveArgs("/move 1 Won")
	rq.Contains(reply, "Unknown stage")
	rq.Contains(reply, "Closed Lost")
}

func TestFormatBoard(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{ID: 1, Title: "R&D <pilot>", Value: decimal.NewFromInt(1000), Stage: value.StageLead},
		{ID: 2, Title: "Support", Value: decimal.NewFromInt(2000), Stage: value.StageQualified},
		{ID: 3, Title: "Lost one", Value: decimal.NewFromInt(5), Stage: value.StageClosedLost},
	}

	text := formatBoard(pipeline.Columns(deals))

	rq.Contains(text, "<b>Lead</b> (1) · $1000.00")
	rq.Contains(text, "<code>1</code> R&amp;D &lt;pilot&gt;")
	rq.Contains(text, "<b>Qualified</b> (1) · $2000.00")
	rq.Contains(text, "<b>Closed Won</b> (0) · $0.00")
	rq.NotContains(text, "Lost one")
}

func TestFormatSummary(t *testing.T) {
	rq := require.New(t)

	text := formatSummary(pipeline.Summarize([]entity.Deal{
		{ID: 1, Value: decimal.NewFromInt(300), Stage: value.StageLead},
		{ID: 2, Value: decimal.NewFromInt(700), Stage: value.StageClosedWon},
	}))

	rq.Contains(text, "<b>Deals:</b> 2")
	rq.Contains(text, "<b>Pipeline value:</b> $300.00")
	rq.Contains(text, "<b>Won:</b> 1 · $700.00")
	rq.Contains(text, "<b>Conversion:</b> 50%")
}

func TestOutcomeText(t *testing.T) {
	rq := require.New(t)

	rq.Equal("⚠️ Deal #4 is already in this stage", outcomeText(pipeline.OutcomeUnchanged, 4, value.StageLead))
	rq.Equal("⏳ Deal #4 is already being moved", outcomeText(pipeline.OutcomeInFlight, 4, value.StageLead))
	rq.Equal("🚚 Moving deal #4 to Proposal...", outcomeText(pipeline.OutcomeCommitting, 4, value.StageProposal))
}
