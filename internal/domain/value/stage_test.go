package value_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"crm_pipeline/internal/domain/value"
	"crm_pipeline/pkg/errcodes"
)

func TestStages(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]value.Stage{
		value.StageLead,
		value.StageQualified,
		value.StageProposal,
		value.StageNegotiation,
		value.StageClosedWon,
	}, value.Stages())

	rq.Len(value.AllStages(), 6)
	rq.False(value.StageClosedLost.IsColumn())
	rq.True(value.StageClosedLost.IsValid())
}

func TestStageIsActive(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		stage  value.Stage
		active bool
	}{
		{stage: value.StageLead, active: true},
		{stage: value.StageQualified, active: true},
		{stage: value.StageProposal, active: true},
		{stage: value.StageNegotiation, active: true},
		{stage: value.StageClosedWon, active: false},
		{stage: value.StageClosedLost, active: false},
		{stage: value.Stage("Archived"), active: false},
	}

	for _, tc := range testCases {
		t.Run(tc.stage.String(), func(*testing.T) {
			rq.Equal(tc.active, tc.stage.IsActive())
		})
	}
}

func TestParseStage(t *testing.T) {
	rq := require.New(t)

	stage, err := value.ParseStage("Closed Won")
	rq.NoError(err)
	rq.Equal(value.StageClosedWon, stage)

	for _, raw := range []string{"closed won", "Won", ""} {
		_, err = value.ParseStage(raw)
		rq.True(failure.IsInvalidArgumentError(err), raw)
		rq.Equal(errcodes.InvalidStage, failure.Code(err), raw)
	}
}

func TestNormalizeStage(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		raw   string
		stage value.Stage
		ok    bool
	}{
		{raw: "Proposal", stage: value.StageProposal, ok: true},
		{raw: "  closed won ", stage: value.StageClosedWon, ok: true},
		{raw: "CLOSED LOST", stage: value.StageClosedLost, ok: true},
		{raw: "Won", ok: false},
		{raw: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(*testing.T) {
			stage, ok := value.NormalizeStage(tc.raw)
			rq.Equal(tc.ok, ok)
			rq.Equal(tc.stage, stage)
		})
	}
}

func TestDate(t *testing.T) {
	rq := require.New(t)

	d, err := value.ParseDate("2024-03-15")
	rq.NoError(err)
	rq.Equal("2024-03-15", d.String())

	d, err = value.ParseDate("2024-03-15T18:30:00Z")
	rq.NoError(err)
	rq.Equal(value.NewDate(2024, 3, 15), d)

	b, err := d.MarshalJSON()
	rq.NoError(err)
	rq.Equal(`"2024-03-15"`, string(b))

	var parsed value.Date
	rq.NoError(parsed.UnmarshalJSON([]byte("null")))
	rq.True(parsed.IsZero())

	_, err = value.ParseDate("15.03.2024")
	rq.Error(err)
}
