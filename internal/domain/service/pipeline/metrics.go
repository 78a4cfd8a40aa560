package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"crm_pipeline/internal/domain/entity"
)

const outcomeSuccess = "success"

//nolint:gochecknoglobals
var stageCommits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "pipeline",
		Name:      "stage_commits_total",
		Help:      "Deal stage commits by outcome.",
	},
	[]string{"outcome", "mode"},
)

func observeCommit(mode string, kind entity.ErrorKind) {
	outcome := outcomeSuccess
	if kind != "" {
		outcome = string(kind)
	}

	stageCommits.WithLabelValues(outcome, mode).Inc()
}
