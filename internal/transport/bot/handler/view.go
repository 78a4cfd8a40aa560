package handler

import (
	"fmt"
	"html"
	"strings"

	"crm_pipeline/internal/domain/service/pipeline"
)

const (
	StartMessage = "📋 <b>Deal pipeline</b>\n\n" +
		"/board — deals by stage\n" +
		"/summary — pipeline totals\n" +
		"/move <code>ID</code> <code>Stage</code> — move a deal\n" +
		"/refresh — reload deals from storage\n" +
		"/status — service status"

	MoveUsage        = "❌ Usage: /move <code>ID</code> <code>Stage</code>"
	MoveInvalidID    = "❌ Invalid deal ID"
	MoveUnchanged    = "⚠️ Deal #%d is already in this stage"
	MoveInFlight     = "⏳ Deal #%d is already being moved"
	MoveCommitting   = "🚚 Moving deal #%d to %s..."
	RefreshSucceeded = "🔄 Board reloaded"
	RefreshFailed    = "❌ Failed to reload deals"

	maxDealsPerColumn = 5
)

func formatBoard(columns []pipeline.Column) string {
	var sb strings.Builder

	sb.WriteString("📊 <b>Pipeline</b>\n")

	for _, col := range columns {
		fmt.Fprintf(&sb, "\n<b>%s</b> (%d) · $%s\n", html.EscapeString(col.Stage.String()), col.Count, col.Total.StringFixed(2))

		for i, deal := range col.Deals {
			if i == maxDealsPerColumn {
				fmt.Fprintf(&sb, "  … and %d more\n", len(col.Deals)-maxDealsPerColumn)
				break
			}

			fmt.Fprintf(&sb, "  <code>%d</code> %s · $%s\n", deal.ID, html.EscapeString(deal.Title), deal.Value.StringFixed(2))
		}
	}

	return sb.String()
}

func formatSummary(summary pipeline.Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📈 <b>Summary</b>\n\n"+
		"<b>Deals:</b> %d\n"+
		"<b>Pipeline value:</b> $%s\n"+
		"<b>Won:</b> %d · $%s\n"+
		"<b>Conversion:</b> %d%%\n",
		summary.TotalDeals,
		summary.OpenValue.StringFixed(2),
		summary.ClosedWonCount,
		summary.ClosedWonValue.StringFixed(2),
		summary.ConversionRate,
	)

	for _, stat := range summary.Stages {
		fmt.Fprintf(&sb, "\n%s: %d · $%s", html.EscapeString(stat.Stage.String()), stat.Count, stat.Value.StringFixed(2))
	}

	return sb.String()
}
