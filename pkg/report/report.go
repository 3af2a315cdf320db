package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/vantagehq/vantage/pkg/anomaly"
	"github.com/vantagehq/vantage/pkg/model"
)

// Input carries everything a monthly report needs. The endpoint layer
// assembles it from the stores so this package stays free of database
// concerns.
type Input struct {
	Project    model.Project
	Period     string // YYYY-MM
	SpendCents int64  // total spend to date
	Changes    []model.BudgetChange
	Anomalies  []anomaly.Anomaly
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Build assembles the markdown body and its HTML rendering.
func Build(in Input) (bodyMD string, bodyHTML string, err error) {
	bodyMD = buildMarkdown(in)

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(bodyMD), &buf); err != nil {
		return "", "", fmt.Errorf("failed to render report: %w", err)
	}
	return bodyMD, buf.String(), nil
}

func buildMarkdown(in Input) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s — %s\n\n", in.Project.Name, in.Period)
	fmt.Fprintf(&sb, "**Status:** %s\n\n", in.Project.Status)

	remaining := in.Project.BudgetCents - in.SpendCents
	sb.WriteString("## Budget\n\n")
	sb.WriteString("| | Amount |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Budget | %s |\n", formatCents(in.Project.BudgetCents))
	fmt.Fprintf(&sb, "| Spend to date | %s |\n", formatCents(in.SpendCents))
	fmt.Fprintf(&sb, "| Remaining | %s |\n\n", formatCents(remaining))
	if remaining < 0 {
		sb.WriteString("> **Over budget.**\n\n")
	}

	fmt.Fprintf(&sb, "## Changes in %s\n\n", in.Period)
	if len(in.Changes) == 0 {
		sb.WriteString("No budget changes were recorded this month.\n\n")
	} else {
		sb.WriteString("| Date | Category | Amount | Memo |\n|---|---|---|---|\n")
		for _, c := range in.Changes {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
				c.EntryDate.Format("2006-01-02"), c.Category, formatCents(c.AmountCents), c.Memo)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Spend anomalies\n\n")
	if len(in.Anomalies) == 0 {
		sb.WriteString("None detected.\n")
	} else {
		for _, a := range in.Anomalies {
			fmt.Fprintf(&sb, "- %s: %s spend of %s (z=%.2f)\n",
				a.Month, a.Direction, formatCents(a.AmountCents), a.ZScore)
		}
	}

	return sb.String()
}

// formatCents renders cents as a currency-agnostic decimal string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
