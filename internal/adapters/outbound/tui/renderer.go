package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/remedykit/remedy/internal/adapters/outbound/gitinfo"
	"github.com/remedykit/remedy/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

var severityStyles = map[string]lipgloss.Style{
	domain.SeverityCritical: failStyle.Bold(true),
	domain.SeverityHigh:     failStyle,
	domain.SeverityMedium:   warnStyle,
	domain.SeverityLow:      dimStyle,
}

func severityTag(severity string) string {
	style, ok := severityStyles[severity]
	if !ok {
		style = dimStyle
	}
	return style.Render(strings.ToUpper(severity))
}

// RenderSession renders a full remediation session report.
func RenderSession(result *domain.SessionResult) string {
	var b strings.Builder

	session := result.Session
	title := headerStyle.Render("remedy")
	subtitle := dimStyle.Render(session.FilePath)
	counts := fmt.Sprintf("%d / %d fixes applied", session.SuccessfulFixes, session.TotalFixes)
	countStyle := passStyle
	if session.FailedFixes > 0 {
		countStyle = warnStyle
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + countStyle.Bold(true).Render(counts)))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(session.Summary))
	b.WriteString("\n")
	if session.CommitHash != "" {
		b.WriteString(faintStyle.Render("commit " + gitinfo.ShortHash(session.CommitHash)))
		b.WriteString("\n")
	}

	if v := result.Verification; v != nil {
		b.WriteString(separatorLine + "\n")
		b.WriteString(titleStyle.Render("Verification") + "\n")
		b.WriteString(fmt.Sprintf("  issues before %d, after %d\n", v.BeforeCount, v.AfterCount))
		b.WriteString(fmt.Sprintf("  resolved %s, introduced %s\n",
			passStyle.Render(fmt.Sprintf("%d", v.IssuesResolved)),
			renderIntroduced(v.NewIssuesIntroduced)))
		if v.RegressionDetected {
			b.WriteString("  " + failStyle.Bold(true).Render("REGRESSION DETECTED") + "\n")
		}
	}

	if len(result.AppliedFixes) > 0 {
		b.WriteString(separatorLine + "\n")
		b.WriteString(titleStyle.Render("Applied fixes") + "\n")
		for _, fix := range result.AppliedFixes {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				passStyle.Render("✓"),
				fix.StrategyName,
				faintStyle.Render(fmt.Sprintf("(%s, %.0f%%)", fix.StrategyID, fix.Confidence*100))))
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %s\n", fix.Explanation)))
		}
	}

	b.WriteString(renderReviewBuckets(result.Plan))

	if len(result.Recommendations) > 0 {
		b.WriteString(separatorLine + "\n")
		b.WriteString(titleStyle.Render("Recommendations") + "\n")
		for _, rec := range result.Recommendations {
			b.WriteString(warnStyle.Render("  ▸ ") + rec + "\n")
		}
	}

	return b.String()
}

func renderIntroduced(n int) string {
	s := fmt.Sprintf("%d", n)
	if n > 0 {
		return failStyle.Render(s)
	}
	return passStyle.Render(s)
}

// renderReviewBuckets lists the issues that were not auto-applied.
func renderReviewBuckets(plan domain.FixPlan) string {
	if len(plan.Risky) == 0 && len(plan.Manual) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(separatorLine + "\n")
	b.WriteString(titleStyle.Render("For review") + "\n")
	for _, issue := range plan.Risky {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", warnStyle.Render("risky"), issueLocation(issue), issue.Description))
	}
	for _, issue := range plan.Manual {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", dimStyle.Render("manual"), issueLocation(issue), issue.Description))
	}
	return b.String()
}

// RenderScan renders a detection report without fixing.
func RenderScan(filePath string, detection *domain.Detection) string {
	var b strings.Builder

	title := headerStyle.Render("remedy")
	subtitle := dimStyle.Render(filePath)
	scoreLine := fmt.Sprintf("quality %d / 100", detection.Metrics.QualityScore)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + titleStyle.Render(scoreLine)))
	b.WriteString("\n\n")

	if len(detection.Issues) == 0 {
		b.WriteString(passStyle.Render("no issues found") + "\n")
		return b.String()
	}

	for _, issue := range detection.Issues {
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			severityTag(issue.Severity),
			faintStyle.Render(issue.Category),
			issueLocation(issue),
			issue.Description))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d issue(s), complexity %d, %d lines\n",
		len(detection.Issues), detection.Metrics.Complexity, detection.Metrics.LineCount)))

	return b.String()
}

func issueLocation(issue domain.Issue) string {
	if issue.Line > 0 {
		return dimStyle.Render(fmt.Sprintf("L%d", issue.Line))
	}
	return dimStyle.Render("-")
}
