// internal/eval/report.go
package eval

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/screenlab/screeneval/internal/screening"
	"github.com/screenlab/screeneval/internal/util"
)

const reasonLineWidth = 160

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// printSkip writes the diagnostic for a case excluded from all counters.
func printSkip(out io.Writer, caseID string, err error) {
	fmt.Fprintln(out, color.YellowString("Skipping case %s: %v", caseID, err))
}

// printCase writes the human-readable comparison block for one case.
func printCase(out io.Writer, tc TestCase, result *screening.MatchResult, correct bool) {
	status := color.RedString("✗ INCORRECT")
	if correct {
		status = color.GreenString("✓ CORRECT")
	}

	fmt.Fprintf(out, "Case %s: %s\n", tc.ID, status)
	fmt.Fprintf(out, "Transaction: %s\n", tc.TransactionData)
	fmt.Fprintf(out, "Watchlist: %s (%s)\n", tc.WatchlistEntry, tc.WatchlistType)
	fmt.Fprintf(out, "Expected: %s\n", tc.Expected)
	fmt.Fprintf(out, "Predicted: %s (Confidence: %s)\n", result.Outcome, result.Confidence)
	fmt.Fprintf(out, "Reason: %s\n", formatReason(result.Reason))
	fmt.Fprintln(out, strings.Repeat("-", 80))
}

// printSummary writes the final aggregate block after the last case.
func printSummary(out io.Writer, summary *Summary, mismatchPath string) {
	lines := []string{
		fmt.Sprintf("Final Accuracy: %.2f%% (%d/%d correct)", summary.Accuracy(), summary.Correct, summary.Total),
	}
	if summary.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Skipped cases: %d", summary.Skipped))
	}
	lines = append(lines, fmt.Sprintf("Mismatched cases saved to: %s", mismatchPath))

	fmt.Fprintln(out)
	fmt.Fprintln(out, summaryStyle.Render(strings.Join(lines, "\n")))
}

// formatReason flattens the structured reason onto one console line.
func formatReason(reason *screening.Reason) string {
	if reason == nil {
		return "(none)"
	}
	parts := []string{}
	if reason.TypeValidation != "" {
		parts = append(parts, "TypeValidation="+reason.TypeValidation)
	}
	if reason.NormalizationSteps != "" {
		parts = append(parts, "Normalization="+util.CollapseWhitespace(reason.NormalizationSteps))
	}
	if reason.AppliedCriteria != "" {
		parts = append(parts, "Criteria="+util.CollapseWhitespace(reason.AppliedCriteria))
	}
	if reason.AnomaliesNoted != "" {
		parts = append(parts, "Anomalies="+util.CollapseWhitespace(reason.AnomaliesNoted))
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return util.TruncateRunes(strings.Join(parts, " | "), reasonLineWidth)
}
