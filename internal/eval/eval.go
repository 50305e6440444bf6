// internal/eval/eval.go
package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/screenlab/screeneval/internal/appconfig"
	"github.com/screenlab/screeneval/internal/logging"
	"github.com/screenlab/screeneval/internal/screening"
)

// Classifier is the adapter the driver calls once per case. The concrete
// implementation lives in the screening package; tests substitute fakes.
type Classifier interface {
	Classify(ctx context.Context, transactionData, watchlistEntry, watchlistType string) (*screening.MatchResult, []byte, error)
}

// Run executes the evaluation over every case in the configured table, in
// file order, writing mismatches to the mismatch log as they occur and the
// per-case report to out. Per-case failures skip the case and continue;
// only setup failures abort the run.
func Run(ctx context.Context, cfg *appconfig.Config, classifier Classifier, out io.Writer) (*Summary, error) {
	cases, err := LoadCases(cfg.CasesFilePath())
	if err != nil {
		return nil, err
	}

	mismatchPath := cfg.MismatchLogFilePath()
	if dir := filepath.Dir(mismatchPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create mismatch log directory: %w", err)
		}
	}
	// Overwritten each run; one JSON record per line, flushed as written.
	mismatchFile, err := os.Create(mismatchPath)
	if err != nil {
		return nil, fmt.Errorf("could not create mismatch log: %w", err)
	}
	defer mismatchFile.Close()
	encoder := json.NewEncoder(mismatchFile)

	summary := &Summary{}
	for _, tc := range cases {
		if !tc.LabelRecognized {
			logging.LogEvent("Case %s: expected label %q is neither TRUE nor FALSE, treating as False Match", tc.ID, tc.RawLabel)
		}

		result, raw, err := classifier.Classify(ctx, tc.TransactionData, tc.WatchlistEntry, tc.WatchlistType)
		if err != nil {
			printSkip(out, tc.ID, err)
			summary.Skipped++
			continue
		}

		if err := screening.ValidateResponse(raw); err != nil {
			printSkip(out, tc.ID, err)
			summary.Skipped++
			continue
		}

		outcome, err := screening.ParseMatchOutcome(result.Outcome)
		if err != nil {
			printSkip(out, tc.ID, err)
			summary.Skipped++
			continue
		}

		predicted := outcome.IsMatch()
		expected := tc.Expected.IsMatch()

		summary.Total++
		if predicted == expected {
			summary.Correct++
		} else {
			summary.Mismatches++
			record := MismatchRecord{
				CaseID:            tc.ID,
				TransactionData:   tc.TransactionData,
				WatchlistEntry:    tc.WatchlistEntry,
				WatchlistType:     tc.WatchlistType,
				Expected:          tc.Expected.String(),
				Predicted:         result.Outcome,
				Confidence:        result.Confidence,
				Reason:            result.Reason,
				RecommendedAction: result.RecommendedAction,
			}
			if err := encoder.Encode(record); err != nil {
				return nil, fmt.Errorf("could not write mismatch record: %w", err)
			}
		}

		printCase(out, tc, result, predicted == expected)
	}

	printSummary(out, summary, mismatchPath)
	return summary, nil
}
