// internal/eval/types.go
// Package eval drives one evaluation run: it iterates the case table,
// invokes the screening classifier per case, compares predicted against
// expected outcomes, and persists mismatches.
package eval

import "github.com/screenlab/screeneval/internal/screening"

// TestCase is one row of the input table, immutable, in file order.
type TestCase struct {
	ID              string
	TransactionData string
	WatchlistEntry  string
	WatchlistType   string
	Expected        screening.ExpectedLabel
	// RawLabel preserves the label field as read; LabelRecognized is false
	// when it was neither TRUE nor FALSE and Expected fell back to false.
	RawLabel        string
	LabelRecognized bool
}

// MismatchRecord is the denormalized union of a test case and its verdict,
// appended to the mismatch log when a prediction disagrees with the label.
type MismatchRecord struct {
	CaseID            string            `json:"caseId"`
	TransactionData   string            `json:"transactionData"`
	WatchlistEntry    string            `json:"watchlistEntry"`
	WatchlistType     string            `json:"watchlistType"`
	Expected          string            `json:"expected"`
	Predicted         string            `json:"predicted"`
	Confidence        string            `json:"confidence"`
	Reason            *screening.Reason `json:"reason"`
	RecommendedAction string            `json:"recommendedAction"`
}

// Summary accumulates the counters of a single run. Skipped cases are
// excluded from the accuracy denominator.
type Summary struct {
	Total      int
	Correct    int
	Skipped    int
	Mismatches int
}

// Accuracy returns the percentage of correct predictions, 0 for an empty run.
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}
