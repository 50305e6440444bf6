// internal/eval/cases.go
package eval

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/screenlab/screeneval/internal/screening"
)

// Column headers the case table must carry.
const (
	colCaseID      = "SI. No"
	colTransaction = "Transaction Data"
	colEntry       = "High Risk Database Entry"
	colEntryType   = "High Risk Database Entry Type"
	colLabel       = "Match Type"
)

var requiredColumns = []string{colCaseID, colTransaction, colEntry, colEntryType, colLabel}

// LoadCases reads the delimited case table. The first row is a header;
// required columns are located by name so column order does not matter.
// Row order defines processing order.
func LoadCases(path string) ([]TestCase, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open case file: %w", err)
	}
	defer file.Close()

	return readCases(file)
}

func readCases(r io.Reader) ([]TestCase, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read case file header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("case file missing required column %q", name)
		}
	}

	var cases []TestCase
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read case row: %w", err)
		}

		tc := TestCase{
			ID:              fieldAt(row, index[colCaseID]),
			TransactionData: fieldAt(row, index[colTransaction]),
			WatchlistEntry:  fieldAt(row, index[colEntry]),
			WatchlistType:   fieldAt(row, index[colEntryType]),
			RawLabel:        fieldAt(row, index[colLabel]),
		}

		label, err := screening.ParseExpectedLabel(tc.RawLabel)
		if err != nil {
			// Only TRUE is recognized as a true-match expectation; anything
			// else falls back to expected-false, preserving the original
			// evaluation semantics. The driver warns about these rows.
			tc.Expected = screening.ExpectedFalse
			tc.LabelRecognized = false
		} else {
			tc.Expected = label
			tc.LabelRecognized = true
		}

		cases = append(cases, tc)
	}

	return cases, nil
}

func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
