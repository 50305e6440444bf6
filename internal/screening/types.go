// internal/screening/types.go
// Package screening adapts one test case into a single call to the
// Groq chat-completions service and parses the structured verdict it
// returns. Go code builds the prompt and decodes the reply; every
// matching decision is made by the model.
package screening

import (
	"fmt"
	"strings"
)

// MatchOutcome is the service's binary verdict on a potential match.
type MatchOutcome string

const (
	OutcomeTrueMatch  MatchOutcome = "True Match"
	OutcomeFalseMatch MatchOutcome = "False Match"
)

// ParseMatchOutcome decodes a verdict string case-insensitively. Anything
// other than the two recognized forms is an error rather than a silent
// default to False Match.
func ParseMatchOutcome(s string) (MatchOutcome, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE MATCH":
		return OutcomeTrueMatch, nil
	case "FALSE MATCH":
		return OutcomeFalseMatch, nil
	default:
		return "", fmt.Errorf("unrecognized match outcome %q", s)
	}
}

// IsMatch reports whether the outcome is a true match.
func (o MatchOutcome) IsMatch() bool { return o == OutcomeTrueMatch }

// String returns the canonical verdict form.
func (o MatchOutcome) String() string { return string(o) }

// ExpectedLabel is the ground-truth label attached to a test case.
type ExpectedLabel string

const (
	ExpectedTrue  ExpectedLabel = "True Match"
	ExpectedFalse ExpectedLabel = "False Match"
)

// ParseExpectedLabel decodes a case's label field case-insensitively.
// Only TRUE and FALSE are recognized; anything else is reported so the
// caller can decide whether to warn or fail.
func ParseExpectedLabel(s string) (ExpectedLabel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return ExpectedTrue, nil
	case "FALSE":
		return ExpectedFalse, nil
	default:
		return "", fmt.Errorf("unrecognized expected label %q", s)
	}
}

// IsMatch reports whether the label expects a true match.
func (l ExpectedLabel) IsMatch() bool { return l == ExpectedTrue }

// String returns the canonical label form.
func (l ExpectedLabel) String() string { return string(l) }

// Reason is the structured justification block of a verdict.
type Reason struct {
	TypeValidation     string `json:"TypeValidation"`
	NormalizationSteps string `json:"NormalizationSteps"`
	AppliedCriteria    string `json:"AppliedCriteria"`
	AnomaliesNoted     string `json:"AnomaliesNoted,omitempty"`
}

// MatchResult is the parsed service reply for one case. Fields are kept
// verbatim as returned; the evaluation driver validates presence of the
// required fields and decodes the outcome.
type MatchResult struct {
	Outcome           string  `json:"MatchOutcome"`
	Confidence        string  `json:"Confidence"`
	Reason            *Reason `json:"Reason"`
	RecommendedAction string  `json:"RecommendedAction"`
}
