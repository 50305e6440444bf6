// internal/screening/schema.go
package screening

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Named error kinds for replies that parse but omit a required field.
// The evaluation driver matches on these to decide the skip condition.
var (
	ErrMissingOutcome    = errors.New("response missing MatchOutcome")
	ErrMissingConfidence = errors.New("response missing Confidence")
	ErrMissingReason     = errors.New("response missing Reason")
	ErrMissingAction     = errors.New("response missing RecommendedAction")
)

// responseSchemaDef describes the reply shape the protocol demands: the four
// top-level fields plus the nested reason sub-fields.
var responseSchemaDef = map[string]any{
	"type":     "object",
	"required": []string{"MatchOutcome", "Confidence", "Reason", "RecommendedAction"},
	"properties": map[string]any{
		"MatchOutcome":      map[string]any{"type": "string"},
		"Confidence":        map[string]any{"type": "string"},
		"RecommendedAction": map[string]any{"type": "string"},
		"Reason": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"TypeValidation":     map[string]any{"type": "string"},
				"NormalizationSteps": map[string]any{"type": "string"},
				"AppliedCriteria":    map[string]any{"type": "string"},
				"AnomaliesNoted":     map[string]any{"type": "string"},
			},
		},
	},
}

// ValidateResponse checks a raw reply body against the verdict schema and
// maps a missing required field to its named error kind.
func ValidateResponse(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(responseSchemaDef)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("could not validate response: %w", err)
	}
	if result.Valid() {
		return nil
	}

	for _, desc := range result.Errors() {
		if desc.Type() != "required" {
			continue
		}
		if property, ok := desc.Details()["property"].(string); ok {
			if err := missingFieldError(property); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("response violates verdict schema: %s", result.Errors()[0])
}

func missingFieldError(property string) error {
	switch property {
	case "MatchOutcome":
		return ErrMissingOutcome
	case "Confidence":
		return ErrMissingConfidence
	case "Reason":
		return ErrMissingReason
	case "RecommendedAction":
		return ErrMissingAction
	}
	return nil
}
