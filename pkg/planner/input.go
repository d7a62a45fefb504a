package planner

import (
	"fmt"
	"strings"

	"github.com/nexus-controls/plcforge/pkg/models"
)

// Word-count bounds for raw control logic.
const (
	DefaultMinWords = 50
	DefaultMaxWords = 5000
)

// Limits bounds the accepted input size.
type Limits struct {
	MinWords int
	MaxWords int
}

// DefaultLimits returns the standard input bounds.
func DefaultLimits() Limits {
	return Limits{MinWords: DefaultMinWords, MaxWords: DefaultMaxWords}
}

// InputError reports rejected control-logic input.
type InputError struct {
	Reason    string
	WordCount int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid control logic: %s", e.Reason)
}

// CheckInput bounds-checks raw control logic. Empty or whitespace-only text
// is rejected outright; otherwise the word count must fall within limits.
func CheckInput(text string, limits Limits) models.InputCheck {
	if strings.TrimSpace(text) == "" {
		return models.InputCheck{Valid: false, Reason: "Control logic cannot be empty"}
	}

	wordCount := len(strings.Fields(text))
	if wordCount < limits.MinWords {
		return models.InputCheck{
			Valid:     false,
			WordCount: wordCount,
			Reason: fmt.Sprintf("Control logic too brief (%d words). Please provide at least %d words describing the complete control process.",
				wordCount, limits.MinWords),
		}
	}
	if wordCount > limits.MaxWords {
		return models.InputCheck{
			Valid:     false,
			WordCount: wordCount,
			Reason: fmt.Sprintf("Control logic too long (%d words). Please keep the description under %d words.",
				wordCount, limits.MaxWords),
		}
	}

	return models.InputCheck{Valid: true, WordCount: wordCount}
}
