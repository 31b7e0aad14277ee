package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	// ErrIncompleteAnswers marks an answer set missing one or more required
	// questions. This is a caller error; the scorer is never reached with a
	// partial set in normal flow.
	ErrIncompleteAnswers = errors.New("please answer all questions")

	// ErrUnknownCategory marks a category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown survey category")
)
