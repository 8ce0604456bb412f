package transcode

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes transcoding errors.
type ErrorCode string

const (
	// ErrCodeUnsegmentableWord indicates the word grammar accepted a span
	// that the syllable inventory cannot cover. This is an invariant
	// violation, not a user error.
	ErrCodeUnsegmentableWord ErrorCode = "UNSEGMENTABLE_WORD"
)

// Error is returned when a word cannot be transcoded.
type Error struct {
	Code    ErrorCode
	Message string

	// Word is the canonical form that was being segmented.
	Word string

	// Remainder is the unconsumed tail of Word.
	Remainder string

	// Offset is the byte offset of Remainder within Word.
	Offset int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%s: %s (word=%q, remainder=%q)", e.Code, e.Message, e.Word, e.Remainder)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newUnsegmentableError(word, remainder string) *Error {
	return &Error{
		Code:      ErrCodeUnsegmentableWord,
		Message:   "no syllable matches",
		Word:      word,
		Remainder: remainder,
		Offset:    len(word) - len(remainder),
	}
}

// IsUnsegmentable returns true if err is an unsegmentable word error.
// Uses errors.As to handle wrapped errors.
func IsUnsegmentable(err error) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Code == ErrCodeUnsegmentableWord
	}
	return false
}
