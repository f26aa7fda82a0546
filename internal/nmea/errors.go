package nmea

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSentenceType means the type field matched no supported sentence.
	ErrUnknownSentenceType = errors.New("unknown sentence type")
	// ErrTruncatedSentence means the sentence has fewer fields than its type requires.
	ErrTruncatedSentence = errors.New("truncated sentence")
	// ErrMalformedNumericField means a non-empty numeric field failed to parse.
	ErrMalformedNumericField = errors.New("malformed numeric field")
)

// DecodeError describes where decoding stopped.
type DecodeError struct {
	Type  SentenceType
	Field string // name of the field being decoded, if any
	Index int    // field position, the type field being 0
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("nmea %s: field %d (%s) %q: %v", e.Type, e.Index, e.Field, e.Token, e.Err)
	case e.Token != "":
		return fmt.Sprintf("nmea %s: %q: %v", e.Type, e.Token, e.Err)
	default:
		return fmt.Sprintf("nmea %s: %v", e.Type, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
