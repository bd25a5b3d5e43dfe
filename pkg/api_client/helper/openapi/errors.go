package openapi

import (
	"errors"
	"fmt"
)

// ErrParse wordt gematcht door elke *ParseError (errors.Is)
var ErrParse = errors.New("kon genormaliseerde JSON niet parsen")

// contextWindow is het aantal bytes rond de foutpositie in ParseError.Context
const contextWindow = 50

// ParseError bevat de positie en de omliggende tekst van een JSON fout
type ParseError struct {
	Offset  int64
	Context string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON fout op positie %d: %v (context: %q)", e.Offset, e.Err, e.Context)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func newParseError(data []byte, offset int64, err error) *ParseError {
	if offset < 0 || offset > int64(len(data)) {
		offset = int64(len(data))
	}
	start := offset - contextWindow
	if start < 0 {
		start = 0
	}
	end := offset + contextWindow
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return &ParseError{
		Offset:  offset,
		Context: string(data[start:end]),
		Err:     err,
	}
}
