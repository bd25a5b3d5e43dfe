package swaggerui

import (
	"errors"
	"fmt"
)

// ErrExtraction wordt geretourneerd als er geen `options = {...}` toewijzing gevonden is
var ErrExtraction = errors.New("kon options object niet vinden in swagger-ui script")

// ExtractionError beschrijft een script waarin geen options object te vinden is
type ExtractionError struct {
	Size int
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s (%d bytes gescand)", ErrExtraction.Error(), e.Size)
}

func (e *ExtractionError) Unwrap() error { return ErrExtraction }
