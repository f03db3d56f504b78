package codec

import (
	"errors"
	"fmt"
)

// ErrSerialOutOfRange is returned when a sequence counter (or a batch range)
// does not fit in the fixed-width serial encoding.
var ErrSerialOutOfRange = errors.New("serial out of range")

// InvalidSerialError reports a malformed serial or label string.
type InvalidSerialError struct {
	Serial string
	Reason string
}

func (e *InvalidSerialError) Error() string {
	return fmt.Sprintf("invalid serial %q: %s", e.Serial, e.Reason)
}

// InvalidCategoryCodeError reports a supplier, packaging type or size code
// that violates the single-character contract.
type InvalidCategoryCodeError struct {
	Field  string
	Code   byte
	Reason string
}

func (e *InvalidCategoryCodeError) Error() string {
	return fmt.Sprintf("invalid %s code %q: %s", e.Field, e.Code, e.Reason)
}
