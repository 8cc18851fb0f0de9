package naming

import (
	"errors"
	"fmt"
)

// ErrVersionOverflow is matched by every *VersionOverflowError.
var ErrVersionOverflow = errors.New("version overflow")

// VersionOverflowError reports a name whose version cannot be represented,
// either because its "(vN)" digit run is too large or because the next free
// version would exceed the maximum int.
type VersionOverflowError struct {
	Input string
	Err   error
}

func (e *VersionOverflowError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("version overflow: %q", e.Input)
	}
	return fmt.Sprintf("version overflow: %q: %s", e.Input, e.Err)
}

func (e *VersionOverflowError) Unwrap() error {
	return e.Err
}

func (e *VersionOverflowError) Is(target error) bool {
	return target == ErrVersionOverflow
}
