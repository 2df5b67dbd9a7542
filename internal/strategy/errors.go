package strategy

import (
	"errors"
	"fmt"
)

// ErrUnsupportedApplicationType is returned by Registry.Resolve for tags
// outside the registered set. The classifier is total, so this is
// unreachable in normal operation.
var ErrUnsupportedApplicationType = errors.New("unsupported application type")

// MenuItemNotFoundError identifies the first menu path segment that could
// not be located during navigation.
type MenuItemNotFoundError struct {
	Segment string
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item not found: %q", e.Segment)
}

// FieldCountMismatchError reports that the caller supplied the wrong number
// of form values for the identified dialog. No field is written when this
// is returned.
type FieldCountMismatchError struct {
	Expected int
	Got      int
}

func (e *FieldCountMismatchError) Error() string {
	return fmt.Sprintf("form has %d input fields, got %d values", e.Expected, e.Got)
}
