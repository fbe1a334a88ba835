package bind

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBindingMismatch is the sentinel for any disagreement between a template's
// placeholders and the supplied bindings. Use errors.Is to detect it.
var ErrBindingMismatch = errors.New("binding mismatch")

// MismatchError reports which names are missing from the bindings and which
// bound names have no placeholder in the template.
type MismatchError struct {
	Missing []string
	Unknown []string
}

func (e *MismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing bindings: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown bindings: %s", strings.Join(e.Unknown, ", ")))
	}
	return "binding mismatch: " + strings.Join(parts, "; ")
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrBindingMismatch
}
