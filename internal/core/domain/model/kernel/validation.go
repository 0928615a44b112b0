package kernel

import (
	"fmt"
	"strings"

	"dinesmart/internal/pkg/errs"
)

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateID checks that an identifier is non-negative.
func ValidateID(paramName string, id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is negative", id))
	}
	return nil
}

// ValidateName checks that a display name is not blank.
func ValidateName(paramName, name string) error {
	if IsBlank(name) {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
