package internal

import "fmt"

// ToError coerces a recovered panic value into an error.
// Errors pass through unchanged to preserve their identity.
// Any other value is wrapped in a new error using its default
// string form.
func ToError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	default:
		return fmt.Errorf("%v", e)
	}
}
