package leaseback

import "fmt"

// InvalidInputError reports an input that cannot be used as a divisor.
// Field uses the wire names (property_value, cap_rate, current_ebitda) so
// API handlers and the CLI can surface it verbatim.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
