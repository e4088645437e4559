package internal

import "fmt"

// ErrorKind identifies the category of a palette-generation input error.
type ErrorKind string

const (
	InvalidHex         ErrorKind = "invalid_hex"
	InvalidP3Token     ErrorKind = "invalid_p3_token"
	InvariantViolation ErrorKind = "invariant_violation"
)

// InputError is the one error kind user-visible failures surface as: a kind
// plus a human string naming which input was bad. No partial palette is ever
// returned alongside it.
type InputError struct {
	Kind    ErrorKind
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newInvalidHex(input string) error {
	return &InputError{Kind: InvalidHex, Message: fmt.Sprintf("invalid hex color: %q", input)}
}

func newInvalidP3Token(input string) error {
	return &InputError{Kind: InvalidP3Token, Message: fmt.Sprintf("invalid P3 token: %q", input)}
}
