package resolver

import "fmt"

// UnknownTypeError reports a type token that matches no rule.
type UnknownTypeError struct {
	Token string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q", e.Token)
}
