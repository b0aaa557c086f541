package constraint

// InputError reports input rejected by a parser or a constraint. It is
// recoverable: the field is prompted again.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Invalid builds an InputError carrying msg.
func Invalid(msg string) error {
	return &InputError{Message: msg}
}
