package service

// ValidationError marks a client-caused failure: a malformed field or a
// scheduling rule rejection. Handlers translate it into a 400 response
// carrying the reason text.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}
