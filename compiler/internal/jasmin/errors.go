package jasmin

import "fmt"

// NotImplementedError is returned for IR the generator has no lowering for. It aborts the whole build.
type NotImplementedError struct {
	What string
}

func (e *NotImplementedError) Error() string {
	return "not implemented: " + e.What
}

func notImplemented(format string, args ...interface{}) error {
	return &NotImplementedError{What: fmt.Sprintf(format, args...)}
}

// MissingRegisterError means a variable has no entry in its method's var table, which the front end
// is supposed to guarantee.
type MissingRegisterError struct {
	Method   string
	Variable string
}

func (e *MissingRegisterError) Error() string {
	return fmt.Sprintf("no virtual register for %s in method %s", e.Variable, e.Method)
}
