package loader

import "fmt"

// IOError wraps a failure reading or writing a local data file.
type IOError struct {
	Path string
	Msg  string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s: %s: %v", e.Path, e.Msg, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
