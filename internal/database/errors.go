package database

import "fmt"

// ConnectionError represents an unreachable host, failed authentication or a missing dialect.
type ConnectionError struct {
	Dialect string
	Msg     string
	Err     error
}

// QueryError represents a failure while executing a query or reading its rows.
type QueryError struct {
	Query string
	Msg   string
	Err   error
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("database connection error (%s): %s", e.Dialect, e.Msg)
	}
	return fmt.Sprintf("database connection error (%s): %s: %v", e.Dialect, e.Msg, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("query execution error: %s", e.Msg)
	}
	return fmt.Sprintf("query execution error: %s: %v", e.Msg, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
