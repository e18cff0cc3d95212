package api

import "fmt"

// Result is the interpreted outcome of one successful call: either a decoded
// JSON value or a synthetic status message, never both.
type Result struct {
	value  any
	status string
	isJSON bool
}

// JSON wraps a decoded JSON value.
func JSON(value any) Result {
	return Result{value: value, isJSON: true}
}

// Status wraps the status code of a successful reply that carried no JSON
// body.
func Status(code int) Result {
	return Result{status: fmt.Sprintf("request completed with status %d", code)}
}

// Value returns the decoded JSON value; ok is false for status message
// results.
func (r Result) Value() (value any, ok bool) {
	return r.value, r.isJSON
}

// Message returns the status message; ok is false for JSON results.
func (r Result) Message() (message string, ok bool) {
	if r.isJSON {
		return "", false
	}
	return r.status, true
}
