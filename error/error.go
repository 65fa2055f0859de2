package error

import (
	"fmt"
	"strings"
)

// DataError is an error detected while loading one of the UCD input tables.
// It carries enough source location to point an operator at the offending
// line of the data file.
type DataError struct {
	Cause      error
	SourceName string
	Row        int
}

func (e *DataError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

func (e *DataError) Unwrap() error {
	return e.Cause
}
