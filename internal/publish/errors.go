package publish

import "fmt"

// SinkError represents a failure writing to one output sink
type SinkError struct {
	Sink    string
	Message string
	Cause   error
}

func (e *SinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s sink: %s: %v", e.Sink, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s sink: %s", e.Sink, e.Message)
}

func (e *SinkError) Unwrap() error {
	return e.Cause
}
