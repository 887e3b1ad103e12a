package recommend

import "fmt"

// FailureKind classifies why a recommendation could not be produced.
type FailureKind string

const (
	// FailureStatus means the completion endpoint answered with a non-2xx status.
	FailureStatus FailureKind = "status"
	// FailureTransport means the request never completed or the response was unusable.
	FailureTransport FailureKind = "transport"
)

// Failure is returned when the completion endpoint could not produce a
// recommendation. Callers decide how to surface it; the message keeps the
// status code and response detail so front-ends can display them verbatim.
type Failure struct {
	Kind       FailureKind
	StatusCode int
	Detail     string
}

func (f *Failure) Error() string {
	if f.Kind == FailureStatus {
		return fmt.Sprintf("completion API status %d: %s", f.StatusCode, f.Detail)
	}
	return fmt.Sprintf("completion request failed: %s", f.Detail)
}
