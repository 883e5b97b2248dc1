package jobs

import "fmt"

// NotConfiguredError indicates a source's credential is absent. It is known in
// advance of any network call and is never retried.
type NotConfiguredError struct {
	Source string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured: set the corresponding credential in your environment", e.Source)
}

// FailureKind sub-classifies a SourceUnavailableError for diagnostics. The
// orchestrator only branches on failed-vs-succeeded, never on the kind.
type FailureKind string

// Failure kinds reported by the upstream adapters.
const (
	FailureAuth      FailureKind = "auth"
	FailureRateLimit FailureKind = "rate_limit"
	FailureCORS      FailureKind = "cors"
	FailureNetwork   FailureKind = "network"
	FailureUpstream  FailureKind = "upstream"
)

// SourceUnavailableError represents a network, transport, auth, or rate-limit
// failure from an upstream source.
type SourceUnavailableError struct {
	Source  string
	Kind    FailureKind
	Message string
	Cause   error
}

func (e *SourceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s unavailable (%s): %s: %v", e.Source, e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s unavailable (%s): %s", e.Source, e.Kind, e.Message)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError represents an upstream response whose shape did not
// match the wire contract, e.g. a tweet without a joined author record.
type MalformedResponseError struct {
	Source  string
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed %s response: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed %s response: %s", e.Source, e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
