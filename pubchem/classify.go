package pubchem

import "strings"

// OutcomeKind partitions a response into success, a structured fault,
// or a bare HTTP status failure.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFault
	OutcomeStatus
)

// Outcome is the classification of one HTTP exchange.
type Outcome struct {
	Kind      OutcomeKind
	Fault     *FaultError
	Status    *StatusError
	Retryable bool
}

// Err returns the outcome's error, or nil for success.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeFault:
		return o.Fault
	case OutcomeStatus:
		return o.Status
	}
	return nil
}

// Classify maps a status code and body onto an Outcome. A fault
// document wins over the status code, even a 2xx one; a non-2xx
// status without a parseable fault becomes a StatusError. Malformed
// or non-JSON bodies never cause a classification failure.
func Classify(statusCode int, body []byte) Outcome {
	fault := sniffFault(body)

	if statusCode >= 200 && statusCode < 300 {
		if fault != nil {
			return Outcome{Kind: OutcomeFault, Fault: fault}
		}
		return Outcome{Kind: OutcomeSuccess}
	}

	retryable := retryableStatus(statusCode)
	if fault != nil {
		return Outcome{Kind: OutcomeFault, Fault: fault, Retryable: retryable}
	}
	return Outcome{
		Kind:      OutcomeStatus,
		Status:    &StatusError{StatusCode: statusCode, Body: strings.TrimSpace(string(body))},
		Retryable: retryable,
	}
}
