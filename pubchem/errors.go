package pubchem

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// FaultError is a structured error document returned by the API. It
// can arrive with any status code, including 200.
type FaultError struct {
	Code    string
	Message string
	Details []string
}

// Error implements the error interface.
func (e *FaultError) Error() string {
	var b strings.Builder
	b.WriteString("pubchem fault")
	if e.Code != "" {
		b.WriteString(" ")
		b.WriteString(e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Details) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Details, "; "))
		b.WriteString(")")
	}
	return b.String()
}

// StatusError reports a non-success HTTP status without a parseable
// fault document.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// sniffFault extracts a fault document from a response body. The API
// wraps errors as {"Fault": {"Code", "Message", "Details": [...]}};
// anything else returns nil.
func sniffFault(body []byte) *FaultError {
	if !gjson.ValidBytes(body) {
		return nil
	}
	fault := gjson.GetBytes(body, "Fault")
	if !fault.IsObject() {
		return nil
	}
	fe := &FaultError{
		Code:    fault.Get("Code").String(),
		Message: fault.Get("Message").String(),
	}
	for _, d := range fault.Get("Details").Array() {
		fe.Details = append(fe.Details, d.String())
	}
	return fe
}
