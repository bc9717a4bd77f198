package pubchem

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantKind  OutcomeKind
		retryable bool
	}{
		{
			name:     "plain success",
			status:   http.StatusOK,
			body:     `{"IdentifierList":{"CID":[2244]}}`,
			wantKind: OutcomeSuccess,
		},
		{
			name:     "success status with embedded fault",
			status:   http.StatusOK,
			body:     `{"Fault":{"Code":"PUGREST.Timeout","Message":"timed out"}}`,
			wantKind: OutcomeFault,
		},
		{
			name:     "not found with fault",
			status:   http.StatusNotFound,
			body:     `{"Fault":{"Code":"PUGREST.NotFound","Message":"no such record"}}`,
			wantKind: OutcomeFault,
		},
		{
			name:      "throttled is retryable",
			status:    http.StatusTooManyRequests,
			body:      "",
			wantKind:  OutcomeStatus,
			retryable: true,
		},
		{
			name:      "service unavailable is retryable",
			status:    http.StatusServiceUnavailable,
			body:      "down for maintenance",
			wantKind:  OutcomeStatus,
			retryable: true,
		},
		{
			name:      "gateway timeout is retryable",
			status:    http.StatusGatewayTimeout,
			body:      "",
			wantKind:  OutcomeStatus,
			retryable: true,
		},
		{
			name:     "bad request is fatal",
			status:   http.StatusBadRequest,
			body:     "bad identifier",
			wantKind: OutcomeStatus,
		},
		{
			name:     "internal error is fatal",
			status:   http.StatusInternalServerError,
			body:     "",
			wantKind: OutcomeStatus,
		},
		{
			name:     "malformed fault falls back to status",
			status:   http.StatusBadRequest,
			body:     `{"Fault": "not an object`,
			wantKind: OutcomeStatus,
		},
		{
			name:     "non-object fault falls back to status",
			status:   http.StatusBadRequest,
			body:     `{"Fault": "just a string"}`,
			wantKind: OutcomeStatus,
		},
		{
			name:     "non-json error body",
			status:   http.StatusBadGateway,
			body:     "<html>502</html>",
			wantKind: OutcomeStatus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Classify(tt.status, []byte(tt.body))
			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.retryable, outcome.Retryable)

			switch tt.wantKind {
			case OutcomeSuccess:
				assert.NoError(t, outcome.Err())
			case OutcomeFault:
				var fault *FaultError
				require.ErrorAs(t, outcome.Err(), &fault)
			case OutcomeStatus:
				var status *StatusError
				require.ErrorAs(t, outcome.Err(), &status)
				assert.Equal(t, tt.status, status.StatusCode)
			}
		})
	}
}
