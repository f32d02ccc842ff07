package forumsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/forum/pkg/httpx"
)

// Status lines of successful responses.
const (
	StatusUserRegistered  = "USER SUCCESSFULLY REGISTERED"
	StatusSignedIn        = "SIGNED IN SUCCESSFULLY"
	StatusSignedOut       = "SIGNED OUT SUCCESSFULLY"
	StatusQuestionCreated = "QUESTION CREATED"
	StatusQuestionEdited  = "QUESTION EDITED"
	StatusQuestionDeleted = "QUESTION DELETED"
	StatusAnswerCreated   = "ANSWER CREATED"
	StatusAnswerEdited    = "ANSWER EDITED"
	StatusAnswerDeleted   = "ANSWER DELETED"
)

// Header names used by the service.
const (
	HeaderAuthorization = "authorization"
	HeaderAccessToken   = "access-token"
)

// CodeServerError is used for failures outside the error taxonomy.
const CodeServerError = "SRV-001"

// APIError is a failed request. The server writes it, the client returns it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{Code: e.Code, Message: e.Message})
}

// ErrServerError is written when something failed that the caller can't fix.
var ErrServerError = &APIError{
	StatusCode: http.StatusInternalServerError,
	Code:       CodeServerError,
	Message:    "Internal server error",
}

// parseErrorResponse builds an *APIError from a failed response body.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Code == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       CodeServerError,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Code: er.Code, Message: er.Message}
}
