package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/aussiebroadwan/forum/pkg/forumsdk"
	"github.com/aussiebroadwan/forum/pkg/httpx"
	"github.com/aussiebroadwan/forum/pkg/slogx"
)

// sessionToken returns the raw authorization header. The session service
// strips an optional "Bearer " prefix.
func sessionToken(r *http.Request) string {
	return r.Header.Get(forumsdk.HeaderAuthorization)
}

// statusFor maps an error kind to its HTTP status.
func statusFor(k service.Kind) int {
	switch k {
	case service.KindAuthentication:
		return http.StatusUnauthorized
	case service.KindAuthorization:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	case service.KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes taxonomy errors with their code and message untouched.
// Anything else is logged and hidden behind a generic server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if e, ok := service.AsError(err); ok {
		apiErr := &forumsdk.APIError{
			StatusCode: statusFor(e.Kind),
			Code:       e.Code,
			Message:    e.Message,
		}
		apiErr.WriteError(w)
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", slog.Any("err", err))
	forumsdk.ErrServerError.WriteError(w)
}

// decodeBody decodes a JSON request body, writing REQ-001 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		writeError(w, r, service.InvalidRequest("Invalid request body"))
		return false
	}
	return true
}
