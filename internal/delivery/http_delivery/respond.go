package http_delivery

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/gustydev/messenger-api/pkg/errors"
)

type errorResponse struct {
	StatusCode int            `json:"statusCode"`
	Error      string         `json:"error"`
	Code       appErrors.Code `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError renders the structured error object; internals never leak a
// cause or stack into the response body.
func writeError(w http.ResponseWriter, err error) {
	appErr := appErrors.AsAppError(err)
	status := appErrors.HTTPStatus(err)
	writeJSON(w, status, errorResponse{
		StatusCode: status,
		Error:      appErr.Message,
		Code:       appErr.Code,
	})
}
