package handler

import (
	"encoding/json"
	"net/http"

	dErrors "insightx/pkg/domain-errors"
)

// messageResponse is the only response envelope this API exposes.
type messageResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(messageResponse{Message: message})
}

// writeError translates a domain error into the fixed client-facing message
// for its code. Internal detail stays server-side; the client only ever sees
// one of the three canned messages.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	switch code {
	case dErrors.CodeValidation, dErrors.CodeBadRequest:
		writeMessage(w, http.StatusBadRequest, "Please fill out all required fields.")
	case dErrors.CodeConflict:
		writeMessage(w, http.StatusConflict, "This email or contact number has already been registered.")
	default:
		writeMessage(w, http.StatusInternalServerError, "An unexpected server error occurred.")
	}
}
