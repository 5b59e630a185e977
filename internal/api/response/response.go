// Package response holds the JSON helpers every handler responds through, so
// the whole API emits one consistent envelope for payloads and errors.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error envelope returned on every non-2xx response.
// Details carries optional extra context (typically the underlying error
// string) and is omitted when empty.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as a JSON body with the given status code. A nil
// data value writes only headers and status. Encoding failures are logged;
// by then the status line is already on the wire, so the response cannot be
// rewritten into an error.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes an ErrorResponse with the given status code. The
// message is the stable, user-facing description; details may hold the
// underlying error text or be empty.
//
//	response.RespondError(w, http.StatusBadRequest, "invalid chart window", err.Error())
//	response.RespondError(w, http.StatusNotFound, "metal not found", "")
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	response := ErrorResponse{
		Error:   message,
		Details: details,
	}
	RespondJSON(w, status, response)
}
