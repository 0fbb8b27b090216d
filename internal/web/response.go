package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nthanfp/vhiweb-assignment/internal/validate"
)

// Payload holds the resource keys of a response body alongside the
// success/message envelope fields.
type Payload map[string]any

// Respond writes body as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// OK writes a success envelope, merging any extra payload keys into it.
func OK(w http.ResponseWriter, status int, message string, data Payload) {
	body := Payload{"success": true, "message": message}
	for k, v := range data {
		body[k] = v
	}
	Respond(w, status, body)
}

// Fail writes a failure envelope with only a message.
func Fail(w http.ResponseWriter, status int, message string) {
	Respond(w, status, Payload{"success": false, "message": message})
}

// FailValidation writes the 422 envelope carrying field-level messages.
func FailValidation(w http.ResponseWriter, errs validate.Errors) {
	Respond(w, http.StatusUnprocessableEntity, Payload{
		"success": false,
		"message": "Validation failed.",
		"error":   errs,
	})
}

// Decode decodes a JSON request body into target.
func Decode(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
