package handler

import (
	"encoding/json"
	"net/http"
)

// errorDetail is the machine-readable part of an error response.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the body shape for every non-2xx API response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// respondJSON writes v as a JSON response with the given status code.
// Encoding failures are swallowed — the status line has already been sent.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondNotFound writes a 404 with a not_found error body.
// The caller supplies the human-readable message (e.g. "package not found")
// because the handler is the layer that knows what was being looked up.
func respondNotFound(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusNotFound, errorResponse{
		Error: errorDetail{Code: "not_found", Message: message},
	})
}

// respondBadRequest writes a 400 with a validation_error body.
// Used both for requests rejected before the service layer (malformed body,
// bad UUID) and for domain validation failures surfaced by the service.
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// respondInternal writes a 500 with a generic body. The underlying error is
// logged by the request middleware, never leaked to the client.
func respondInternal(w http.ResponseWriter) {
	respondJSON(w, http.StatusInternalServerError, errorResponse{
		Error: errorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.PackageService.Create: validation error: title is required"
// → "title is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.PackageService.Create: ",
		"service.PackageService.Update: ",
		"service.PackageService.AddItineraryItem: ",
		"service.PackageService.AddImage: ",
	} {
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			msg = msg[len(prefix):]
			break
		}
	}
	for _, prefix := range []string{"validation error: ", "no fields to update: "} {
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
