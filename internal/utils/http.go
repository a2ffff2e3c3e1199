package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is sent when the payload itself cannot be encoded.
const marshalFailureBody = `{"error":"Internal server error"}`

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the "Content-Type: application/json" header and the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error and a JSON
// error body, and returns a wrapped error. The returned int is the number of
// body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.User{...}, http.StatusCreated)
//	WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
