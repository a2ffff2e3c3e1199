package models

// ErrorResponse is the body of every failed request: a single "error" key
// holding a fixed, route-specific message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a confirmation body for operations that do not return a
// resource (e.g. user deletion).
type MessageResponse struct {
	Message string `json:"message"`
}
