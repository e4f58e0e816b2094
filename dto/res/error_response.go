package res

type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the {message} body returned by attend/unattend and other
// acknowledgment-only operations.
type StatusResponse struct {
	Message string `json:"message"`
}
