package view

// Response is the envelope all API endpoints reply with.
type Response[T any] struct {
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
	Request any    `json:"request,omitempty"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreateResponse builds the response envelope. The failed request payload
// is echoed back on validation errors to ease client debugging.
func CreateResponse[T any](data T, err error, request any, message string) Response[T] {
	resp := Response[T]{
		Data:    data,
		Request: request,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
