package response

// ErrorResponse is the error body returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is used for simple confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT and the authenticated user.
type TokenResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// ListResponse wraps collection results with a count.
type ListResponse struct {
	Results int `json:"results"`
	Data    any `json:"data"`
}
