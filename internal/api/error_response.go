package api

// ErrorResponse is the flat error body every endpoint returns on failure.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
