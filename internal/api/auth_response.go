package api

// AuthResponse is returned by register and login: a bearer token plus the
// user's own record, password omitted.
// swagger:model api.AuthResponse
type AuthResponse struct {
	Token string       `json:"token" example:"eyJhbGciOi..."`
	User  UserResponse `json:"user"`
}
