package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Msg string `json:"msg" example:"withdraw request submitted"`
}
