package api

// swagger:model api.AddTaskRequest
type AddTaskRequest struct {
	Title  string `json:"title" validate:"required" example:"Subscribe to the YouTube channel"`
	Reward int64  `json:"reward" validate:"gte=0" example:"30"`
	Link   string `json:"link" validate:"required,url" example:"https://youtube.com"`
}
