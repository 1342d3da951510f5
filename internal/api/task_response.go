package api

// swagger:model api.TaskResponse
type TaskResponse struct {
	ID     int    `json:"id" example:"1"`
	Title  string `json:"title" example:"Subscribe to the YouTube channel"`
	Reward int64  `json:"reward" example:"30"`
	Link   string `json:"link" example:"https://youtube.com"`
	Active bool   `json:"active" example:"true"`
}
