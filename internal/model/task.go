// File: internal/model/task.go
package model

type Task struct {
	ID     int    `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	Reward int64  `db:"reward" json:"reward"`
	Link   string `db:"link" json:"link"`
	Active bool   `db:"active" json:"active"`
}
