package store

import (
	"context"
	"fmt"

	"earnhub/internal/database"
	"earnhub/internal/model"
)

func CreateTask(ctx context.Context, db database.DB, t *model.Task) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tasks (title, reward, link, active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		t.Title,
		t.Reward,
		t.Link,
		t.Active,
	)
	if err := row.Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

func ListActiveTasks(ctx context.Context, db database.DB) ([]model.Task, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, reward, link, active
		 FROM tasks WHERE active = TRUE`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListActiveTasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Reward, &t.Link, &t.Active); err != nil {
			return nil, fmt.Errorf("ListActiveTasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListActiveTasks: %w", err)
	}
	return tasks, nil
}

// ReplaceTasks wipes the task table and inserts the given tasks. Destructive
// by design: the seed endpoint resets the catalog, admin-added tasks included.
func ReplaceTasks(ctx context.Context, db database.DB, tasks []model.Task) error {
	if _, err := db.Exec(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("ReplaceTasks: %w", err)
	}
	for i := range tasks {
		if _, err := CreateTask(ctx, db, &tasks[i]); err != nil {
			return fmt.Errorf("ReplaceTasks: %w", err)
		}
	}
	return nil
}
