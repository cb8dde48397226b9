package models

// Assignment links a user to a task. Status is free-form.
type Assignment struct {
	ID     int64  `json:"id" db:"id"`
	TaskID int64  `json:"task_id" db:"task_id"`
	UserID int64  `json:"user_id" db:"user_id"`
	Status string `json:"status" db:"status"`
}
