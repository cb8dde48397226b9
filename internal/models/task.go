package models

type Task struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	DueDate     Date   `json:"due_date" db:"due_date"`
	UserID      int64  `json:"user_id" db:"user_id"`
}

type TaskSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     Date   `json:"due_date"`
}

type TaskDetails struct {
	Task
	Assignments []Assignment `json:"assignments"`
}

func (t *Task) Summary() TaskSummary {
	return TaskSummary{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
	}
}
