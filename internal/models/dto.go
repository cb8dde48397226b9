package models

import "encoding/json"

// Request bodies use pointers so that an absent key can be told apart from a zero value.

type CreateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	UserID      *int64  `json:"user_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`

	// HasUserID is set when the body names user_id, even as null.
	HasUserID bool `json:"-"`
}

func (r *CreateTaskRequest) UnmarshalJSON(data []byte) error {
	type plain CreateTaskRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, p.HasUserID = keys["user_id"]

	*r = CreateTaskRequest(p)
	return nil
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

type CreateAssignmentRequest struct {
	TaskID *int64  `json:"task_id"`
	UserID *int64  `json:"user_id"`
	Status *string `json:"status"`
}
