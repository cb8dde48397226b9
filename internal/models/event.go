package models

type EventType string

const (
	EventUserCreated       EventType = "user.created"
	EventUserDeleted       EventType = "user.deleted"
	EventTaskCreated       EventType = "task.created"
	EventTaskUpdated       EventType = "task.updated"
	EventTaskDeleted       EventType = "task.deleted"
	EventAssignmentCreated EventType = "assignment.created"
)

// DomainEvent is published after a write has been committed.
type DomainEvent struct {
	EventID   string    `json:"event_id"`
	Type      EventType `json:"type"`
	EntityID  int64     `json:"entity_id"`
	UserID    *int64    `json:"user_id,omitempty"`
	TaskID    *int64    `json:"task_id,omitempty"`
	Timestamp int64     `json:"timestamp"`
}
