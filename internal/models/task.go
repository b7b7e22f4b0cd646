package models

// Timestamps are epoch milliseconds. CompletedAt is nil exactly when
// Completed is false; every completion transition maintains both together.
type Task struct {
	ID          int64  `json:"id,omitempty"`
	TaskListID  int64  `json:"task_list_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completed_at,omitempty"`
	CreatedAt   int64  `json:"created_at,omitempty"`
	UpdatedAt   int64  `json:"updated_at,omitempty"`
}
