package models

// TaskList has exactly one owner. SharedWith grants access without
// transferring ownership; Tasks are owned by the list and do not outlive it.
type TaskList struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Owner      string `json:"owner,omitempty"`
	SharedWith []User `json:"shared_with,omitempty"`
	Tasks      []Task `json:"tasks,omitempty"`
	CreatedAt  int64  `json:"created_at,omitempty"`
	UpdatedAt  int64  `json:"updated_at,omitempty"`
}
