// Package service implements the domain operations over the store
// collaborators. Every operation checks existence and ownership before
// mutating, and maps storage failures to wrapped internal errors.
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/rromanowicz/task-list/internal/store"
)

type Service struct {
	users store.UserStore
	lists store.TaskListStore
	tasks store.TaskStore
}

func New(users store.UserStore, lists store.TaskListStore, tasks store.TaskStore) *Service {
	return &Service{users: users, lists: lists, tasks: tasks}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// internal logs a storage failure at the operation boundary and wraps it
// so it surfaces as an internal outcome rather than a raw driver error.
func internal(op string, err error) error {
	log.Printf("service: %s: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}
