package service

import (
	"errors"

	"github.com/rromanowicz/task-list/internal/models"
	"github.com/rromanowicz/task-list/internal/store"
)

// stampNewTask initializes the timestamps of a task entering the system
// and normalizes the completion pair: CompletedAt is set exactly when
// Completed is true.
func stampNewTask(task *models.Task, now int64) {
	task.ID = 0
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Completed {
		if task.CompletedAt == nil {
			task.CompletedAt = &now
		}
	} else {
		task.CompletedAt = nil
	}
}

// AddTask appends the task to the list and persists the whole list. The
// returned task is the one with the maximum CreatedAt after the append;
// created timestamps are stamped here and monotonic, so that is the task
// just added. Ties go to the last one scanned.
func (s *Service) AddTask(listID int64, task *models.Task) (*models.Task, error) {
	list, err := s.lists.FindByID(listID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, internal("add task", err)
	}

	stampNewTask(task, nowMillis())
	list.Tasks = append(list.Tasks, *task)

	saved, err := s.lists.Save(list)
	if err != nil {
		return nil, internal("add task", err)
	}

	var newest *models.Task
	for i := range saved.Tasks {
		if newest == nil || saved.Tasks[i].CreatedAt >= newest.CreatedAt {
			newest = &saved.Tasks[i]
		}
	}
	if newest == nil {
		return nil, internal("add task", errors.New("saved list has no tasks"))
	}
	return newest, nil
}

// GetAllTasks returns the tasks belonging to the list. An unknown list id
// yields an empty collection, not a not-found outcome.
func (s *Service) GetAllTasks(listID int64) ([]models.Task, error) {
	tasks, err := s.tasks.FindAllByListID(listID)
	if err != nil {
		return nil, internal("get tasks", err)
	}
	return tasks, nil
}

// DeleteTask removes the task only after confirming it belongs to the
// stated list; a task reached through the wrong list id is not found.
func (s *Service) DeleteTask(listID, taskID int64) error {
	_, err := s.tasks.FindIfBelongsToList(listID, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return internal("delete task", err)
	}

	if err := s.tasks.DeleteByID(taskID); err != nil {
		return internal("delete task", err)
	}
	return nil
}

// ToggleCompleted flips the completion state, keeping CompletedAt in step:
// set to the current time on completion, cleared on reopening.
func (s *Service) ToggleCompleted(listID, taskID int64, completed bool) (*models.Task, error) {
	task, err := s.tasks.FindIfBelongsToList(listID, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, internal("toggle task", err)
	}

	now := nowMillis()
	task.Completed = completed
	if completed {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	task.UpdatedAt = now

	saved, err := s.tasks.Save(task)
	if err != nil {
		return nil, internal("toggle task", err)
	}
	return saved, nil
}

// UpdateTask replaces the task record. The path task id must match the
// payload id, and the task must belong to the stated list.
func (s *Service) UpdateTask(listID, taskID int64, task *models.Task) (*models.Task, error) {
	if taskID != task.ID {
		return nil, ErrForbidden
	}

	existing, err := s.tasks.FindIfBelongsToList(listID, taskID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, internal("update task", err)
	}

	now := nowMillis()
	task.TaskListID = listID
	if task.CreatedAt == 0 {
		task.CreatedAt = existing.CreatedAt
	}
	task.UpdatedAt = now
	if task.Completed {
		if task.CompletedAt == nil {
			task.CompletedAt = &now
		}
	} else {
		task.CompletedAt = nil
	}

	saved, err := s.tasks.Save(task)
	if err != nil {
		return nil, internal("update task", err)
	}
	return saved, nil
}
