package service

import (
	"errors"

	"github.com/rromanowicz/task-list/internal/models"
	"github.com/rromanowicz/task-list/internal/store"
)

func (s *Service) CreateTaskList(list *models.TaskList) (*models.TaskList, error) {
	now := nowMillis()
	list.ID = 0
	list.CreatedAt = now
	list.UpdatedAt = now
	for i := range list.Tasks {
		stampNewTask(&list.Tasks[i], now)
	}

	saved, err := s.lists.Save(list)
	if err != nil {
		return nil, internal("create task list", err)
	}
	return saved, nil
}

func (s *Service) GetTaskListByID(id int64) (*models.TaskList, error) {
	list, err := s.lists.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, internal("get task list", err)
	}
	return list, nil
}

// GetTaskListsByOwner returns the lists owned by the username. Sharing is
// not reflected here; a user with no owned lists gets a not-found outcome
// rather than an empty collection.
func (s *Service) GetTaskListsByOwner(username string) ([]models.TaskList, error) {
	lists, err := s.lists.FindAllByOwner(username)
	if err != nil {
		return nil, internal("get task lists by owner", err)
	}
	if len(lists) == 0 {
		return nil, ErrListNotFound
	}
	return lists, nil
}

// DeleteTaskListByID removes the list and, with it, every contained task.
func (s *Service) DeleteTaskListByID(id int64) error {
	err := s.lists.DeleteByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrListNotFound
	}
	if err != nil {
		return internal("delete task list", err)
	}
	return nil
}

// ShareTaskList grants the user access to the list. Sharing an already
// shared list is a no-op success. The list is checked before the user so
// the caller learns which reference was missing.
func (s *Service) ShareTaskList(listID int64, username string) error {
	user, err := s.resolveShare(listID, username)
	if err != nil {
		return err
	}
	if err := s.lists.AddShare(listID, user.ID); err != nil {
		return internal("share task list", err)
	}
	return nil
}

// UnshareTaskList revokes access. Removing a user that was never shared
// is a no-op success.
func (s *Service) UnshareTaskList(listID int64, username string) error {
	user, err := s.resolveShare(listID, username)
	if err != nil {
		return err
	}
	if err := s.lists.RemoveShare(listID, user.ID); err != nil {
		return internal("unshare task list", err)
	}
	return nil
}

func (s *Service) resolveShare(listID int64, username string) (*models.User, error) {
	exists, err := s.lists.ExistsByID(listID)
	if err != nil {
		return nil, internal("share task list", err)
	}
	if !exists {
		return nil, ErrListNotFound
	}

	user, err := s.users.FindByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internal("share task list", err)
	}
	return user, nil
}

// UpdateTaskList replaces the stored record wholesale and stamps
// UpdatedAt. A mismatch between the path id and the payload id is a
// malformed request, not a missing record.
func (s *Service) UpdateTaskList(listID int64, list *models.TaskList) (*models.TaskList, error) {
	if listID != list.ID {
		return nil, ErrForbidden
	}

	exists, err := s.lists.ExistsByID(listID)
	if err != nil {
		return nil, internal("update task list", err)
	}
	if !exists {
		return nil, ErrListNotFound
	}

	list.UpdatedAt = nowMillis()
	saved, err := s.lists.Save(list)
	if err != nil {
		return nil, internal("update task list", err)
	}
	return saved, nil
}
