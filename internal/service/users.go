package service

import (
	"errors"

	"github.com/rromanowicz/task-list/internal/models"
	"github.com/rromanowicz/task-list/internal/store"
)

// CreateUser registers a new user. Registration is open: it is the one
// operation that does not pass the access gate.
func (s *Service) CreateUser(user *models.User) (*models.User, error) {
	if user.Username == "" {
		return nil, internal("create user", errors.New("username is required"))
	}

	_, err := s.users.FindByUsername(user.Username)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, internal("create user", err)
	}

	saved, err := s.users.Save(user)
	if errors.Is(err, store.ErrConflict) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, internal("create user", err)
	}
	return saved, nil
}

func (s *Service) GetUserByID(id int64) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internal("get user", err)
	}
	return user, nil
}

func (s *Service) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internal("get user", err)
	}
	return user, nil
}

// DeleteUserByID removes the user record only. Task lists the user owns
// or is shared on are left untouched; dangling owner references are a
// known property of the data model.
func (s *Service) DeleteUserByID(id int64) error {
	err := s.users.DeleteByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return internal("delete user", err)
	}
	return nil
}

func (s *Service) DeleteUserByUsername(username string) error {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return internal("delete user", err)
	}
	return s.DeleteUserByID(user.ID)
}
