package store

import (
	"errors"

	"github.com/rromanowicz/task-list/internal/models"
)

// ErrNotFound reports that the requested record does not exist. Any other
// error returned by a store is a storage failure.
var ErrNotFound = errors.New("record not found")

// TokenStore is the source of currently-valid access tokens. The access
// gate queries it once per process lifetime.
type TokenStore interface {
	ListActiveTokens() ([]string, error)
}

type UserStore interface {
	FindByID(id int64) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Save(user *models.User) (*models.User, error)
	DeleteByID(id int64) error
}

// TaskListStore persists lists together with their share set and tasks.
// Save and DeleteByID treat the list and its children as one unit: a
// partial write must not leave tasks referencing a missing list.
type TaskListStore interface {
	FindByID(id int64) (*models.TaskList, error)
	FindAllByOwner(username string) ([]models.TaskList, error)
	ExistsByID(id int64) (bool, error)
	Save(list *models.TaskList) (*models.TaskList, error)
	DeleteByID(id int64) error
	AddShare(listID, userID int64) error
	RemoveShare(listID, userID int64) error
}

type TaskStore interface {
	FindAllByListID(listID int64) ([]models.Task, error)
	FindIfBelongsToList(listID, taskID int64) (*models.Task, error)
	Save(task *models.Task) (*models.Task, error)
	DeleteByID(id int64) error
}
