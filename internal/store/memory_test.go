package store

import (
	"errors"
	"testing"

	"github.com/rromanowicz/task-list/internal/models"
)

func TestMemoryTaskListsDeleteCascades(t *testing.T) {
	mem := NewMemory()

	list, err := mem.Lists.Save(&models.TaskList{
		Name:  "groceries",
		Owner: "alice",
		Tasks: []models.Task{{Name: "buy milk"}, {Name: "buy bread"}},
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := mem.Lists.DeleteByID(list.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}

	tasks, err := mem.Tasks.FindAllByListID(list.ID)
	if err != nil {
		t.Fatalf("FindAllByListID() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("%d tasks survived list deletion, want 0", len(tasks))
	}

	if err := mem.Lists.DeleteByID(list.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteByID() repeated error = %v, want ErrNotFound", err)
	}
}

func TestMemoryTaskListsSaveReplacesWholesale(t *testing.T) {
	mem := NewMemory()

	list, err := mem.Lists.Save(&models.TaskList{
		Name:  "groceries",
		Owner: "alice",
		Tasks: []models.Task{{Name: "buy milk"}, {Name: "buy bread"}},
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Dropping a task from the record removes it from storage.
	list.Tasks = list.Tasks[:1]
	saved, err := mem.Lists.Save(list)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(saved.Tasks) != 1 {
		t.Fatalf("saved list has %d tasks, want 1", len(saved.Tasks))
	}

	tasks, err := mem.Tasks.FindAllByListID(list.ID)
	if err != nil {
		t.Fatalf("FindAllByListID() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("storage has %d tasks, want 1", len(tasks))
	}
}

func TestMemoryTaskListsSaveUnknownID(t *testing.T) {
	mem := NewMemory()

	_, err := mem.Lists.Save(&models.TaskList{ID: 42, Name: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Save() with unknown id error = %v, want ErrNotFound", err)
	}
}

func TestMemoryAddShareIdempotent(t *testing.T) {
	mem := NewMemory()

	user, err := mem.Users.Save(&models.User{Username: "bob"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	list, err := mem.Lists.Save(&models.TaskList{Name: "groceries", Owner: "alice"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := mem.Lists.AddShare(list.ID, user.ID); err != nil {
			t.Fatalf("AddShare() error = %v", err)
		}
	}

	shared, err := mem.Lists.FindByID(list.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(shared.SharedWith) != 1 {
		t.Errorf("SharedWith has %d entries, want 1", len(shared.SharedWith))
	}

	if err := mem.Lists.RemoveShare(list.ID, user.ID); err != nil {
		t.Fatalf("RemoveShare() error = %v", err)
	}
	if err := mem.Lists.RemoveShare(list.ID, user.ID); err != nil {
		t.Fatalf("RemoveShare() repeated error = %v", err)
	}
}

func TestMemoryUsersConflict(t *testing.T) {
	mem := NewMemory()

	if _, err := mem.Users.Save(&models.User{Username: "alice"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := mem.Users.Save(&models.User{Username: "alice"}); !errors.Is(err, ErrConflict) {
		t.Errorf("Save() duplicate error = %v, want ErrConflict", err)
	}
}

func TestMemoryTasksFindIfBelongsToList(t *testing.T) {
	mem := NewMemory()

	listA, err := mem.Lists.Save(&models.TaskList{Name: "a", Owner: "alice"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	listB, err := mem.Lists.Save(&models.TaskList{Name: "b", Owner: "alice"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	task, err := mem.Tasks.Save(&models.Task{TaskListID: listB.ID, Name: "belongs to b"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := mem.Tasks.FindIfBelongsToList(listB.ID, task.ID); err != nil {
		t.Errorf("FindIfBelongsToList(own list) error = %v", err)
	}
	if _, err := mem.Tasks.FindIfBelongsToList(listA.ID, task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindIfBelongsToList(wrong list) error = %v, want ErrNotFound", err)
	}
}
