package service

import (
	"errors"
	"testing"

	"github.com/rromanowicz/task-list/internal/models"
)

// checkCompletionInvariant fails the test unless CompletedAt is non-nil
// exactly when Completed is true.
func checkCompletionInvariant(t *testing.T, task *models.Task) {
	t.Helper()
	if task.Completed && task.CompletedAt == nil {
		t.Errorf("task %d completed with nil CompletedAt", task.ID)
	}
	if !task.Completed && task.CompletedAt != nil {
		t.Errorf("task %d not completed with CompletedAt = %d", task.ID, *task.CompletedAt)
	}
}

func TestAddTaskAndGetAll(t *testing.T) {
	svc := newTestService()

	if _, err := svc.CreateUser(&models.User{Username: "alice"}); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	list, err := svc.CreateTaskList(&models.TaskList{Name: "groceries", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}

	added, err := svc.AddTask(list.ID, &models.Task{Name: "buy milk"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if added.Name != "buy milk" {
		t.Errorf("AddTask() returned %q, want %q", added.Name, "buy milk")
	}
	if added.TaskListID != list.ID {
		t.Errorf("AddTask() task list id = %d, want %d", added.TaskListID, list.ID)
	}

	tasks, err := svc.GetAllTasks(list.ID)
	if err != nil {
		t.Fatalf("GetAllTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("GetAllTasks() returned %d tasks, want 1", len(tasks))
	}
	if tasks[0].Completed {
		t.Error("new task is completed, want false")
	}
	if tasks[0].CompletedAt != nil {
		t.Error("new task has non-nil CompletedAt")
	}
}

// AddTask returns the task with the maximum CreatedAt after the append,
// which is the one just added.
func TestAddTaskReturnsNewest(t *testing.T) {
	svc := newTestService()

	list, err := svc.CreateTaskList(&models.TaskList{Name: "groceries", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}

	if _, err := svc.AddTask(list.ID, &models.Task{Name: "first"}); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	second, err := svc.AddTask(list.ID, &models.Task{Name: "second"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if second.Name != "second" {
		t.Errorf("AddTask() returned %q, want the task just added", second.Name)
	}
}

func TestAddTaskUnknownList(t *testing.T) {
	svc := newTestService()

	if _, err := svc.AddTask(999, &models.Task{Name: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddTask(999) error = %v, want ErrNotFound", err)
	}
}

// An unknown list id yields an empty collection, not a not-found outcome.
func TestGetAllTasksUnknownList(t *testing.T) {
	svc := newTestService()

	tasks, err := svc.GetAllTasks(999)
	if err != nil {
		t.Fatalf("GetAllTasks(999) error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("GetAllTasks(999) returned %d tasks, want 0", len(tasks))
	}
}

func TestDeleteTaskOwnershipCheck(t *testing.T) {
	svc := newTestService()

	listA, err := svc.CreateTaskList(&models.TaskList{Name: "a", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}
	listB, err := svc.CreateTaskList(&models.TaskList{Name: "b", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}
	task, err := svc.AddTask(listB.ID, &models.Task{Name: "belongs to b"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	// Deleting through the wrong list id must not delete the task.
	if err := svc.DeleteTask(listA.ID, task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteTask(wrong list) error = %v, want ErrNotFound", err)
	}
	tasks, err := svc.GetAllTasks(listB.ID)
	if err != nil {
		t.Fatalf("GetAllTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("task was deleted through the wrong list id")
	}

	if err := svc.DeleteTask(listB.ID, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	tasks, err = svc.GetAllTasks(listB.ID)
	if err != nil {
		t.Fatalf("GetAllTasks() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("GetAllTasks() returned %d tasks after delete, want 0", len(tasks))
	}
}

func TestToggleCompleted(t *testing.T) {
	svc := newTestService()

	list, err := svc.CreateTaskList(&models.TaskList{Name: "groceries", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}
	task, err := svc.AddTask(list.ID, &models.Task{Name: "buy milk"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	done, err := svc.ToggleCompleted(list.ID, task.ID, true)
	if err != nil {
		t.Fatalf("ToggleCompleted(true) error = %v", err)
	}
	checkCompletionInvariant(t, done)
	if done.CompletedAt == nil {
		t.Fatal("CompletedAt is nil after completing")
	}
	if *done.CompletedAt < done.CreatedAt {
		t.Errorf("CompletedAt = %d is before CreatedAt = %d", *done.CompletedAt, done.CreatedAt)
	}
	if done.UpdatedAt < task.UpdatedAt {
		t.Errorf("UpdatedAt = %d went backwards from %d", done.UpdatedAt, task.UpdatedAt)
	}

	reopened, err := svc.ToggleCompleted(list.ID, task.ID, false)
	if err != nil {
		t.Fatalf("ToggleCompleted(false) error = %v", err)
	}
	checkCompletionInvariant(t, reopened)

	if _, err := svc.ToggleCompleted(list.ID+1, task.ID, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleCompleted(wrong list) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateTask(t *testing.T) {
	svc := newTestService()

	list, err := svc.CreateTaskList(&models.TaskList{Name: "groceries", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}
	task, err := svc.AddTask(list.ID, &models.Task{Name: "buy milk"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	task.Name = "buy oat milk"
	task.Completed = true
	updated, err := svc.UpdateTask(list.ID, task.ID, task)
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if updated.Name != "buy oat milk" {
		t.Errorf("UpdateTask() name = %q, want %q", updated.Name, "buy oat milk")
	}
	checkCompletionInvariant(t, updated)

	updated.Completed = false
	updated.CompletedAt = nil
	reopened, err := svc.UpdateTask(list.ID, task.ID, updated)
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	checkCompletionInvariant(t, reopened)
}

func TestUpdateTaskIDMismatch(t *testing.T) {
	svc := newTestService()

	list, err := svc.CreateTaskList(&models.TaskList{Name: "groceries", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}
	task, err := svc.AddTask(list.ID, &models.Task{Name: "buy milk"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	_, err = svc.UpdateTask(list.ID, task.ID+1, task)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("UpdateTask() with mismatched id error = %v, want ErrForbidden", err)
	}
}

func TestUpdateTaskOwnershipCheck(t *testing.T) {
	svc := newTestService()

	listA, err := svc.CreateTaskList(&models.TaskList{Name: "a", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}
	listB, err := svc.CreateTaskList(&models.TaskList{Name: "b", Owner: "alice"})
	if err != nil {
		t.Fatalf("CreateTaskList() error = %v", err)
	}
	task, err := svc.AddTask(listB.ID, &models.Task{Name: "belongs to b"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if _, err := svc.UpdateTask(listA.ID, task.ID, task); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTask(wrong list) error = %v, want ErrNotFound", err)
	}
}
