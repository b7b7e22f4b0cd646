package store

import (
	"database/sql"

	"github.com/rromanowicz/task-list/internal/models"
)

type PostgresTasks struct {
	db *sql.DB
}

func (s *PostgresTasks) FindAllByListID(listID int64) ([]models.Task, error) {
	return queryTasks(s.db,
		"SELECT id, task_list_id, name, description, completed, completed_at, created_at, updated_at FROM tasks WHERE task_list_id = $1 ORDER BY id",
		listID)
}

func (s *PostgresTasks) FindIfBelongsToList(listID, taskID int64) (*models.Task, error) {
	row := s.db.QueryRow(
		"SELECT id, task_list_id, name, description, completed, completed_at, created_at, updated_at FROM tasks WHERE id = $1 AND task_list_id = $2",
		taskID, listID)

	task := models.Task{}
	var completedAt sql.NullInt64
	err := row.Scan(&task.ID, &task.TaskListID, &task.Name, &task.Description,
		&task.Completed, &completedAt, &task.CreatedAt, &task.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		task.CompletedAt = &completedAt.Int64
	}
	return &task, nil
}

func (s *PostgresTasks) Save(task *models.Task) (*models.Task, error) {
	saved := *task
	if task.ID == 0 {
		row := s.db.QueryRow(
			"INSERT INTO tasks(task_list_id, name, description, completed, completed_at, created_at, updated_at) VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id",
			task.TaskListID, task.Name, task.Description, task.Completed,
			nullableMillis(task.CompletedAt), task.CreatedAt, task.UpdatedAt)
		if err := row.Scan(&saved.ID); err != nil {
			return nil, err
		}
		return &saved, nil
	}

	result, err := s.db.Exec(
		"UPDATE tasks SET name = $1, description = $2, completed = $3, completed_at = $4, updated_at = $5 WHERE id = $6",
		task.Name, task.Description, task.Completed,
		nullableMillis(task.CompletedAt), task.UpdatedAt, task.ID)
	if err != nil {
		return nil, err
	}
	if err := checkAffected(result); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *PostgresTasks) DeleteByID(id int64) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func queryTasks(db *sql.DB, query string, args ...any) ([]models.Task, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task := models.Task{}
		var completedAt sql.NullInt64
		err = rows.Scan(&task.ID, &task.TaskListID, &task.Name, &task.Description,
			&task.Completed, &completedAt, &task.CreatedAt, &task.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if completedAt.Valid {
			task.CompletedAt = &completedAt.Int64
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func nullableMillis(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
