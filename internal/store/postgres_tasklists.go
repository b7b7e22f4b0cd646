package store

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/rromanowicz/task-list/internal/models"
)

type PostgresTaskLists struct {
	db *sql.DB
}

func (s *PostgresTaskLists) FindByID(id int64) (*models.TaskList, error) {
	row := s.db.QueryRow(
		"SELECT id, name, owner, created_at, updated_at FROM task_lists WHERE id = $1", id)

	list := models.TaskList{}
	err := row.Scan(&list.ID, &list.Name, &list.Owner, &list.CreatedAt, &list.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.hydrate(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *PostgresTaskLists) FindAllByOwner(username string) ([]models.TaskList, error) {
	rows, err := s.db.Query(
		"SELECT id, name, owner, created_at, updated_at FROM task_lists WHERE owner = $1 ORDER BY id",
		username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := make([]models.TaskList, 0)
	for rows.Next() {
		list := models.TaskList{}
		err = rows.Scan(&list.ID, &list.Name, &list.Owner, &list.CreatedAt, &list.UpdatedAt)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range lists {
		if err := s.hydrate(&lists[i]); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

func (s *PostgresTaskLists) hydrate(list *models.TaskList) error {
	rows, err := s.db.Query(`
		SELECT u.id, u.username
		FROM task_list_shares s JOIN users u ON u.id = s.user_id
		WHERE s.list_id = $1
		ORDER BY u.id`, list.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	list.SharedWith = nil
	for rows.Next() {
		user := models.User{}
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return err
		}
		list.SharedWith = append(list.SharedWith, user)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tasks, err := queryTasks(s.db,
		"SELECT id, task_list_id, name, description, completed, completed_at, created_at, updated_at FROM tasks WHERE task_list_id = $1 ORDER BY id",
		list.ID)
	if err != nil {
		return err
	}
	list.Tasks = tasks
	return nil
}

func (s *PostgresTaskLists) ExistsByID(id int64) (bool, error) {
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM task_lists WHERE id = $1)", id)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Save upserts the list, its share set and its tasks as one transaction.
// The stored record is replaced wholesale: shares and tasks absent from the
// given list are removed.
func (s *PostgresTaskLists) Save(list *models.TaskList) (*models.TaskList, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	id := list.ID
	if id == 0 {
		row := tx.QueryRow(
			"INSERT INTO task_lists(name, owner, created_at, updated_at) VALUES($1, $2, $3, $4) RETURNING id",
			list.Name, list.Owner, list.CreatedAt, list.UpdatedAt)
		if err := row.Scan(&id); err != nil {
			return nil, err
		}
	} else {
		result, err := tx.Exec(
			"UPDATE task_lists SET name = $1, owner = $2, created_at = $3, updated_at = $4 WHERE id = $5",
			list.Name, list.Owner, list.CreatedAt, list.UpdatedAt, id)
		if err != nil {
			return nil, err
		}
		if err := checkAffected(result); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec("DELETE FROM task_list_shares WHERE list_id = $1", id); err != nil {
		return nil, err
	}
	for _, user := range list.SharedWith {
		_, err := tx.Exec(
			"INSERT INTO task_list_shares(list_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
			id, user.ID)
		if err != nil {
			return nil, err
		}
	}

	kept := make([]int64, 0, len(list.Tasks))
	for i := range list.Tasks {
		task := &list.Tasks[i]
		task.TaskListID = id
		if task.ID == 0 {
			row := tx.QueryRow(
				"INSERT INTO tasks(task_list_id, name, description, completed, completed_at, created_at, updated_at) VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id",
				task.TaskListID, task.Name, task.Description, task.Completed,
				nullableMillis(task.CompletedAt), task.CreatedAt, task.UpdatedAt)
			if err := row.Scan(&task.ID); err != nil {
				return nil, err
			}
		} else {
			_, err := tx.Exec(
				"UPDATE tasks SET name = $1, description = $2, completed = $3, completed_at = $4, updated_at = $5 WHERE id = $6 AND task_list_id = $7",
				task.Name, task.Description, task.Completed,
				nullableMillis(task.CompletedAt), task.UpdatedAt, task.ID, id)
			if err != nil {
				return nil, err
			}
		}
		kept = append(kept, task.ID)
	}
	_, err = tx.Exec(
		"DELETE FROM tasks WHERE task_list_id = $1 AND NOT (id = ANY($2))",
		id, pq.Array(kept))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.FindByID(id)
}

// DeleteByID removes the list, its share set and its tasks as one
// transaction so a failure cannot leave orphaned tasks behind.
func (s *PostgresTaskLists) DeleteByID(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks WHERE task_list_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM task_list_shares WHERE list_id = $1", id); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM task_lists WHERE id = $1", id)
	if err != nil {
		return err
	}
	if err := checkAffected(result); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *PostgresTaskLists) AddShare(listID, userID int64) error {
	_, err := s.db.Exec(
		"INSERT INTO task_list_shares(list_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
		listID, userID)
	return err
}

func (s *PostgresTaskLists) RemoveShare(listID, userID int64) error {
	_, err := s.db.Exec(
		"DELETE FROM task_list_shares WHERE list_id = $1 AND user_id = $2",
		listID, userID)
	return err
}
