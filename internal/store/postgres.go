package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rromanowicz/task-list/internal/models"
)

// ErrConflict reports a uniqueness violation, e.g. a duplicate username.
var ErrConflict = errors.New("duplicate record")

// Postgres bundles the per-entity stores backed by a single database/sql
// connection pool.
type Postgres struct {
	db     *sql.DB
	Tokens *PostgresTokens
	Users  *PostgresUsers
	Lists  *PostgresTaskLists
	Tasks  *PostgresTasks
}

func Open(databaseURL string) (*Postgres, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &Postgres{
		db:     db,
		Tokens: &PostgresTokens{db: db},
		Users:  &PostgresUsers{db: db},
		Lists:  &PostgresTaskLists{db: db},
		Tasks:  &PostgresTasks{db: db},
	}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

// EnsureSchema creates the backing tables if they do not exist. Cascade
// deletion of tasks is handled explicitly in TaskLists.DeleteByID, not by
// the schema.
func (p *Postgres) EnsureSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE
		);
		CREATE TABLE IF NOT EXISTS api_tokens (
			token TEXT PRIMARY KEY,
			active BOOLEAN NOT NULL DEFAULT TRUE
		);
		CREATE TABLE IF NOT EXISTS task_lists (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			owner TEXT NOT NULL,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS task_list_shares (
			list_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			PRIMARY KEY (list_id, user_id)
		);
		CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			task_list_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at BIGINT,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		);`)
	return err
}

type PostgresTokens struct {
	db *sql.DB
}

func (s *PostgresTokens) ListActiveTokens() ([]string, error) {
	rows, err := s.db.Query("SELECT token FROM api_tokens WHERE active")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

type PostgresUsers struct {
	db *sql.DB
}

func (s *PostgresUsers) FindByID(id int64) (*models.User, error) {
	row := s.db.QueryRow("SELECT id, username FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (s *PostgresUsers) FindByUsername(username string) (*models.User, error) {
	row := s.db.QueryRow("SELECT id, username FROM users WHERE username = $1", username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := models.User{}
	err := row.Scan(&user.ID, &user.Username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PostgresUsers) Save(user *models.User) (*models.User, error) {
	row := s.db.QueryRow(
		"INSERT INTO users(username) VALUES($1) RETURNING id, username",
		user.Username)

	saved := models.User{}
	err := row.Scan(&saved.ID, &saved.Username)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code.Name() == "unique_violation" {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &saved, nil
}

func (s *PostgresUsers) DeleteByID(id int64) error {
	result, err := s.db.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
