package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/note-taking-app/api/internal/models"
)

// UserRepository is the persistence surface the auth handlers depend
// on; tests substitute an in-memory fake.
type UserRepository interface {
	Create(ctx context.Context, username, hashedPassword string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UsernameTakenByOther(ctx context.Context, username string, userID int64) (bool, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}

type SQLUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) Create(ctx context.Context, username, hashedPassword string) (int64, error) {
	const op = "repository.users.Create"
	res, err := sq.Insert("users").
		Columns("username", "password").
		Values(username, hashedPassword).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	return id, nil
}

func (r *SQLUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "repository.users.GetByUsername"
	row := sq.Select("id", "username", "password", "created_at").
		From("users").
		Where(sq.Eq{"username": username}).
		RunWith(r.db).
		QueryRowContext(ctx)

	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (r *SQLUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "repository.users.GetByID"
	row := sq.Select("id", "username", "password", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		QueryRowContext(ctx)

	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// UsernameTakenByOther reports whether username is held by a user
// other than userID.
func (r *SQLUserRepository) UsernameTakenByOther(ctx context.Context, username string, userID int64) (bool, error) {
	const op = "repository.users.UsernameTakenByOther"
	row := sq.Select("id").
		From("users").
		Where(sq.Eq{"username": username}).
		Where(sq.NotEq{"id": userID}).
		RunWith(r.db).
		QueryRowContext(ctx)

	var id int64
	err := row.Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (r *SQLUserRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	const op = "repository.users.UpdateUsername"
	_, err := sq.Update("users").
		Set("username", username).
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *SQLUserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	const op = "repository.users.UpdatePassword"
	_, err := sq.Update("users").
		Set("password", hashedPassword).
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
