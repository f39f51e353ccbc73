package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/note-taking-app/api/internal/models"
)

// CategoryRepository covers the read-only reference data; categories
// are seeded at startup, never written through the API.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type SQLCategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *SQLCategoryRepository {
	return &SQLCategoryRepository{db: db}
}

func (r *SQLCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	const op = "repository.categories.List"
	rows, err := sq.Select("id", "name", "color", "description").
		From("categories").
		OrderBy("name ASC").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		// description is nullable; rows seeded out of band may omit it.
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &description); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		c.Description = description.String
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

func (r *SQLCategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const op = "repository.categories.Exists"
	row := sq.Select("id").
		From("categories").
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		QueryRowContext(ctx)

	var found int64
	err := row.Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}
