package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/note-taking-app/api/internal/models"
)

type NoteRepository interface {
	// List returns notes newest-first, joined with their category.
	// userID 0 means no owner filter.
	List(ctx context.Context, userID int64) ([]models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	Create(ctx context.Context, userID int64, title, content string) (*models.Note, error)
	Update(ctx context.Context, id int64, title, content string, categoryID *int64) error
	Delete(ctx context.Context, id int64) error
}

type SQLNoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *SQLNoteRepository {
	return &SQLNoteRepository{db: db}
}

func noteSelect() sq.SelectBuilder {
	return sq.Select(
		"n.id", "n.title", "n.content", "n.user_id", "n.category_id",
		"n.created_at", "n.updated_at",
		"c.name AS category_name", "c.color AS category_color",
	).
		From("notes n").
		LeftJoin("categories c ON n.category_id = c.id")
}

func scanNote(row sq.RowScanner) (*models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.UserID, &n.CategoryID,
		&n.CreatedAt, &n.UpdatedAt,
		&n.CategoryName, &n.CategoryColor,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *SQLNoteRepository) List(ctx context.Context, userID int64) ([]models.Note, error) {
	const op = "repository.notes.List"
	q := noteSelect().OrderBy("n.created_at DESC")
	if userID != 0 {
		q = q.Where(sq.Eq{"n.user_id": userID})
	}

	rows, err := q.RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return notes, nil
}

func (r *SQLNoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	const op = "repository.notes.GetByID"
	row := noteSelect().
		Where(sq.Eq{"n.id": id}).
		RunWith(r.db).
		QueryRowContext(ctx)

	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *SQLNoteRepository) Create(ctx context.Context, userID int64, title, content string) (*models.Note, error) {
	const op = "repository.notes.Create"
	now := time.Now()
	res, err := sq.Insert("notes").
		Columns("title", "content", "user_id", "created_at", "updated_at").
		Values(title, content, userID, now, now).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	return r.GetByID(ctx, id)
}

// Update rewrites title, content and updated_at; category_id is only
// touched when provided. user_id is never part of the statement.
func (r *SQLNoteRepository) Update(ctx context.Context, id int64, title, content string, categoryID *int64) error {
	const op = "repository.notes.Update"
	q := sq.Update("notes").
		Set("title", title).
		Set("content", content).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id})
	if categoryID != nil {
		q = q.Set("category_id", *categoryID)
	}

	res, err := q.RunWith(r.db).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (r *SQLNoteRepository) Delete(ctx context.Context, id int64) error {
	const op = "repository.notes.Delete"
	res, err := sq.Delete("notes").
		Where(sq.Eq{"id": id}).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
