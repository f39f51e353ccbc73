package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/note-taking-app/api/internal/models"
	"github.com/note-taking-app/api/internal/repository"
)

// In-memory repository fakes; handlers are exercised through the real
// router against these.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, username, hashedPassword string) (int64, error) {
	for _, u := range f.users {
		if u.Username == username {
			return 0, repository.ErrUsernameTaken
		}
	}
	f.nextID++
	f.users[f.nextID] = &models.User{
		ID:        f.nextID,
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) UsernameTakenByOther(_ context.Context, username string, userID int64) (bool, error) {
	for _, u := range f.users {
		if u.Username == username && u.ID != userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateUsername(_ context.Context, id int64, username string) error {
	if u, ok := f.users[id]; ok {
		u.Username = username
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hashedPassword string) error {
	if u, ok := f.users[id]; ok {
		u.Password = hashedPassword
	}
	return nil
}

type fakeNoteRepo struct {
	nextID     int64
	notes      map[int64]*models.Note
	categories *fakeCategoryRepo
}

func newFakeNoteRepo(categories *fakeCategoryRepo) *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[int64]*models.Note{}, categories: categories}
}

func (f *fakeNoteRepo) joined(n models.Note) models.Note {
	if n.CategoryID != nil && f.categories != nil {
		for _, c := range f.categories.categories {
			if c.ID == *n.CategoryID {
				name, color := c.Name, c.Color
				n.CategoryName = &name
				n.CategoryColor = &color
			}
		}
	}
	return n
}

func (f *fakeNoteRepo) List(_ context.Context, userID int64) ([]models.Note, error) {
	list := []models.Note{}
	for _, n := range f.notes {
		if userID != 0 && n.UserID != userID {
			continue
		}
		list = append(list, f.joined(*n))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (f *fakeNoteRepo) GetByID(_ context.Context, id int64) (*models.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	copied := f.joined(*n)
	return &copied, nil
}

func (f *fakeNoteRepo) Create(_ context.Context, userID int64, title, content string) (*models.Note, error) {
	f.nextID++
	now := time.Now()
	n := &models.Note{
		ID:        f.nextID,
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.notes[n.ID] = n
	copied := *n
	return &copied, nil
}

func (f *fakeNoteRepo) Update(_ context.Context, id int64, title, content string, categoryID *int64) error {
	n, ok := f.notes[id]
	if !ok {
		return repository.ErrNoteNotFound
	}
	n.Title = title
	n.Content = content
	if categoryID != nil {
		cid := *categoryID
		n.CategoryID = &cid
	}
	n.UpdatedAt = time.Now()
	return nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.notes[id]; !ok {
		return repository.ErrNoteNotFound
	}
	delete(f.notes, id)
	return nil
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: []models.Category{
		{ID: 1, Name: "Personal", Color: "#FF6B6B", Description: "Everyday personal notes"},
		{ID: 2, Name: "Work", Color: "#4ECDC4", Description: "Work-related notes"},
	}}
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	list := append([]models.Category{}, f.categories...)
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}
