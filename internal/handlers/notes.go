package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/note-taking-app/api/internal/repository"
)

func CategoriesHandler(categories repository.CategoryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := categories.List(r.Context())
		if err != nil {
			log.Println("Error fetching categories:", err)
			respondError(w, http.StatusInternalServerError, "Error fetching categories")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"Error":      false,
			"Message":    "Success",
			"categories": list,
		})
	}
}

func ListNotesHandler(notes repository.NoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userID int64
		if raw := r.URL.Query().Get("user_id"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid user_id")
				return
			}
			userID = parsed
		}

		list, err := notes.List(r.Context(), userID)
		if err != nil {
			log.Println("Error fetching notes:", err)
			respondError(w, http.StatusInternalServerError, "Error fetching notes")
			return
		}

		// A user with no notes gets an empty array, not an error.
		respondJSON(w, http.StatusOK, envelope{
			"Error":   false,
			"Message": "Success",
			"notes":   list,
		})
	}
}

func CreateNoteHandler(notes repository.NoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title   string `json:"title"`
			Content string `json:"content"`
			UserID  int64  `json:"user_id"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" || req.Content == "" {
			respondError(w, http.StatusBadRequest, "Title and content are required")
			return
		}

		note, err := notes.Create(r.Context(), req.UserID, req.Title, req.Content)
		if err != nil {
			log.Println("Error creating note:", err)
			respondError(w, http.StatusInternalServerError, "Failed to create note")
			return
		}

		respondJSON(w, http.StatusCreated, envelope{
			"Error":   false,
			"Message": "Note created successfully",
			"note":    note,
		})
	}
}

func UpdateNoteHandler(notes repository.NoteRepository, categories repository.CategoryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}

		var req struct {
			Title      string `json:"title"`
			Content    string `json:"content"`
			CategoryID *int64 `json:"category_id"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" || req.Content == "" {
			respondError(w, http.StatusBadRequest, "Title and content are required")
			return
		}

		if _, err := notes.GetByID(r.Context(), noteID); err != nil {
			if errors.Is(err, repository.ErrNoteNotFound) {
				respondError(w, http.StatusNotFound, "Note not found")
				return
			}
			log.Println("Error fetching note:", err)
			respondError(w, http.StatusInternalServerError, "Error updating note")
			return
		}

		// A category may only be assigned if it exists.
		if req.CategoryID != nil {
			exists, err := categories.Exists(r.Context(), *req.CategoryID)
			if err != nil {
				log.Println("Error checking category:", err)
				respondError(w, http.StatusInternalServerError, "Error updating note")
				return
			}
			if !exists {
				respondError(w, http.StatusBadRequest, "Category does not exist")
				return
			}
		}

		if err := notes.Update(r.Context(), noteID, req.Title, req.Content, req.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNoteNotFound) {
				respondError(w, http.StatusNotFound, "Note not found")
				return
			}
			log.Println("Error updating note:", err)
			respondError(w, http.StatusInternalServerError, "Error updating note")
			return
		}

		updated, err := notes.GetByID(r.Context(), noteID)
		if err != nil {
			log.Println("Error fetching updated note:", err)
			respondError(w, http.StatusInternalServerError, "Error updating note")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"Error":   false,
			"Message": "Note updated successfully",
			"note":    updated,
		})
	}
}

func DeleteNoteHandler(notes repository.NoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			respondError(w, http.StatusNotFound, "Note not found")
			return
		}

		if err := notes.Delete(r.Context(), noteID); err != nil {
			if errors.Is(err, repository.ErrNoteNotFound) {
				respondError(w, http.StatusNotFound, "Note not found")
				return
			}
			log.Println("Error deleting note:", err)
			respondError(w, http.StatusInternalServerError, "Error deleting note")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"Error":   false,
			"Message": "Note deleted successfully",
		})
	}
}
