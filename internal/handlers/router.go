package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/note-taking-app/api/internal/auth"
	"github.com/note-taking-app/api/internal/repository"
)

// NewRouter wires every route to its handler. Middleware that wraps
// the whole server (CORS, logging, recovery) is applied by the caller.
func NewRouter(
	users repository.UserRepository,
	notes repository.NoteRepository,
	categories repository.CategoryRepository,
	jwtService *auth.JWTService,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Server is running"})
	}).Methods("GET")

	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", RegisterHandler(users)).Methods("POST")
	authRouter.HandleFunc("/login", LoginHandler(users, jwtService)).Methods("POST")
	authRouter.HandleFunc("/update-username/{id}", UpdateUsernameHandler(users)).Methods("PUT")
	authRouter.HandleFunc("/update-password/{id}", UpdatePasswordHandler(users)).Methods("PUT")
	authRouter.Handle("/me", auth.JWTMiddleware(jwtService)(MeHandler(users))).Methods("GET")

	notesRouter := r.PathPrefix("/notes").Subrouter()
	notesRouter.HandleFunc("/categories", CategoriesHandler(categories)).Methods("GET")
	notesRouter.HandleFunc("", ListNotesHandler(notes)).Methods("GET")
	notesRouter.HandleFunc("", CreateNoteHandler(notes)).Methods("POST")
	notesRouter.HandleFunc("/{id}", UpdateNoteHandler(notes, categories)).Methods("PUT")
	notesRouter.HandleFunc("/{id}", DeleteNoteHandler(notes)).Methods("DELETE")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, map[string]string{"message": "Route not found"})
	})

	return r
}
