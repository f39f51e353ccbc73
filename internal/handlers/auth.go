package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/note-taking-app/api/internal/auth"
	"github.com/note-taking-app/api/internal/repository"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userInfo is the slice of the user row that login and /me return;
// the password hash never leaves the server.
type userInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func RegisterHandler(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		_, err := users.GetByUsername(r.Context(), req.Username)
		if err == nil {
			respondError(w, http.StatusConflict, "Username already exists")
			return
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			log.Println("Error checking existing user:", err)
			respondError(w, http.StatusInternalServerError, "Error querying the database")
			return
		}

		hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Error creating user")
			return
		}

		userID, err := users.Create(r.Context(), req.Username, string(hashedPass))
		if errors.Is(err, repository.ErrUsernameTaken) {
			// Lost the check-then-insert race; same outcome.
			respondError(w, http.StatusConflict, "Username already exists")
			return
		}
		if err != nil {
			log.Println("Error inserting user:", err)
			respondError(w, http.StatusInternalServerError, "Error querying the database")
			return
		}

		respondJSON(w, http.StatusCreated, envelope{
			"Error":   false,
			"Message": "User registered successfully",
			"UserId":  userID,
		})
	}
}

func LoginHandler(users repository.UserRepository, jwtService *auth.JWTService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		user, err := users.GetByUsername(r.Context(), req.Username)
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same body as a wrong password; do not reveal which
			// field was wrong.
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		if err != nil {
			log.Println("Error fetching user:", err)
			respondError(w, http.StatusInternalServerError, "Error querying the database")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		token, err := jwtService.GenerateToken(user.ID, user.Username)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"Error":   false,
			"Message": "Login successful",
			"User":    userInfo{ID: user.ID, Username: user.Username},
			"Token":   token,
		})
	}
}

func UpdateUsernameHandler(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req struct {
			Username string `json:"username"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Username == "" {
			respondError(w, http.StatusBadRequest, "Username is required")
			return
		}

		taken, err := users.UsernameTakenByOther(r.Context(), req.Username, userID)
		if err != nil {
			log.Println("Error checking username:", err)
			respondError(w, http.StatusInternalServerError, "Failed to update username")
			return
		}
		if taken {
			respondError(w, http.StatusConflict, "Username already taken")
			return
		}

		if err := users.UpdateUsername(r.Context(), userID, req.Username); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				respondError(w, http.StatusConflict, "Username already taken")
				return
			}
			log.Println("Error updating username:", err)
			respondError(w, http.StatusInternalServerError, "Failed to update username")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"Error":   false,
			"Message": "Username updated successfully",
		})
	}
}

func UpdatePasswordHandler(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.CurrentPassword == "" || req.NewPassword == "" {
			respondError(w, http.StatusBadRequest, "Current password and new password are required")
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			log.Println("Error fetching user:", err)
			respondError(w, http.StatusInternalServerError, "Failed to update password")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			respondError(w, http.StatusUnauthorized, "Current password is incorrect")
			return
		}

		hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to update password")
			return
		}

		if err := users.UpdatePassword(r.Context(), userID, string(hashedPass)); err != nil {
			log.Println("Error updating password:", err)
			respondError(w, http.StatusInternalServerError, "Failed to update password")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"Error":   false,
			"Message": "Password updated successfully",
		})
	}
}

// MeHandler resolves the bearer token to its user; it sits behind
// auth.JWTMiddleware.
func MeHandler(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())
		if userID == 0 {
			respondError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}

		user, err := users.GetByID(r.Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			log.Println("Error fetching user:", err)
			respondError(w, http.StatusInternalServerError, "Error querying the database")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"Error":   false,
			"Message": "Success",
			"User":    userInfo{ID: user.ID, Username: user.Username},
		})
	}
}
