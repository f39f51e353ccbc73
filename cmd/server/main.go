package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorilla "github.com/gorilla/handlers"

	"github.com/note-taking-app/api/internal/auth"
	"github.com/note-taking-app/api/internal/config"
	"github.com/note-taking-app/api/internal/db"
	"github.com/note-taking-app/api/internal/handlers"
	"github.com/note-taking-app/api/internal/repository"
)

func main() {
	cfg := config.Load()

	dbConn := db.Init(cfg)
	defer dbConn.Close()

	users := repository.NewUserRepository(dbConn)
	notes := repository.NewNoteRepository(dbConn)
	categories := repository.NewCategoryRepository(dbConn)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	router := handlers.NewRouter(users, notes, categories, jwtService)

	// The mobile client calls from a different origin, so CORS stays
	// wide open.
	handler := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(router)
	handler = gorilla.LoggingHandler(os.Stdout, handler)
	handler = gorilla.RecoveryHandler(
		gorilla.PrintRecoveryStack(cfg.Env == "development"),
	)(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
