package main

import (
	"log"
	"net/http"
	"time"

	"pikirBack/internal/config"
	"pikirBack/internal/handlers"
	"pikirBack/internal/render"
	"pikirBack/internal/repositories"
	"pikirBack/internal/services"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	reviewsHandler *handlers.ReviewHandler
	reviewsRepo    *repositories.ReviewRepository
}

func initializeApp(cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	reviewsRepo := repositories.NewReviewRepository(
		&http.Client{},
		cfg.Source.URL,
		time.Duration(cfg.Source.TimeoutSeconds)*time.Second,
	)

	// Services
	reviewsService := &services.ReviewService{ReviewsRepo: reviewsRepo}

	// Handlers
	renderer := render.NewCardRenderer(cfg.Page.Title, cfg.Page.ContainerID)
	reviewHandler := &handlers.ReviewHandler{
		Service:  reviewsService,
		Renderer: renderer,
		ErrorLog: errorLog,
	}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		reviewsHandler: reviewHandler,
		reviewsRepo:    reviewsRepo,
	}
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
