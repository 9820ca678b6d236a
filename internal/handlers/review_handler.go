package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"pikirBack/internal/models"
	"pikirBack/internal/render"
	"pikirBack/internal/repositories"
	"pikirBack/internal/services"
)

type ReviewHandler struct {
	Service  *services.ReviewService
	Renderer *render.CardRenderer
	ErrorLog *log.Logger
}

// ReviewsPage runs the full render pipeline for one request: fetch the source
// document, decode it, and append one card per record to the page container.
// Retrieval and decode failures collapse into the same path: one diagnostic
// line and the page served with the container left empty.
func (h *ReviewHandler) ReviewsPage(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetReviews(r.Context())
	if err != nil {
		h.ErrorLog.Printf("Failed to load reviews: %v", err)
		reviews = nil
	}

	var buf bytes.Buffer
	if err := h.Renderer.RenderPage(&buf, reviews); err != nil {
		h.ErrorLog.Printf("Failed to render reviews page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// GetReviews re-encodes the fetched collection as JSON, source order preserved.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetReviews(r.Context())
	if err != nil {
		h.ErrorLog.Printf("Failed to load reviews: %v", err)
		if repositories.Unavailable(err) {
			http.Error(w, "Failed to get reviews", http.StatusBadGateway)
		} else {
			http.Error(w, "Failed to get reviews", http.StatusInternalServerError)
		}
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
