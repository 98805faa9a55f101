package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewStore interface {
	ReviewList(ctx context.Context) ([]bson.M, error)
	CreateReview(ctx context.Context, review bson.M) (*mongo.InsertOneResult, error)
}

type ReviewHandler struct {
	store ReviewStore
}

func NewReviewHandler(store ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: store}
}

// GetReviews handles GET /reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.store.ReviewList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch reviews: %v", err)
		http.Error(w, `{"error":"Failed to fetch reviews"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review bson.M
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := h.store.CreateReview(r.Context(), review)
	if err != nil {
		log.Printf("Failed to create review: %v", err)
		http.Error(w, `{"error":"Failed to create review"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
