package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductStore is the slice of ProductService the handler needs.
type ProductStore interface {
	ProductList(ctx context.Context) ([]bson.M, error)
	CreateProduct(ctx context.Context, product bson.M) (*mongo.InsertOneResult, error)
	GetProduct(ctx context.Context, id string) (bson.M, error)
	DeleteProduct(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ProductList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch products: %v", err)
		http.Error(w, `{"error":"Failed to fetch products"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product bson.M
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := h.store.CreateProduct(r.Context(), product)
	if err != nil {
		log.Printf("Failed to create product: %v", err)
		http.Error(w, `{"error":"Failed to create product"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		http.Error(w, `{"error":"Invalid product ID"}`, http.StatusBadRequest)
		return
	}

	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		log.Printf("Failed to fetch product %s: %v", id, err)
		http.Error(w, `{"error":"Failed to fetch product"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// DeleteProduct handles DELETE /products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		http.Error(w, `{"error":"Invalid product ID"}`, http.StatusBadRequest)
		return
	}

	result, err := h.store.DeleteProduct(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete product %s: %v", id, err)
		http.Error(w, `{"error":"Failed to delete product"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
