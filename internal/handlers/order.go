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

type OrderStore interface {
	CreateOrder(ctx context.Context, order bson.M) (*mongo.InsertOneResult, error)
	OrdersByEmail(ctx context.Context, email string) ([]bson.M, error)
	AllOrders(ctx context.Context) ([]bson.M, error)
	GetOrder(ctx context.Context, id string) (bson.M, error)
	DeleteOrder(ctx context.Context, id string) (*mongo.DeleteResult, error)
	SetOrderStatus(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

// PaymentRecorder applies a confirmed payment to an order.
type PaymentRecorder interface {
	ConfirmPayment(ctx context.Context, orderID string, payment bson.M) (*mongo.UpdateResult, error)
}

type OrderHandler struct {
	store    OrderStore
	payments PaymentRecorder
}

func NewOrderHandler(store OrderStore, payments PaymentRecorder) *OrderHandler {
	return &OrderHandler{store: store, payments: payments}
}

// CreateOrder handles POST /new-order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order bson.M
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := h.store.CreateOrder(r.Context(), order)
	if err != nil {
		log.Printf("Failed to create order: %v", err)
		http.Error(w, `{"error":"Failed to create order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetOrdersByEmail handles GET /new-order?email=
func (h *OrderHandler) GetOrdersByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	orders, err := h.store.OrdersByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch orders for %s: %v", email, err)
		http.Error(w, `{"error":"Failed to fetch orders"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.AllOrders(r.Context())
	if err != nil {
		log.Printf("Failed to fetch orders: %v", err)
		http.Error(w, `{"error":"Failed to fetch orders"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// GetOrder handles GET /new-order/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		http.Error(w, `{"error":"Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		log.Printf("Failed to fetch order %s: %v", id, err)
		http.Error(w, `{"error":"Failed to fetch order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// ConfirmPayment handles PATCH /new-order/{id}
func (h *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		http.Error(w, `{"error":"Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	var payment bson.M
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := h.payments.ConfirmPayment(r.Context(), id, payment)
	if err != nil {
		log.Printf("Failed to record payment for order %s: %v", id, err)
		http.Error(w, `{"error":"Failed to record payment"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteOrder handles DELETE /new-order/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		http.Error(w, `{"error":"Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	result, err := h.store.DeleteOrder(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete order %s: %v", id, err)
		http.Error(w, `{"error":"Failed to delete order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// SetOrderStatus handles PUT /orders/{id}
func (h *OrderHandler) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		http.Error(w, `{"error":"Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	result, err := h.store.SetOrderStatus(r.Context(), id)
	if err != nil {
		log.Printf("Failed to update order %s status: %v", id, err)
		http.Error(w, `{"error":"Failed to update order status"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
