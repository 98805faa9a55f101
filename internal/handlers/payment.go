package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
)

// IntentCreator turns an order total into a provider-side payment intent.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type PaymentHandler struct {
	intents IntentCreator
}

func NewPaymentHandler(intents IntentCreator) *PaymentHandler {
	return &PaymentHandler{intents: intents}
}

// CreatePaymentIntent handles POST /create-payment-intent. Only the client
// secret goes back to the caller; the intent itself lives with the provider.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TotalPrice float64 `json:"total_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	clientSecret, err := h.intents.CreatePaymentIntent(r.Context(), req.TotalPrice)
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		http.Error(w, `{"error":"Failed to create payment intent"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}
