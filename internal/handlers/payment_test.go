package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockIntentCreator struct {
	CreatePaymentIntentFunc func(ctx context.Context, price float64) (string, error)
}

func (m *mockIntentCreator) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(ctx, price)
	}
	return "", errors.New("not configured")
}

func TestCreatePaymentIntentReturnsClientSecret(t *testing.T) {
	var gotPrice float64
	h := NewPaymentHandler(&mockIntentCreator{
		CreatePaymentIntentFunc: func(ctx context.Context, price float64) (string, error) {
			gotPrice = price
			return "pi_123_secret_456", nil
		},
	})

	payload := bytes.NewBufferString(`{"total_price":10}`)
	req := httptest.NewRequest("POST", "/create-payment-intent", payload)
	rec := httptest.NewRecorder()
	h.CreatePaymentIntent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10.0, gotPrice)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pi_123_secret_456", body["clientSecret"])
}

func TestCreatePaymentIntentProviderFailure(t *testing.T) {
	h := NewPaymentHandler(&mockIntentCreator{
		CreatePaymentIntentFunc: func(ctx context.Context, price float64) (string, error) {
			return "", errors.New("provider down")
		},
	})

	payload := bytes.NewBufferString(`{"total_price":10}`)
	req := httptest.NewRequest("POST", "/create-payment-intent", payload)
	rec := httptest.NewRecorder()
	h.CreatePaymentIntent(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreatePaymentIntentBadBody(t *testing.T) {
	h := NewPaymentHandler(&mockIntentCreator{})

	req := httptest.NewRequest("POST", "/create-payment-intent", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.CreatePaymentIntent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
