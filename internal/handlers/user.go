package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dreampcbuild/dreampc-gobackend/internal/auth"
)

type UserStore interface {
	UpsertUser(ctx context.Context, email string, profile bson.M) (*mongo.UpdateResult, error)
	UserList(ctx context.Context) ([]bson.M, error)
	GetUserByEmail(ctx context.Context, email string) (bson.M, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error)
}

// TokenIssuer issues the access token returned on profile upsert.
type TokenIssuer interface {
	Sign(email string) (string, error)
}

type UserHandler struct {
	store  UserStore
	tokens TokenIssuer
}

func NewUserHandler(store UserStore, tokens TokenIssuer) *UserHandler {
	return &UserHandler{store: store, tokens: tokens}
}

// GetUsers handles GET /user
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.UserList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		http.Error(w, `{"error":"Failed to fetch users"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// GetUser handles GET /user/{email}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.store.GetUserByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch user %s: %v", email, err)
		http.Error(w, `{"error":"Failed to fetch user"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// UpsertUser handles PUT /user/{email}: the profile body is stored verbatim
// under the email and a fresh access token for that email is returned
// alongside the raw update result.
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var profile bson.M
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := h.store.UpsertUser(r.Context(), email, profile)
	if err != nil {
		log.Printf("Failed to upsert user %s: %v", email, err)
		http.Error(w, `{"error":"Failed to update user"}`, http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.Sign(email)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", email, err)
		http.Error(w, `{"error":"Failed to issue token"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"result": result,
		"token":  token,
	})
}

// CheckAdmin handles GET /admin/{email}. An unknown email is simply not an
// admin.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	isAdmin, err := h.store.IsAdmin(r.Context(), email)
	if err != nil {
		log.Printf("Failed to check role for %s: %v", email, err)
		http.Error(w, `{"error":"Failed to check role"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"admin": isAdmin})
}

// MakeAdmin handles PUT /user/admin/{email}. Runs behind auth.RequireAuth;
// the authenticated subject's stored role must already be admin, anything
// else is forbidden. The requester lookup fails closed: no record, no role.
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	requester, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		http.Error(w, `{"message":"UnAuthorized access"}`, http.StatusUnauthorized)
		return
	}

	isAdmin, err := h.store.IsAdmin(r.Context(), requester)
	if err != nil {
		log.Printf("Failed to check role for %s: %v", requester, err)
		http.Error(w, `{"error":"Failed to check role"}`, http.StatusInternalServerError)
		return
	}
	if !isAdmin {
		http.Error(w, `{"message":"Forbidden access"}`, http.StatusForbidden)
		return
	}

	email := mux.Vars(r)["email"]
	result, err := h.store.MakeAdmin(r.Context(), email)
	if err != nil {
		log.Printf("Failed to promote %s: %v", email, err)
		http.Error(w, `{"error":"Failed to update user"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
