package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
)

type AuthHandler struct {
	manager *auth.Manager
}

func NewAuthHandler(manager *auth.Manager) *AuthHandler {
	return &AuthHandler{manager: manager}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res := h.manager.Login(ctx, creds)
	if !res.Success {
		writeJSON(w, http.StatusUnauthorized, res)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool       `json:"success"`
		Token   string     `json:"token"`
		User    *auth.User `json:"user"`
	}{
		Success: true,
		Token:   h.manager.Token(),
		User:    h.manager.User(),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	h.manager.Logout(ctx)

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "logged out",
	})
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	st, ok := h.manager.State()
	if !ok {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	writeJSON(w, http.StatusOK, st)
}
