package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hbnb/hbnb-auth/internal/auth"
	"github.com/hbnb/hbnb-auth/internal/http/respond"
	"github.com/hbnb/hbnb-auth/internal/middleware"
	"github.com/hbnb/hbnb-auth/internal/models/dto"
	"github.com/hbnb/hbnb-auth/internal/storage"
)

// AuthHandler owns the login endpoint and the token-protected probe.
type AuthHandler struct {
	store  storage.UserStore
	hasher *auth.Hasher
	tokens *auth.TokenManager
	logger *zap.SugaredLogger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, hasher *auth.Hasher, tokens *auth.TokenManager, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{store: store, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies credentials and mints an access token. Unknown emails
// and wrong passwords produce byte-identical responses so the endpoint
// cannot be used to enumerate accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.logger.Debugw("login rejected", "reason", "unknown email")
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Errorw("login lookup failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		h.logger.Debugw("login rejected", "reason", "password mismatch")
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		h.logger.Errorw("token issue failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{AccessToken: token})
}

// Protected echoes the verified session; it exists so clients can probe
// token validity without touching a resource.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	respond.JSON(w, http.StatusOK, "authenticated", map[string]any{
		"user_id":  session.UserID,
		"is_admin": session.IsAdmin,
	})
}
