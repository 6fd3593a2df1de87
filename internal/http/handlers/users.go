package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hbnb/hbnb-auth/internal/auth"
	"github.com/hbnb/hbnb-auth/internal/http/respond"
	"github.com/hbnb/hbnb-auth/internal/middleware"
	"github.com/hbnb/hbnb-auth/internal/models"
	"github.com/hbnb/hbnb-auth/internal/models/dto"
	"github.com/hbnb/hbnb-auth/internal/storage"
)

// UserHandler owns the user resource endpoints. Reads and writes on a
// specific user pass the ownership gate: the caller must be that user or
// an admin.
type UserHandler struct {
	store  storage.UserStore
	hasher *auth.Hasher
	logger *zap.SugaredLogger
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore, hasher *auth.Hasher, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{store: store, hasher: hasher, logger: logger}
}

// Register creates a new account. Registration is public and never
// creates admins; promotion happens through SetAdmin.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validateProfile(req.Email, req.FirstName, req.LastName); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePassword(req.Password); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Email:        strings.TrimSpace(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: passwordHash,
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateEmail):
			respond.Error(w, http.StatusConflict, "email already registered")
		default:
			h.logger.Errorw("create user failed", "err", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	respond.JSON(w, http.StatusCreated, "user created", dto.UserResponse{User: created})
}

// List returns every user. Admin only, enforced by the route group.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.logger.Errorw("list users failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	respond.JSON(w, http.StatusOK, "users", users)
}

// Get returns one user record, owner or admin only.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.ownerOrAdmin(w, r, id) {
		return
	}

	user, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Errorw("get user failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	respond.JSON(w, http.StatusOK, "user", dto.UserResponse{User: user})
}

// Update rewrites profile fields and, when a new password is supplied,
// the credential. Owner or admin only. The admin flag cannot be changed
// here.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.ownerOrAdmin(w, r, id) {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := validateProfile(req.Email, req.FirstName, req.LastName); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Errorw("get user failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch user")
		return
	}

	passwordHash := current.PasswordHash
	if req.Password != "" {
		if err := validatePassword(req.Password); err != nil {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if passwordHash, err = h.hasher.Hash(req.Password); err != nil {
			respond.Error(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
	}

	updated, err := h.store.UpdateUser(r.Context(), models.User{
		ID:           id,
		Email:        strings.TrimSpace(req.Email),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: passwordHash,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateEmail):
			respond.Error(w, http.StatusConflict, "email already registered")
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "user not found")
		default:
			h.logger.Errorw("update user failed", "err", err)
			respond.Error(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}
	respond.JSON(w, http.StatusOK, "user updated", dto.UserResponse{User: updated})
}

// Delete removes a user record, owner or admin only.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.ownerOrAdmin(w, r, id) {
		return
	}

	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Errorw("delete user failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	respond.NoContent(w)
}

// SetAdmin grants or revokes the admin flag. Admin only, enforced by the
// route group. Tokens issued before the change keep their old claim
// until they expire.
func (h *UserHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SetAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, err := h.store.SetAdmin(r.Context(), id, req.IsAdmin)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Errorw("set admin failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to update role")
		return
	}
	h.logger.Infow("role changed", "user_id", user.ID, "is_admin", user.IsAdmin)
	respond.JSON(w, http.StatusOK, "role updated", dto.UserResponse{User: user})
}

// ownerOrAdmin is the resource-specific third gate: the caller must own
// the record or hold the admin claim. Writes the 403 itself and reports
// whether the request may proceed.
func (h *UserHandler) ownerOrAdmin(w http.ResponseWriter, r *http.Request, id string) bool {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing credentials")
		return false
	}
	if session.UserID != id && !session.IsAdmin {
		respond.Error(w, http.StatusForbidden, "not the resource owner")
		return false
	}
	return true
}

func validateProfile(email, firstName, lastName string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return errors.New("first and last name are required")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 || !utf8.ValidString(password) {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
