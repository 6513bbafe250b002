package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/userdir/apiserver/internal/services"
	"github.com/userdir/apiserver/internal/store"
	"github.com/userdir/apiserver/types"
)

// UserHandler provides HTTP handlers for directory records.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler constructs a handler with the provided service.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRouter registers user routes on the given router.
func UserRouter(r chi.Router, userService *services.UserService) {
	handler := NewUserHandler(userService)

	// chi does not cascade a custom MethodNotAllowed into nested
	// subrouters, so it is set at each level.
	r.MethodNotAllowed(MethodNotAllowed)
	r.Get("/", handler.ListUsers)
	r.Post("/", handler.CreateUser)
	r.Put("/", handler.RequireID)
	r.Delete("/", handler.RequireID)
	r.Route("/{userID}", func(r chi.Router) {
		r.MethodNotAllowed(MethodNotAllowed)
		r.Get("/", handler.GetUser)
		r.Put("/", handler.UpdateUser)
		r.Delete("/", handler.DeleteUser)
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, UserListResponse{Data: users})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, UserResponse{Data: user})
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	user, err := decodeUserPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.userService.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, UserMutationResponse{
		Message: "User created successfully",
		Data:    created,
	})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := decodeUserPayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	user.ID = id

	updated, err := h.userService.Update(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, UserMutationResponse{
		Message: "User updated successfully",
		Data:    updated,
	})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

// RequireID rejects collection-level PUT and DELETE, which only make sense
// against a single record.
func (h *UserHandler) RequireID(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusBadRequest, "User id is required")
}

// UserListResponse is the list payload.
type UserListResponse struct {
	Data []types.User `json:"data"`
}

// UserResponse is the single-record payload.
type UserResponse struct {
	Data types.User `json:"data"`
}

// UserMutationResponse is the payload for successful creates and updates.
type UserMutationResponse struct {
	Message string     `json:"message"`
	Data    types.User `json:"data"`
}

// MessageResponse is a bare confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// decodeUserPayload parses and validates a create/update body. The id is
// never taken from the body.
func decodeUserPayload(r *http.Request) (types.User, error) {
	var user types.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil && !errors.Is(err, io.EOF) {
		return types.User{}, errors.New("invalid request body")
	}
	user.ID = 0

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" || user.Email == "" {
		return types.User{}, errors.New("Name and email are required")
	}
	return user, nil
}

func parseUserID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "userID"))
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid user id")
	}
	return id, nil
}
