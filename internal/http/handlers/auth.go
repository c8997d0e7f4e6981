package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/eduhire/placement-be/internal/auth"
	"github.com/eduhire/placement-be/internal/http/respond"
	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/models/dto"
	"github.com/eduhire/placement-be/internal/storage"
)

// AuthHandler owns registration, login, and the current-identity endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
	log    *logrus.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager, hasher *auth.PasswordHasher, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, hasher: hasher, log: log}
}

// Register attaches auth routes. The /me routes sit on their own subrouter so
// the authentication middleware only guards them.
func (h *AuthHandler) Register(api *mux.Router, authn mux.MiddlewareFunc) {
	public := api.PathPrefix("/auth").Subrouter()
	public.HandleFunc("/register", h.handleRegister).Methods(http.MethodPost)
	public.HandleFunc("/login", h.handleLogin).Methods(http.MethodPost)

	private := api.PathPrefix("/auth").Subrouter()
	private.Use(authn)
	private.HandleFunc("/me", h.handleMe).Methods(http.MethodGet)
	private.HandleFunc("/me", h.handleUpdateMe).Methods(http.MethodPut)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)
	if req.Username == "" || email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < 6 {
		respond.Error(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	role := models.RoleStudent
	if strings.TrimSpace(req.Role) != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid role")
			return
		}
		role = parsed
	}

	passwordHash, err := h.hasher.Hash(r.Context(), req.Password)
	if err != nil {
		h.log.WithError(err).Error("hash password")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = req.Username
	}
	user := models.User{
		Name:         name,
		Username:     req.Username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Skills:       []string{},
	}

	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Deliberately vague: does not say whether email or username clashed.
			respond.Error(w, http.StatusConflict, "User already exists")
			return
		}
		h.log.WithError(err).Error("create user")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	token, err := h.tokens.Issue(created)
	if err != nil {
		h.log.WithError(err).Error("issue token")
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	respond.JSON(w, http.StatusCreated, dto.AuthResponse{Token: token, User: created})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Burn one bcrypt verification so this path costs the same as a
			// wrong password; the response never reveals account existence.
			h.hasher.CompareDummy(r.Context(), req.Password)
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.WithError(err).Error("find user by email")
		respond.Error(w, http.StatusInternalServerError, "failed to login")
		return
	}

	if !h.hasher.Compare(r.Context(), user.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.log.WithError(err).Error("issue token")
		respond.Error(w, http.StatusInternalServerError, "failed to login")
		return
	}

	respond.JSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// The one place a valid token can still fail: the account was
			// deleted after issuance.
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("get user by id")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	respond.JSON(w, http.StatusOK, dto.UserResponse{User: user})
}

func (h *AuthHandler) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	upd := storage.UserUpdate{
		Name:   req.Name,
		Phone:  req.Phone,
		Bio:    req.Bio,
		Skills: req.Skills,
	}
	// Hash only when a new plaintext arrived in this request; an absent field
	// leaves the stored hash untouched.
	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < 6 {
			respond.Error(w, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		hash, err := h.hasher.Hash(r.Context(), *req.Password)
		if err != nil {
			h.log.WithError(err).Error("hash password")
			respond.Error(w, http.StatusInternalServerError, "failed to update profile")
			return
		}
		upd.PasswordHash = &hash
	}

	user, err := h.store.UpdateUser(r.Context(), principal.UserID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("update user")
		respond.Error(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	respond.JSON(w, http.StatusOK, dto.UserResponse{User: user})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
