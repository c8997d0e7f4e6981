package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/eduhire/placement-be/internal/http/respond"
	"github.com/eduhire/placement-be/internal/models/dto"
	"github.com/eduhire/placement-be/internal/storage"
)

// ApplicationsHandler serves the student dashboard's applied list and the
// analytics board.
type ApplicationsHandler struct {
	users storage.UserStore
	apps  storage.ApplicationStore
	log   *logrus.Logger
}

func NewApplicationsHandler(users storage.UserStore, apps storage.ApplicationStore, log *logrus.Logger) *ApplicationsHandler {
	return &ApplicationsHandler{users: users, apps: apps, log: log}
}

func (h *ApplicationsHandler) Register(api *mux.Router, authn mux.MiddlewareFunc) {
	r := api.PathPrefix("/applications").Subrouter()
	r.Use(authn)
	r.HandleFunc("/applied", h.handleApplied).Methods(http.MethodPost)
	r.HandleFunc("/analytics", h.handleAnalytics).Methods(http.MethodGet)
}

// handleApplied keeps the dashboard's POST-with-email shape: it resolves the
// student by email and returns their applications joined with job info.
func (h *ApplicationsHandler) handleApplied(w http.ResponseWriter, r *http.Request) {
	var req dto.AppliedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := normalizeEmail(req.Email)
	if email == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("find user by email")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch applications")
		return
	}

	applied, err := h.apps.ListApplicationsByStudent(r.Context(), user.ID)
	if err != nil {
		h.log.WithError(err).Error("list applications")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch applications")
		return
	}
	respond.JSON(w, http.StatusOK, dto.AppliedResponse{Applications: applied})
}

func (h *ApplicationsHandler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.apps.ApplicationAnalytics(r.Context())
	if err != nil {
		h.log.WithError(err).Error("application analytics")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch analytics")
		return
	}
	respond.JSON(w, http.StatusOK, analytics)
}
