package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/eduhire/placement-be/internal/http/respond"
	"github.com/eduhire/placement-be/internal/middleware"
	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/models/dto"
	"github.com/eduhire/placement-be/internal/storage"
)

const feedbackListLimit = 100

// FeedbackHandler owns student reviews; both routes are staff-only.
type FeedbackHandler struct {
	store storage.FeedbackStore
	log   *logrus.Logger
}

func NewFeedbackHandler(store storage.FeedbackStore, log *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{store: store, log: log}
}

func (h *FeedbackHandler) Register(api *mux.Router, authn mux.MiddlewareFunc) {
	r := api.PathPrefix("/feedback").Subrouter()
	r.Use(authn, middleware.RequireRoles(models.RoleMentor, models.RolePlacementCell))
	r.HandleFunc("", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("", h.handleCreate).Methods(http.MethodPost)
}

func (h *FeedbackHandler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListFeedback(r.Context(), feedbackListLimit)
	if err != nil {
		h.log.WithError(err).Error("list feedback")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch feedback")
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *FeedbackHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "studentId must be a valid id")
		return
	}
	topic := models.FeedbackTopic(req.Topic)
	if strings.TrimSpace(req.StudentName) == "" || strings.TrimSpace(req.Company) == "" ||
		strings.TrimSpace(req.Comments) == "" || !topic.Valid() {
		respond.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respond.Error(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	reviewer := strings.TrimSpace(req.Reviewer)
	if reviewer == "" {
		reviewer = "Placement Officer"
	}

	item, err := h.store.CreateFeedback(r.Context(), models.Feedback{
		StudentID:   studentID,
		StudentName: strings.TrimSpace(req.StudentName),
		Topic:       topic,
		Company:     strings.TrimSpace(req.Company),
		Rating:      req.Rating,
		Comments:    req.Comments,
		Reviewer:    reviewer,
	})
	if err != nil {
		h.log.WithError(err).Error("create feedback")
		respond.Error(w, http.StatusInternalServerError, "failed to create feedback")
		return
	}
	respond.JSON(w, http.StatusCreated, item)
}
