package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/eduhire/placement-be/internal/http/respond"
	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/models/dto"
	"github.com/eduhire/placement-be/internal/storage"
)

const workLogListLimit = 200

// LogsHandler owns the work-log time entries.
type LogsHandler struct {
	store storage.WorkLogStore
	log   *logrus.Logger
}

func NewLogsHandler(store storage.WorkLogStore, log *logrus.Logger) *LogsHandler {
	return &LogsHandler{store: store, log: log}
}

func (h *LogsHandler) Register(api *mux.Router) {
	r := api.PathPrefix("/logs").Subrouter()
	r.HandleFunc("", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("", h.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/{id}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *LogsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if raw := r.URL.Query().Get("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "userId must be a valid id")
			return
		}
		userID = &id
	}

	logs, err := h.store.ListWorkLogs(r.Context(), userID, workLogListLimit)
	if err != nil {
		h.log.WithError(err).Error("list work logs")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}
	respond.JSON(w, http.StatusOK, logs)
}

func (h *LogsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.TimeSpentHours < 0 {
		respond.Error(w, http.StatusBadRequest, "timeSpentHours must be a positive number")
		return
	}
	logType := models.WorkLogType(req.Type)
	if !logType.Valid() {
		respond.Error(w, http.StatusBadRequest, "type must be one of Work, Meeting, Research, Review")
		return
	}

	entry := models.WorkLog{
		TimeSpentHours: req.TimeSpentHours,
		Type:           logType,
		TaskTicket:     req.TaskTicket,
		Comment:        req.Comment,
	}
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "userId must be a valid id")
			return
		}
		entry.UserID = &id
	}

	created, err := h.store.CreateWorkLog(r.Context(), entry)
	if err != nil {
		h.log.WithError(err).Error("create work log")
		respond.Error(w, http.StatusInternalServerError, "Failed to create log")
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

func (h *LogsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Log not found")
		return
	}

	if err := h.store.DeleteWorkLog(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Log not found")
			return
		}
		h.log.WithError(err).Error("delete work log")
		respond.Error(w, http.StatusInternalServerError, "Failed to delete log")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
