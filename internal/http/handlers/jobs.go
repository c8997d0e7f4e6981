package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/eduhire/placement-be/internal/auth"
	"github.com/eduhire/placement-be/internal/http/respond"
	"github.com/eduhire/placement-be/internal/middleware"
	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/models/dto"
	"github.com/eduhire/placement-be/internal/storage"
)

// JobsHandler owns the posting endpoints. Reads are public; writes are
// restricted to placement staff.
type JobsHandler struct {
	store storage.JobStore
	log   *logrus.Logger
}

func NewJobsHandler(store storage.JobStore, log *logrus.Logger) *JobsHandler {
	return &JobsHandler{store: store, log: log}
}

func (h *JobsHandler) Register(api *mux.Router, authn mux.MiddlewareFunc) {
	public := api.PathPrefix("/jobs").Subrouter()
	public.HandleFunc("", h.handleList).Methods(http.MethodGet)
	public.HandleFunc("/{id}", h.handleGet).Methods(http.MethodGet)

	staff := api.PathPrefix("/jobs").Subrouter()
	staff.Use(authn, middleware.RequireRoles(models.RoleRecruiter, models.RolePlacementCell))
	staff.HandleFunc("", h.handleCreate).Methods(http.MethodPost)
	staff.HandleFunc("/{id}/status", h.handleUpdateStatus).Methods(http.MethodPatch)
}

func (h *JobsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := storage.JobFilter{Skill: strings.TrimSpace(r.URL.Query().Get("skill"))}
	if raw := r.URL.Query().Get("minCGPA"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "minCGPA must be a number")
			return
		}
		filter.MinCGPA = &value
	}

	jobs, err := h.store.ListOpenJobs(r.Context(), filter)
	if err != nil {
		h.log.WithError(err).Error("list jobs")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch jobs")
		return
	}
	respond.JSON(w, http.StatusOK, jobs)
}

func (h *JobsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Job not found")
		return
	}

	job, err := h.store.GetJobByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Job not found")
			return
		}
		h.log.WithError(err).Error("get job")
		respond.Error(w, http.StatusInternalServerError, "failed to fetch job")
		return
	}
	respond.JSON(w, http.StatusOK, job)
}

func (h *JobsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.Description) == "" {
		respond.Error(w, http.StatusBadRequest, "title, company, and description are required")
		return
	}

	skills := req.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	job, err := h.store.CreateJob(r.Context(), models.Job{
		PostedBy:       principal.UserID,
		Title:          strings.TrimSpace(req.Title),
		Company:        strings.TrimSpace(req.Company),
		Description:    req.Description,
		MinCGPA:        req.MinCGPA,
		RequiredSkills: skills,
		Status:         models.JobOpen,
	})
	if err != nil {
		h.log.WithError(err).Error("create job")
		respond.Error(w, http.StatusInternalServerError, "failed to create job")
		return
	}
	respond.JSON(w, http.StatusCreated, job)
}

func (h *JobsHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Job not found")
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	status := models.JobStatus(req.Status)
	if !status.Valid() {
		respond.Error(w, http.StatusBadRequest, "status must be Open or Closed")
		return
	}

	job, err := h.store.UpdateJobStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Job not found")
			return
		}
		h.log.WithError(err).Error("update job status")
		respond.Error(w, http.StatusInternalServerError, "failed to update job")
		return
	}
	respond.JSON(w, http.StatusOK, job)
}
