package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/models/dto"
)

func TestAppliedApplications(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.register(t, "student@x.com", "student", "secret123", "Student")
	job, err := env.store.CreateJob(ctx, models.Job{Title: "Intern", Company: "Acme", Description: "x"})
	require.NoError(t, err)
	env.store.AddApplication(models.Application{
		StudentID: student.User.ID,
		JobID:     job.ID,
		Status:    models.ApplicationInterview,
		AppliedAt: time.Now(),
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/applications/applied", "", map[string]string{"email": "student@x.com"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns joined applications", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/applications/applied", student.Token,
			map[string]string{"email": "student@x.com"})
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody[dto.AppliedResponse](t, w)
		require.Len(t, resp.Applications, 1)
		assert.Equal(t, "Intern", resp.Applications[0].Internship)
		assert.Equal(t, "Acme", resp.Applications[0].Company)
		assert.Equal(t, models.ApplicationInterview, resp.Applications[0].Status)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/applications/applied", student.Token,
			map[string]string{"email": "nobody@x.com"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/applications/applied", student.Token, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestApplicationAnalytics(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	student := env.register(t, "student@x.com", "student", "secret123", "Student")
	job, err := env.store.CreateJob(ctx, models.Job{Title: "Intern", Company: "Acme", Description: "x"})
	require.NoError(t, err)

	for _, status := range []models.ApplicationStatus{
		models.ApplicationPending, models.ApplicationPending, models.ApplicationHired,
	} {
		env.store.AddApplication(models.Application{
			StudentID: student.User.ID, JobID: job.ID, Status: status,
		})
	}

	w := env.do(t, http.MethodGet, "/api/applications/analytics", student.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	analytics := decodeBody[models.ApplicationAnalytics](t, w)
	assert.Equal(t, int64(3), analytics.Total)
	assert.Equal(t, int64(2), analytics.ByStatus[models.ApplicationPending])
	assert.Equal(t, int64(1), analytics.ByStatus[models.ApplicationHired])
}
