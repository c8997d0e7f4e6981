package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduhire/placement-be/internal/models"
)

func TestWorkLogs(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	userID := uuid.NewString()

	t.Run("create", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/logs", "", map[string]any{
			"userId":         userID,
			"timeSpentHours": 1.5,
			"type":           "Work",
			"taskTicket":     "PLC-42",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		created := decodeBody[models.WorkLog](t, w)
		assert.Equal(t, models.LogWork, created.Type)
		assert.Equal(t, 1.5, created.TimeSpentHours)
	})

	t.Run("list filtered by user", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/logs", "", map[string]any{
			"timeSpentHours": 2.0,
			"type":           "Meeting",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		all := env.do(t, http.MethodGet, "/api/logs", "", nil)
		require.Equal(t, http.StatusOK, all.Code)
		assert.Len(t, decodeBody[[]models.WorkLog](t, all), 2)

		filtered := env.do(t, http.MethodGet, "/api/logs?userId="+userID, "", nil)
		require.Equal(t, http.StatusOK, filtered.Code)
		logs := decodeBody[[]models.WorkLog](t, filtered)
		require.Len(t, logs, 1)
		assert.Equal(t, models.LogWork, logs[0].Type)
	})

	t.Run("validation", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/logs", "", map[string]any{
			"timeSpentHours": -1.0,
			"type":           "Work",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = env.do(t, http.MethodPost, "/api/logs", "", map[string]any{
			"timeSpentHours": 1.0,
			"type":           "Napping",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = env.do(t, http.MethodGet, "/api/logs?userId=nope", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/logs", "", map[string]any{
			"timeSpentHours": 0.5,
			"type":           "Review",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		created := decodeBody[models.WorkLog](t, w)

		w = env.do(t, http.MethodDelete, "/api/logs/"+created.ID.String(), "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodDelete, "/api/logs/"+created.ID.String(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
