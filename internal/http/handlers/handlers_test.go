package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eduhire/placement-be/internal/auth"
	"github.com/eduhire/placement-be/internal/middleware"
	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/models/dto"
	"github.com/eduhire/placement-be/internal/storage"
	"github.com/eduhire/placement-be/internal/storage/memory"
)

type testEnv struct {
	store  *memory.Store
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
	router *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithUserStore(t, nil)
}

// newTestEnvWithUserStore lets a test swap the user store seen by the auth
// handler, e.g. to count storage accesses.
func newTestEnvWithUserStore(t *testing.T, users storage.UserStore) *testEnv {
	t.Helper()

	store := memory.New()
	if users == nil {
		users = store
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	authn := middleware.RequireAuth(tokens, log)

	NewAuthHandler(users, tokens, hasher, log).Register(api, authn)
	NewJobsHandler(store, log).Register(api, authn)
	NewApplicationsHandler(users, store, log).Register(api, authn)
	NewFeedbackHandler(store, log).Register(api, authn)
	NewLogsHandler(store, log).Register(api)

	return &testEnv{store: store, tokens: tokens, hasher: hasher, router: router}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(t *testing.T, email, username, password, role string) dto.AuthResponse {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"username": username,
		"password": password,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register body: %s", w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func (e *testEnv) tokenFor(t *testing.T, role models.Role) string {
	t.Helper()

	token, err := e.tokens.Issue(models.User{ID: uuid.New(), Email: "staff@x.com", Role: role})
	require.NoError(t, err)
	return token
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}
