package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduhire/placement-be/internal/models"
	"github.com/eduhire/placement-be/internal/models/dto"
	"github.com/eduhire/placement-be/internal/storage"
)

func TestRegisterThenMe(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.register(t, "a@x.com", "a", "secret123", "Student")
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	w := env.do(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"email":"a@x.com"`)
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, body, "secret123")
}

func TestRegister_HashNeverEqualsPlaintext(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.register(t, "a@x.com", "a", "secret123", "Student")

	user, err := env.store.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.False(t, strings.Contains(user.PasswordHash, "secret123"))
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	cases := []map[string]string{
		{"email": "a@x.com", "password": "secret123"},                                         // no username
		{"username": "a", "password": "secret123"},                                            // no email
		{"username": "a", "email": "a@x.com"},                                                 // no password
		{"username": "a", "email": "not-an-email", "password": "secret123"},                   // bad email
		{"username": "a", "email": "a@x.com", "password": "short"},                            // short password
		{"username": "a", "email": "a@x.com", "password": "secret123", "role": "superadmin"},  // unknown role
	}
	for _, body := range cases {
		w := env.do(t, http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}
}

func TestRegister_NormalizesEmailAndRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.register(t, "  A@X.Com ", "a", "secret123", "placement cell")
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, models.RolePlacementCell, resp.User.Role)
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.register(t, "a@x.com", "a", "secret123", "Student")

	w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@x.com", "username": "someone-else", "password": "secret123", "role": "Student",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	// The conflict message must not say whether email or username clashed.
	assert.JSONEq(t, `{"message":"User already exists"}`, w.Body.String())
}

func TestRegister_ConcurrentDuplicate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	const attempts = 8
	var created, conflicted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
				"email": "race@x.com", "username": "race", "password": "secret123", "role": "Student",
			})
			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(attempts-1), conflicted.Load())
}

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "a@x.com", "a", "secret123", "Student")

	t.Run("correct password", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "a@x.com", "password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[dto.AuthResponse](t, w)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "a@x.com", resp.User.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		wrong := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "a@x.com", "password": "wrong",
		})
		unknown := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "nobody@x.com", "password": "wrong",
		})

		require.Equal(t, http.StatusUnauthorized, wrong.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, wrong.Body.String())
		assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMe_UserDeletedAfterIssuance(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp := env.register(t, "gone@x.com", "gone", "secret123", "Student")
	env.store.DeleteUser(resp.User.ID)

	w := env.do(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
}

// countingUserStore records how often the credential store is touched.
type countingUserStore struct {
	inner storage.UserStore
	calls atomic.Int64
}

func (c *countingUserStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	c.calls.Add(1)
	return c.inner.CreateUser(ctx, u)
}

func (c *countingUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	c.calls.Add(1)
	return c.inner.GetUserByID(ctx, id)
}

func (c *countingUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	c.calls.Add(1)
	return c.inner.FindByEmail(ctx, email)
}

func (c *countingUserStore) UpdateUser(ctx context.Context, id uuid.UUID, upd storage.UserUpdate) (models.User, error) {
	c.calls.Add(1)
	return c.inner.UpdateUser(ctx, id, upd)
}

func TestUnauthenticatedRequestNeverTouchesStore(t *testing.T) {
	t.Parallel()

	counting := &countingUserStore{}
	env := newTestEnvWithUserStore(t, counting)
	counting.inner = env.store

	w := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, counting.calls.Load())

	w = env.do(t, http.MethodPut, "/api/auth/me", "", map[string]string{"name": "x"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, counting.calls.Load())
}

func TestUpdateMe(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	resp := env.register(t, "a@x.com", "a", "secret123", "Student")

	t.Run("profile fields without password keep the hash", func(t *testing.T) {
		before, err := env.store.GetUserByID(context.Background(), resp.User.ID)
		require.NoError(t, err)

		w := env.do(t, http.MethodPut, "/api/auth/me", resp.Token, map[string]any{
			"name":   "Alice",
			"phone":  "+1555000",
			"skills": []string{"go", "sql"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		after, err := env.store.GetUserByID(context.Background(), resp.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", after.Name)
		assert.Equal(t, []string{"go", "sql"}, after.Skills)
		assert.Equal(t, before.PasswordHash, after.PasswordHash)
	})

	t.Run("new password is re-hashed", func(t *testing.T) {
		before, err := env.store.GetUserByID(context.Background(), resp.User.ID)
		require.NoError(t, err)

		w := env.do(t, http.MethodPut, "/api/auth/me", resp.Token, map[string]string{
			"password": "another-secret",
		})
		require.Equal(t, http.StatusOK, w.Code)

		after, err := env.store.GetUserByID(context.Background(), resp.User.ID)
		require.NoError(t, err)
		assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
		assert.True(t, env.hasher.Compare(context.Background(), after.PasswordHash, "another-secret"))

		login := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "a@x.com", "password": "another-secret",
		})
		assert.Equal(t, http.StatusOK, login.Code)
	})
}
