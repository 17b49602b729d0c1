package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

type conflictCategoryRepo struct {
	err error
}

func (r *conflictCategoryRepo) Create(*domain.Category) error { return nil }
func (r *conflictCategoryRepo) FindByID(id uint) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: "Electronics"}, nil
}
func (r *conflictCategoryRepo) FindByName(string) (*domain.Category, error) {
	return nil, domain.ErrNotFound
}
func (r *conflictCategoryRepo) FindAll() ([]domain.Category, error) { return nil, nil }
func (r *conflictCategoryRepo) Update(*domain.Category) error       { return nil }
func (r *conflictCategoryRepo) Delete(uint) error                   { return r.err }
func (r *conflictCategoryRepo) CountProducts(uint) (int64, error)   { return 0, nil }

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestDeleteCategoryErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"category with products conflicts", domain.ErrCategoryHasProducts, http.StatusConflict},
		{"missing category", domain.ErrNotFound, http.StatusNotFound},
		{"empty category deletes", nil, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(&conflictCategoryRepo{err: tc.err}, nil, nil)

			req := httptest.NewRequest(http.MethodDelete, "/api/categories/3", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "3"})
			rec := httptest.NewRecorder()

			handler.Delete(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, tc.err == nil, resp.Success)
		})
	}
}

func TestDeleteCategoryRejectsBadID(t *testing.T) {
	handler := NewCategoryHandler(&conflictCategoryRepo{}, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newTestAuth(t *testing.T, password string) *AdminAuth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAdminAuth("admin", string(hash), "test-secret")
}

func loginToken(t *testing.T, auth *AdminAuth, username, password string) (int, string) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	auth.Login(rec, req)

	if rec.Code != http.StatusOK {
		return rec.Code, ""
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Data["token"])
	return rec.Code, resp.Data["token"]
}

func TestAdminLogin(t *testing.T) {
	auth := newTestAuth(t, "hunter2")

	status, token := loginToken(t, auth, "admin", "hunter2")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, token)

	status, _ = loginToken(t, auth, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = loginToken(t, auth, "root", "hunter2")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminMiddleware(t *testing.T) {
	auth := newTestAuth(t, "hunter2")
	_, token := loginToken(t, auth, "admin", "hunter2")

	var reached bool
	protected := auth.Middleware(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("valid token passes", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected(rec, req)

		assert.True(t, reached)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		rec := httptest.NewRecorder()

		protected(rec, req)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()

		protected(rec, req)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		other := newTestAuth(t, "hunter2")
		other.secret = []byte("different")
		_, otherToken := loginToken(t, other, "admin", "hunter2")

		reached = false
		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		req.Header.Set("Authorization", "Bearer "+otherToken)
		rec := httptest.NewRecorder()

		protected(rec, req)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
