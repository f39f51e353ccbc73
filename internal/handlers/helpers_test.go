package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/note-taking-app/api/internal/auth"
)

type testEnv struct {
	router     *mux.Router
	users      *fakeUserRepo
	notes      *fakeNoteRepo
	categories *fakeCategoryRepo
	jwt        *auth.JWTService
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	categories := newFakeCategoryRepo()
	notes := newFakeNoteRepo(categories)
	jwtService := auth.NewJWTService("test-secret")
	return &testEnv{
		router:     NewRouter(users, notes, categories, jwtService),
		users:      users,
		notes:      notes,
		categories: categories,
		jwt:        jwtService,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, header ...http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if len(header) > 0 {
		req.Header = header[0]
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// register creates a user through the API and returns its id.
func (e *testEnv) register(t *testing.T, username, password string) int64 {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	return int64(body["UserId"].(float64))
}
