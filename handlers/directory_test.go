package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estateconnect/models"
	"estateconnect/services/directory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryRouter() (*gin.Engine, *directory.Store) {
	gin.SetMode(gin.TestMode)
	store := directory.NewStore()
	h := NewDirectoryHandler(store)

	r := gin.New()
	r.GET("/users", h.ListHandler)
	r.POST("/users", h.AddHandler)
	return r, store
}

func TestDirectoryListHandler(t *testing.T) {
	r, _ := newDirectoryRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var users []models.DirectoryUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Equal(t, []models.DirectoryUser{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, users)
}

func TestDirectoryAddHandler(t *testing.T) {
	r, store := newDirectoryRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Charlie"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.DirectoryUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.DirectoryUser{ID: 3, Name: "Charlie"}, created)
	assert.Equal(t, 3, store.Len())
}

func TestDirectoryAddHandlerMissingName(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "blank name", body: `{"name":""}`},
		{name: "malformed json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, store := newDirectoryRouter()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Name is required"}`, w.Body.String())
			assert.Equal(t, 2, store.Len(), "a rejected append leaves the collection unchanged")
		})
	}
}
