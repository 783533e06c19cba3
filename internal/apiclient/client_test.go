package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON_SetsAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		json.NewEncoder(w).Encode(map[string]string{"value": "ok"})
	}))
	defer srv.Close()

	c := New("secret-token", 0)
	var out struct {
		Value string `json:"value"`
	}
	require.NoError(t, c.GetJSON(context.Background(), srv.URL, &out))
	assert.Equal(t, "ok", out.Value)
}

func TestPostJSON_EncodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 300, body["pageSize"])
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := New("secret-token", 0)
	err := c.PostJSON(context.Background(), srv.URL, map[string]any{"pageSize": 300}, nil)
	require.NoError(t, err)
}

func TestDo_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such project", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New("secret-token", 0)
	err := c.GetJSON(context.Background(), srv.URL, nil)

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, "no such project", statusErr.Body)
	assert.True(t, IsNotFound(err))
}

func TestIsNotFound_OtherErrors(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(context.DeadlineExceeded))
	assert.False(t, IsNotFound(&StatusError{Code: http.StatusForbidden}))
}
