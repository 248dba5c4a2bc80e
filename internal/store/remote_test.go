package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glassboard/internal/model"
	"glassboard/internal/session"
	"glassboard/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	claims := jwt.MapClaims{
		"user_id": "user-123",
		"name":    "Test User",
		"email":   "test@example.com",
	}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return signed
}

func TestRemote_FetchBoard(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/boards/b1", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.DefaultBoard("b1"))
	}))
	defer srv.Close()

	sess, err := session.FromToken(token)
	assert.NoError(t, err)

	remote := store.NewRemote(srv.URL, sess)
	board, err := remote.FetchBoard(context.Background(), "b1")
	assert.NoError(t, err)
	assert.Equal(t, "b1", board.ID)
	assert.Len(t, board.Columns, 3)
}

func TestRemote_FetchBoard_AnonymousOmitsAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(model.DefaultBoard("b1"))
	}))
	defer srv.Close()

	remote := store.NewRemote(srv.URL, session.Anonymous())
	_, err := remote.FetchBoard(context.Background(), "b1")
	assert.NoError(t, err)
}

func TestRemote_FetchBoard_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such board", http.StatusNotFound)
	}))
	defer srv.Close()

	remote := store.NewRemote(srv.URL, session.Anonymous())
	_, err := remote.FetchBoard(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrBoardNotFound)
}

func TestRemote_FetchBoard_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	remote := store.NewRemote(srv.URL, session.Anonymous())
	_, err := remote.FetchBoard(context.Background(), "b1")

	var statusErr *store.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Message, "boom")
}

func TestRemote_FetchBoard_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	remote := store.NewRemote(srv.URL, session.Anonymous())
	_, err := remote.FetchBoard(context.Background(), "b1")
	assert.ErrorContains(t, err, "fetching board")
}

func TestRemote_PushBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/boards/b1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received model.Board
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "Local Title", received.Title)

		received.Title = "Canonical Title"
		json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	board := model.DefaultBoard("b1")
	board.Title = "Local Title"

	remote := store.NewRemote(srv.URL, session.Anonymous())
	canonical, err := remote.PushBoard(context.Background(), board)
	assert.NoError(t, err)
	assert.Equal(t, "Canonical Title", canonical.Title)
}

func TestRemote_ExpiredSessionShortCircuits(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	sess, err := session.FromToken(signedToken(t, time.Now().Add(-time.Hour)))
	assert.NoError(t, err)

	remote := store.NewRemote(srv.URL, sess)

	_, err = remote.FetchBoard(context.Background(), "b1")
	assert.ErrorIs(t, err, store.ErrSessionExpired)

	_, err = remote.PushBoard(context.Background(), model.DefaultBoard("b1"))
	assert.ErrorIs(t, err, store.ErrSessionExpired)

	assert.Equal(t, 0, hits)
}
