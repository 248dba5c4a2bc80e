package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"glassboard/internal/model"
	"glassboard/internal/session"
)

// Remote talks to the backend board API over HTTP. All calls carry the
// session's bearer token and are short-circuited once the session expires.
type Remote struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
}

// NewRemote creates a client for the API at baseURL. A nil session is
// treated as anonymous.
func NewRemote(baseURL string, sess *session.Session) *Remote {
	if sess == nil {
		sess = session.Anonymous()
	}
	return &Remote{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		session:    sess,
	}
}

// FetchBoard downloads the canonical board from the backend.
func (r *Remote) FetchBoard(ctx context.Context, id string) (*model.Board, error) {
	if r.session.Expired() {
		return nil, ErrSessionExpired
	}

	resp, err := r.do(ctx, http.MethodGet, "/api/boards/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("fetching board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrBoardNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(resp)
	}

	var board model.Board
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("decoding board: %w", err)
	}
	return &board, nil
}

// PushBoard uploads the full board document and returns the canonical
// version the backend persisted.
func (r *Remote) PushBoard(ctx context.Context, board *model.Board) (*model.Board, error) {
	if r.session.Expired() {
		return nil, ErrSessionExpired
	}

	payload, err := json.Marshal(board)
	if err != nil {
		return nil, fmt.Errorf("encoding board: %w", err)
	}

	resp, err := r.do(ctx, http.MethodPut, "/api/boards/"+url.PathEscape(board.ID), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("pushing board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrBoardNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(resp)
	}

	var canonical model.Board
	if err := json.NewDecoder(resp.Body).Decode(&canonical); err != nil {
		return nil, fmt.Errorf("decoding board: %w", err)
	}
	return &canonical, nil
}

func (r *Remote) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := r.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return r.httpClient.Do(req)
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(msg)),
	}
}
