package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/sondage/internal/client/models"
)

const (
	loginPath    = "/api/login"
	registerPath = "/api/user"
	votesPath    = "/api/votes"
	votePath     = "/api/vote"
)

type loginRequest struct {
	Email string `json:"email"`
}

type registerRequest struct {
	Pseudo string `json:"pseudo"`
	Email  string `json:"email"`
}

type voteRequest struct {
	UserID string        `json:"user_id"`
	Choice models.Choice `json:"choice"`
}

// HTTPClient talks JSON to the poll backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the backend at baseURL. A nil hc means a
// plain http.Client: no timeout is set, the caller's context decides.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *HTTPClient) Login(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, loginPath, loginRequest{Email: email}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Register(ctx context.Context, pseudo, email string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, registerPath, registerRequest{Pseudo: pseudo, Email: email}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListVotes(ctx context.Context) ([]models.Vote, error) {
	var votes []models.Vote
	if err := c.do(ctx, http.MethodGet, votesPath, nil, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

func (c *HTTPClient) CastVote(ctx context.Context, userID string, choice models.Choice) (*models.Vote, error) {
	var v models.Vote
	if err := c.do(ctx, http.MethodPost, votePath, voteRequest{UserID: userID, Choice: choice}, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// do sends body as JSON (when non-nil) and decodes a 2xx response into out.
// Transport failures wrap ErrUnavailable; other statuses yield *StatusError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(payload)}
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
