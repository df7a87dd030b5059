package onelist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"todo-chat/internal/chat/repository"
)

// AuthMode selects how the access credential is attached to a request.
type AuthMode string

const (
	// AuthQuery sends the credential as the access_token query parameter.
	AuthQuery AuthMode = "query"
	// AuthBearer sends it as an "Authorization: Bearer" header.
	AuthBearer AuthMode = "bearer"
)

// Client is the HTTP wrapper for the one-list REST API.
type Client struct {
	baseURL    string
	authMode   AuthMode
	httpClient *http.Client
}

// NewClient creates a new one-list HTTP client. The timeout bounds every
// call; zero means no timeout.
func NewClient(baseURL string, authMode AuthMode, timeout time.Duration) *Client {
	if authMode == "" {
		authMode = AuthQuery
	}
	return &Client{
		baseURL:    baseURL,
		authMode:   authMode,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListItems fetches every item via GET /items.
func (c *Client) ListItems(ctx context.Context, token string) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, token, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem fetches a single item via GET /items/{id}.
func (c *Client) GetItem(ctx context.Context, token, id string) (*Item, error) {
	var item Item
	if err := c.do(ctx, token, http.MethodGet, "/items/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return &item, nil
}

// CreateItem creates an item via POST /items.
func (c *Client) CreateItem(ctx context.Context, token string, req CreateItemRequest) (*Item, error) {
	var item Item
	if err := c.do(ctx, token, http.MethodPost, "/items", req, &item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &item, nil
}

// UpdateItem changes an item via PUT /items/{id}.
func (c *Client) UpdateItem(ctx context.Context, token, id string, req UpdateItemRequest) (*Item, error) {
	var item Item
	if err := c.do(ctx, token, http.MethodPut, "/items/"+url.PathEscape(id), req, &item); err != nil {
		return nil, fmt.Errorf("update item %s: %w", id, err)
	}
	return &item, nil
}

// DeleteItem removes an item via DELETE /items/{id}.
func (c *Client) DeleteItem(ctx context.Context, token, id string) error {
	if err := c.do(ctx, token, http.MethodDelete, "/items/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}

// do sends one request. A non-2xx answer becomes *repository.RemoteError
// carrying the raw body; out may be nil when the response body is ignored.
func (c *Client) do(ctx context.Context, token, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	c.authorize(httpReq, token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call one-list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &repository.RemoteError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode one-list response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request, token string) {
	switch c.authMode {
	case AuthBearer:
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	default:
		q := req.URL.Query()
		q.Set("access_token", token)
		req.URL.RawQuery = q.Encode()
	}
}

// ---- Request/Response types scoped to this package ----

// CreateItemRequest is the body for POST /items.
type CreateItemRequest struct {
	Text string `json:"text"`
}

// UpdateItemRequest is the body for PUT /items/{id}.
type UpdateItemRequest struct {
	Complete bool `json:"complete"`
}

// Item is the one-list API item object.
type Item struct {
	ID        ItemID `json:"id"`
	Text      string `json:"text"`
	Complete  bool   `json:"complete"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ItemID is the store-assigned id. The API sends it as a JSON number, but
// string ids are accepted too since the id is opaque to callers.
type ItemID string

func (id ItemID) String() string { return string(id) }

func (id *ItemID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("item id must be a number or string: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}
