package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
)

// TokenSource supplies the bearer token for authenticated requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client talks to the notes drive REST API. All methods return domain
// sentinel errors for non-2xx responses so callers can match with
// errors.Is.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// NewClient creates a client for the given API origin. tokens may be
// nil for read-only, unauthenticated use.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
	}
}

// List fetches the immediate children of a folder; parent "" is the
// root level.
func (c *Client) List(ctx context.Context, parent string) ([]models.Node, error) {
	endpoint := c.baseURL + "/api/notes/list?parent=" + url.QueryEscape(parent)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var nodes []models.Node
	if err := json.NewDecoder(resp.Body).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	return nodes, nil
}

// CreateFolder creates a folder under parent ("" = root). An empty
// trimmed name is rejected locally; no request is issued for it.
func (c *Client) CreateFolder(ctx context.Context, name, parent string) (*models.Node, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name cannot be empty", domain.ErrValidation)
	}

	var parentID *string
	if parent != "" {
		parentID = &parent
	}

	body, err := json.Marshal(struct {
		Name   string  `json:"name"`
		Parent *string `json:"parent"`
	}{Name: name, Parent: parentID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/notes/folder", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}

	var node models.Node
	if err := json.NewDecoder(resp.Body).Decode(&node); err != nil {
		return nil, fmt.Errorf("decode created folder: %w", err)
	}

	return &node, nil
}

// UploadDocument uploads a PDF into parent ("" = root) as a multipart
// body with the file content and the target parent id.
func (c *Client) UploadDocument(ctx context.Context, name string, content io.Reader, parent string) (*models.Node, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: missing file content", domain.ErrValidation)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read file content: %w", err)
	}
	if err := mw.WriteField("parent", parent); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/notes/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}

	var node models.Node
	if err := json.NewDecoder(resp.Body).Decode(&node); err != nil {
		return nil, fmt.Errorf("decode uploaded document: %w", err)
	}

	return &node, nil
}

// Delete removes a node; deleting a folder takes its whole subtree.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: node id cannot be empty", domain.ErrValidation)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/notes/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}

	return nil
}

// Download fetches a document's binary content by storage filename.
// The caller owns the returned reader and must close it.
func (c *Client) Download(ctx context.Context, filename string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/uploads/"+url.PathEscape(filename), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}

	return resp.Body, nil
}

// do attaches the bearer header when a token is available and sends
// the request.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return c.httpc.Do(req)
}

// decodeError turns a non-2xx response into a domain error, keeping
// the server's problem detail when there is one.
func decodeError(resp *http.Response) error {
	var problem struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&problem)

	detail := problem.Detail
	if detail == "" {
		detail = problem.Title
	}
	if detail == "" {
		detail = resp.Status
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = domain.ErrValidation
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusConflict:
		sentinel = domain.ErrConflict
	default:
		return fmt.Errorf("server error: %s", detail)
	}

	return fmt.Errorf("%w: %s", sentinel, detail)
}
