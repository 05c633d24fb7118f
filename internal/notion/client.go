package notion

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
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultTimeout = 30 * time.Second

	// apiVersion is the required Notion-Version header.
	apiVersion = "2022-06-28"

	// defaultPageSize is the maximum the list endpoints allow.
	defaultPageSize = 100
)

// Config holds configuration for the Notion client.
type Config struct {
	// Token is the integration API token (required).
	Token string

	// BaseURL is the API base URL (default: https://api.notion.com).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client is a minimal Notion API client. It is safe for concurrent use.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *RateLimiter
}

// NewClient creates a Notion client authenticated with a static token.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notion: API token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = cfg.Timeout

	return &Client{
		client:  tc,
		baseURL: cfg.BaseURL,
		limiter: NewRateLimiter(),
	}, nil
}

// ListChildren returns one page of a block's children. Pass the cursor from
// the previous response to continue; an empty cursor starts from the top.
func (c *Client) ListChildren(ctx context.Context, blockID, cursor string) (*BlockChildren, error) {
	q := url.Values{}
	q.Set("page_size", fmt.Sprint(defaultPageSize))
	if cursor != "" {
		q.Set("start_cursor", cursor)
	}

	var children BlockChildren
	path := "/v1/blocks/" + url.PathEscape(blockID) + "/children?" + q.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &children); err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return &children, nil
}

// RetrieveDatabase fetches a database's title and property schema.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	path := "/v1/databases/" + url.PathEscape(databaseID)
	if err := c.do(ctx, http.MethodGet, path, nil, &db); err != nil {
		return nil, fmt.Errorf("retrieve database: %w", err)
	}
	return &db, nil
}

// queryRequest is the database query request format.
type queryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// queryResponse is the database query response format.
type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryDatabase returns all pages of a database matching the filter.
// Pagination is followed to exhaustion; each page's cursor depends on the
// previous response, so the loop is strictly sequential.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter *Filter) ([]Page, error) {
	path := "/v1/databases/" + url.PathEscape(databaseID) + "/query"

	var pages []Page
	cursor := ""
	for {
		select {
		case <-ctx.Done():
			return pages, ctx.Err()
		default:
		}

		req := queryRequest{Filter: filter, StartCursor: cursor, PageSize: defaultPageSize}
		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
			return nil, fmt.Errorf("query database: %w", err)
		}

		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	return pages, nil
}

// createPageRequest is the page creation request format.
type createPageRequest struct {
	Parent     pageParent               `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePage creates a record in a database with the given properties.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue) (*Page, error) {
	req := createPageRequest{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: properties,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/v1/pages", req, &page); err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return &page, nil
}

// updatePageRequest is the page update request format.
type updatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties"`
}

// UpdatePage updates the given properties of an existing page.
// Properties absent from the map are left untouched by the workspace.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]PropertyValue) (*Page, error) {
	req := updatePageRequest{Properties: properties}

	var page Page
	path := "/v1/pages/" + url.PathEscape(pageID)
	if err := c.do(ctx, http.MethodPatch, path, req, &page); err != nil {
		return nil, fmt.Errorf("update page: %w", err)
	}
	return &page, nil
}

// userResponse is the bot user response format.
type userResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ValidateCredentials checks the token by fetching the integration's bot
// user. Returns the bot name on success.
func (c *Client) ValidateCredentials(ctx context.Context) (string, error) {
	var user userResponse
	if err := c.do(ctx, http.MethodGet, "/v1/users/me", nil, &user); err != nil {
		return "", fmt.Errorf("validate credentials: %w", err)
	}
	return user.Name, nil
}

// do performs one API call: waits for the rate limiter, sends the request
// and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.limiter.CheckResponse(resp); err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError converts a non-2xx response into an APIError.
func (c *Client) apiError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &body)
	if body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       body.Code,
		Message:    body.Message,
	}
}
