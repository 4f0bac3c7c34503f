// Package instapaper is a minimal client for the Instapaper Full API,
// covering the calls the exporter needs: xAuth login, bulk bookmark
// listing, per-bookmark article text, and folder listing.
package instapaper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/seckatie/paperbase/internal/oauth1"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://www.instapaper.com"

const userAgent = "paperbase/1.0"

// Client talks to the Instapaper Full API. It is not safe for concurrent
// use: Login mutates the held token, and the exporter runs one request at
// a time anyway.
type Client struct {
	baseURL string
	signer  *oauth1.Signer
	token   *oauth1.Token
	http    *http.Client
}

func NewClient(baseURL, consumerKey, consumerSecret string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		signer:  oauth1.NewSigner(consumerKey, consumerSecret),
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError is an error payload returned by the API, typically a JSON
// array whose first element is {"type":"error","error_code":...}.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("instapaper: API error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("instapaper: API error %d", e.Code)
}

// Login exchanges the account's email and password for an OAuth access
// token via xAuth and retains it for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{}
	form.Set("x_auth_username", email)
	form.Set("x_auth_password", password)
	form.Set("x_auth_mode", "client_auth")

	// The access-token endpoint answers in query-string form, not JSON.
	status, _, body, err := c.postForm(ctx, "/api/1/oauth/access_token", form, "text/plain")
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		if apiErr := parseAPIError(body); apiErr != nil {
			return apiErr
		}
		return fmt.Errorf("instapaper: login failed: HTTP %d: %s", status, strings.TrimSpace(string(body)))
	}

	vals, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		return fmt.Errorf("instapaper: parse access token response: %w", err)
	}
	key := vals.Get("oauth_token")
	secret := vals.Get("oauth_token_secret")
	if key == "" || secret == "" {
		return errors.New("instapaper: access token response missing oauth_token/oauth_token_secret")
	}
	c.token = &oauth1.Token{Key: key, Secret: secret}
	return nil
}

// ListBookmarks returns up to limit bookmarks from the named folder.
// folder may be one of the well-known names ("unread", "archive",
// "starred") or a numeric folder id.
func (c *Client) ListBookmarks(ctx context.Context, folder string, limit int) ([]Bookmark, error) {
	form := url.Values{}
	if folder != "" {
		form.Set("folder_id", folder)
	}
	if limit > 0 {
		form.Set("limit", strconv.Itoa(limit))
	}

	status, _, body, err := c.postForm(ctx, "/api/1/bookmarks/list", form, "application/json")
	if err != nil {
		return nil, err
	}
	if err := ensureOK(status, body); err != nil {
		return nil, err
	}

	items, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var bookmarks []Bookmark
	for _, item := range items {
		var kind struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(item, &kind); err != nil {
			return nil, fmt.Errorf("instapaper: decode list element: %w", err)
		}
		if kind.Type != "bookmark" {
			// user, meta, highlight elements are not our concern
			continue
		}
		var b Bookmark
		if err := json.Unmarshal(item, &b); err != nil {
			return nil, fmt.Errorf("instapaper: decode bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}

// GetText fetches the processed article text for one bookmark and returns
// the raw HTML payload. Errors come back as JSON with a 400 status.
func (c *Client) GetText(ctx context.Context, req TextRequest) ([]byte, error) {
	form := url.Values{}
	form.Set("bookmark_id", strconv.FormatInt(req.BookmarkID, 10))

	status, _, body, err := c.postForm(ctx, "/api/1/bookmarks/get_text", form, "text/html")
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		if apiErr := parseAPIError(body); apiErr != nil {
			return nil, apiErr
		}
		return nil, fmt.Errorf("instapaper: get_text failed: HTTP %d: %s", status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// ListFolders returns the account's folders.
func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	status, _, body, err := c.postForm(ctx, "/api/1/folders/list", url.Values{}, "application/json")
	if err != nil {
		return nil, err
	}
	if err := ensureOK(status, body); err != nil {
		return nil, err
	}
	items, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	folders := make([]Folder, 0, len(items))
	for _, item := range items {
		var f Folder
		if err := json.Unmarshal(item, &f); err != nil {
			return nil, fmt.Errorf("instapaper: decode folder: %w", err)
		}
		folders = append(folders, f)
	}
	return folders, nil
}

// postForm signs and sends an application/x-www-form-urlencoded POST and
// returns the status, headers, and full response body.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, accept string) (int, http.Header, []byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	auth, err := c.signer.AuthorizationHeader(http.MethodPost, fullURL, form, c.token)
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header.Set("Authorization", auth)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, resp.Header, body, nil
}

func ensureOK(status int, body []byte) error {
	if apiErr := parseAPIError(body); apiErr != nil {
		return apiErr
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("instapaper: HTTP %d: %s", status, strings.TrimSpace(string(body)))
	}
	return nil
}

// parseAPIError reports the API's error payload if body holds one. Error
// payloads are a JSON array whose first element has type "error"; any
// other shape returns nil.
func parseAPIError(body []byte) *APIError {
	trim := bytes.TrimSpace(body)
	if len(trim) == 0 || trim[0] != '[' {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trim, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	var e struct {
		Type      string `json:"type"`
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(raw[0], &e); err != nil || e.Type != "error" {
		return nil
	}
	return &APIError{Code: e.ErrorCode, Message: e.Message}
}

// decodeEnvelope splits a JSON-array response into its raw elements,
// surfacing an embedded error payload as *APIError.
func decodeEnvelope(body []byte) ([]json.RawMessage, error) {
	trim := bytes.TrimSpace(body)
	if len(trim) == 0 {
		return nil, errors.New("instapaper: empty response body")
	}
	if trim[0] != '[' {
		return nil, errors.New("instapaper: expected JSON array response")
	}
	if apiErr := parseAPIError(trim); apiErr != nil {
		return nil, apiErr
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trim, &items); err != nil {
		return nil, fmt.Errorf("instapaper: decode response: %w", err)
	}
	return items, nil
}
