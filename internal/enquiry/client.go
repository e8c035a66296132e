// internal/enquiry/client.go
package enquiry

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"egs-enquiry/internal/common/errors"
	commonhttp "egs-enquiry/internal/common/http"
	"egs-enquiry/internal/common/logger"
)

// ErrUnauthorized signals a 401 from the backend; the caller clears the
// stored session token and redirects to login.
var ErrUnauthorized = stderrors.New("SESSION_REJECTED")

// Client talks to the enquiry backend. One client serves all forms; the
// per-form endpoint path is passed per call.
type Client struct {
	http    *commonhttp.Client
	baseURL string
	logger  logger.Logger
}

func NewClient(httpClient *commonhttp.Client, baseURL string, log logger.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: trimSlash(baseURL),
		logger:  log.WithFields(map[string]interface{}{"component": "api-client"}),
	}
}

// backendResponse is the subset of the backend's reply we act on.
type backendResponse struct {
	Message string `json:"message"`
}

// SubmitEnquiry POSTs the payload to the form's endpoint with bearer auth.
// Returns ErrUnauthorized on 401 and a StandardError carrying the backend's
// message (or the generic fallback) on any other non-2xx.
func (c *Client) SubmitEnquiry(ctx context.Context, path, token string, payload *SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.NewParseError(err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, path)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.DoWithContext(ctx, req)
	if err != nil {
		return errors.NewSubmissionFailedError("", 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return errors.NewSubmissionFailedError(decodeMessage(resp.Body), resp.StatusCode)
}

// MyEnquiries fetches the caller's previously submitted enquiries for one
// form (the dashboard read path). Returns ErrUnauthorized on 401.
func (c *Client) MyEnquiries(ctx context.Context, readPath, token string) ([]map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, readPath)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.DoWithContext(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewSubmissionFailedError(decodeMessage(resp.Body), resp.StatusCode)
	}

	var out struct {
		Items []map[string]interface{} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.NewParseError(err)
	}
	return out.Items, nil
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

func decodeMessage(r io.Reader) string {
	var br backendResponse
	if err := json.NewDecoder(r).Decode(&br); err != nil {
		return ""
	}
	return br.Message
}
