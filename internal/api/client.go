// Package api implements the HTTP client used to talk to the products
// service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the address of the products service used when the
// configuration does not name one.
const DefaultBaseURL = "https://fakestoreapi.com"

// Client issues HTTP calls against the products service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client targeting the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		// No timeout here; calls run until the transport gives up or the
		// context is canceled.
		httpClient: &http.Client{},
	}
}

// Execute performs one HTTP call against the service and interprets the
// reply.
//
// The payload is serialized as a JSON body only when the method is POST or
// PUT; GET and DELETE never carry one. A reply with a non-success status
// produces a *RemoteError carrying the status and the raw body. A successful
// reply decodes into a JSON result when the server advertises a JSON media
// type, and degrades to a status message otherwise.
//
// Failures are logged at the point of detection and returned unchanged.
func (c *Client) Execute(ctx context.Context, method, path string, payload any) (Result, error) {
	result, err := c.execute(ctx, method, path, payload)
	if err != nil {
		log.Printf("storectl: %s %s: %s", method, path, err)
	}
	return result, err
}

func (c *Client) execute(ctx context.Context, method, path string, payload any) (Result, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	var body io.Reader
	hasBody := payload != nil && (method == http.MethodPost || method == http.MethodPut)
	if hasBody {
		b, err := json.Marshal(payload)
		if err != nil {
			return Result{}, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("calling %s: %w", url, err)
	}
	defer res.Body.Close()

	// The body is read as raw text first: error replies are not assumed to
	// be JSON.
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Result{}, fmt.Errorf("reading reply from %s: %w", url, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return Result{}, &RemoteError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       string(raw),
		}
	}

	if isJSON(res.Header.Get("Content-Type")) {
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return Result{}, fmt.Errorf("decoding reply from %s: %w", url, err)
		}
		return JSON(value), nil
	}
	return Status(res.StatusCode), nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// RemoteError is returned when the service answers with a non-success
// status.
type RemoteError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server replied %s", e.Status)
	}
	return fmt.Sprintf("server replied %s: %s", e.Status, e.Body)
}

// ProductDraft is the payload of a product creation call.
type ProductDraft struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}
