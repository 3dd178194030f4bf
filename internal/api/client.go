package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

// MaxTimeout bounds both a single request and the total backoff window.
const MaxTimeout = 30 * time.Second

// DefaultDownloadName is used when the server sends no Content-Disposition.
const DefaultDownloadName = "winterapi_output.zip"

// Auth is the basic-auth pair sent with every request.
type Auth struct {
	User     string
	Password string
}

// Response is the envelope every server endpoint answers with.
type Response struct {
	Msg  string          `json:"msg"`
	Body json.RawMessage `json:"body"`
}

// Client performs authenticated requests against one server, retrying
// transport failures with capped exponential backoff. Non-200 responses are
// not retried; they surface as ErrRequestFailed with the server's message.
type Client struct {
	Endpoints Endpoints

	httpClient *http.Client
}

// NewClient builds a client for the local or remote server.
func NewClient(local bool) *Client {
	return &Client{
		Endpoints:  NewEndpoints(local),
		httpClient: &http.Client{Timeout: MaxTimeout},
	}
}

// NewClientForBase builds a client against an explicit base URL, used by
// tests to point at an httptest server.
func NewClientForBase(baseURL string) *Client {
	return &Client{
		Endpoints:  Endpoints{BaseURL: baseURL},
		httpClient: &http.Client{Timeout: MaxTimeout},
	}
}

func (c *Client) do(method, rawURL string, auth Auth, body any, params url.Values) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to encode request data: %w", err)
		}
	}

	operation := func() (*http.Response, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequest(method, rawURL, reader)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if len(params) > 0 {
			req.URL.RawQuery = params.Encode()
		}
		if auth.User != "" || auth.Password != "" {
			req.SetBasicAuth(auth.User, auth.Password)
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			// Transport errors are the retryable class.
			return nil, err
		}

		if res.StatusCode != http.StatusOK {
			text, _ := io.ReadAll(res.Body)
			res.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("API call failed with '%s: %s': %w",
				res.Status, string(text), werrors.ErrRequestFailed))
		}
		return res, nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = MaxTimeout

	return backoff.RetryWithData(operation, policy)
}

func (c *Client) decode(res *http.Response) (*Response, error) {
	defer res.Body.Close()

	var decoded Response
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %w", err)
	}
	return &decoded, nil
}

// Get runs a GET request. The optional data is sent as a JSON body, the
// params as the query string.
func (c *Client) Get(rawURL string, auth Auth, data any, params url.Values) (*Response, error) {
	res, err := c.do(http.MethodGet, rawURL, auth, data, params)
	if err != nil {
		return nil, err
	}
	return c.decode(res)
}

// Post runs a POST request with a JSON body.
func (c *Client) Post(rawURL string, auth Auth, data any, params url.Values) (*Response, error) {
	res, err := c.do(http.MethodPost, rawURL, auth, data, params)
	if err != nil {
		return nil, err
	}
	return c.decode(res)
}

// Delete runs a DELETE request.
func (c *Client) Delete(rawURL string, auth Auth, params url.Values) (*Response, error) {
	res, err := c.do(http.MethodDelete, rawURL, auth, nil, params)
	if err != nil {
		return nil, err
	}
	return c.decode(res)
}

// GetStream runs a GET request and streams the response body to a file in
// outputDir, named from the Content-Disposition header when present.
// It returns the path of the downloaded file.
func (c *Client) GetStream(rawURL string, auth Auth, data any, params url.Values, outputDir string) (string, error) {
	if outputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		outputDir = home
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	res, err := c.do(http.MethodGet, rawURL, auth, data, params)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	fname := DefaultDownloadName
	if disposition := res.Header.Get("Content-Disposition"); disposition != "" {
		if _, dparams, err := mime.ParseMediaType(disposition); err == nil {
			if name, ok := dparams["filename"]; ok && name != "" {
				fname = name
			}
		}
	}

	outputPath := filepath.Join(outputDir, fname)
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer outputFile.Close()

	if _, err := io.Copy(outputFile, res.Body); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return outputPath, nil
}
