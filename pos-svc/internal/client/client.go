package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"restaurant-pos/pos-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the restaurant backend. Every response is decoded into an
// endpoint specific schema and validated before it reaches the services.
type Client struct {
	baseURL string
	http    HTTPClient
}

func New(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validator interface {
	validate() error
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[pos-svc] backend %s %s failed: %v", method, path, err)
		return domain.NetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NetworkError(fmt.Errorf("read %s %s: %w", method, path, err))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("[pos-svc] backend %s %s returned non-JSON body (status %d)", method, path, resp.StatusCode)
		return &domain.Error{
			Kind:    domain.KindNetwork,
			Message: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
			Status:  resp.StatusCode,
			Err:     err,
		}
	}

	failed := resp.StatusCode < 200 || resp.StatusCode >= 300 || (env.Success != nil && !*env.Success)
	if failed {
		message := env.Error
		if message == "" {
			message = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		}
		return &domain.Error{
			Kind:    kindForStatus(resp.StatusCode),
			Message: message,
			Status:  resp.StatusCode,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return malformed(method, path, err)
	}
	if v, ok := out.(validator); ok {
		if err := v.validate(); err != nil {
			return malformed(method, path, err)
		}
	}
	return nil
}

func malformed(method, path string, err error) error {
	log.Printf("[pos-svc] malformed response from %s %s: %v", method, path, err)
	return &domain.Error{
		Kind:    domain.KindRemote,
		Message: fmt.Sprintf("malformed response from %s %s: %v", method, path, err),
		Err:     err,
	}
}

func kindForStatus(status int) domain.ErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.KindValidation
	case http.StatusNotFound:
		return domain.KindNotFound
	case http.StatusConflict:
		return domain.KindConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.KindForbidden
	default:
		return domain.KindRemote
	}
}
