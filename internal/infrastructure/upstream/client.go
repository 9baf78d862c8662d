// Package upstream implements the REST client for the inventory backend.
// It is a thin transport: one generic request wrapper plus one method per
// endpoint, no retries, no caching, no batching. The bearer token is read
// from the request context on every call rather than cached on the client.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"stockgate/internal/core/apperror"
	"stockgate/internal/core/config"
	appctx "stockgate/internal/core/context"
)

// maxResponseBytes caps how much of an upstream response is read.
const maxResponseBytes = 1 << 20

// Client talks to the inventory backend.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a backend client from configuration.
func New(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

// do performs one JSON request against the backend. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.NewInternal(fmt.Errorf("encode %s %s request: %w", method, path, err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("build %s %s request: %w", method, path, err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	return c.send(req, method, path, out)
}

// FormFile is an uploaded file forwarded to a multipart endpoint.
type FormFile struct {
	Field    string
	Name     string
	Contents io.Reader
}

// doMultipart performs one multipart/form-data request, used by the
// file-bearing product endpoints.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, file *FormFile, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return apperror.NewInternal(fmt.Errorf("write form field %s: %w", key, err))
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return apperror.NewInternal(fmt.Errorf("create form file: %w", err))
		}
		if _, err := io.Copy(part, file.Contents); err != nil {
			return apperror.NewInternal(fmt.Errorf("copy form file: %w", err))
		}
	}
	if err := writer.Close(); err != nil {
		return apperror.NewInternal(fmt.Errorf("finish multipart body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("build %s %s request: %w", method, path, err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(ctx, req)

	return c.send(req, method, path, out)
}

// authorize forwards the session's upstream token, when present.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if token := appctx.GetToken(ctx); token != "" {
		req.Header.Set("Authorization", token)
	}
}

func (c *Client) send(req *http.Request, method, path string, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return apperror.NewInternal(fmt.Errorf("upstream %s %s: %w", method, path, req.Context().Err()))
		}
		return apperror.NewInternal(fmt.Errorf("upstream %s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("read upstream response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperror.NewInternal(fmt.Errorf("decode upstream response: %w", err))
		}
	}
	return nil
}

// errorEnvelope is the backend's error payload shape.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decodeError maps a non-2xx upstream response to an AppError, keeping the
// server-supplied message when one is present.
func decodeError(status int, raw []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			return apperror.NewUpstream(status, envelope.Message)
		}
		if envelope.Error != "" {
			return apperror.NewUpstream(status, envelope.Error)
		}
	}
	return apperror.NewUpstream(status, "")
}
