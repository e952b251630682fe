package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/zamotany/lunatic/internal/diagnostics"
	"github.com/zamotany/lunatic/internal/position"
)

// Client calls a lunatic server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for baseURL using hc, or http.DefaultClient
// when hc is nil.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: hc}
}

// RemoteError is a failure reported by the server.
type RemoteError struct {
	Status int
	Body   ErrorBody
}

func (e *RemoteError) Error() string {
	if e.Body.Line > 0 {
		return fmt.Sprintf("remote %s at %d:%d: %s", e.Body.Category, e.Body.Line, e.Body.Column, e.Body.Message)
	}
	return fmt.Sprintf("remote error (%d): %s", e.Status, e.Body.Message)
}

// Diagnostic converts the remote error into a local diagnostic so that it
// renders like one produced in-process.
func (e *RemoteError) Diagnostic() diagnostics.Diagnostic {
	start := position.Position{Line: e.Body.Line, Column: e.Body.Column}
	return diagnostics.Diagnostic{
		Level:    diagnostics.DiagnosticError,
		Category: diagnostics.CategorySyntax,
		Code:     e.Body.Code,
		Kind:     e.Body.Category,
		Message:  e.Body.Message,
		Span:     position.Span{Start: start, End: start},
	}
}

// Parse asks the server to parse source. version may be empty to use the
// server default.
func (c *Client) Parse(ctx context.Context, source, version string) (*ParseResponse, error) {
	var out ParseResponse
	if err := c.post(ctx, "/v1/parse", Request{Source: source, LuaVersion: version}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tokens asks the server to scan source.
func (c *Client) Tokens(ctx context.Context, source, version string) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/v1/tokens", Request{Source: source, LuaVersion: version}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, in Request, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8*MaxRequestBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		if jsonErr := json.Unmarshal(data, &er); jsonErr != nil || er.Error.Message == "" {
			er.Error = ErrorBody{Category: "http", Message: strings.TrimSpace(string(data))}
		}
		return &RemoteError{Status: resp.StatusCode, Body: er.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
