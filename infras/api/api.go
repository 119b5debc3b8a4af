package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

// Client is the sole point of contact with the external record service.
// Repositories sit on top of it; nothing else touches the network.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.Client.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	log.Info().Str("baseURL", cfg.Client.BaseURL).Msg("record service client created")

	return &Client{
		baseURL:    strings.TrimRight(cfg.Client.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorBody is the shape the record service uses for non-2xx responses.
// Either field may carry the human-readable cause.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return failure.InternalError(fmt.Errorf("encoding %s %s payload: %w", method, path, err)) //nolint:wrapcheck
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return failure.InternalError(fmt.Errorf("building %s %s request: %w", method, path, err)) //nolint:wrapcheck
	}

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("record service request failed")

		return failure.RecordServiceUnreachable
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return c.statusFailure(method, path, response)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("failed to decode record service response")

		return failure.InternalError(fmt.Errorf("decoding %s %s response: %w", method, path, err)) //nolint:wrapcheck
	}

	return nil
}

func (c *Client) statusFailure(method, path string, response *http.Response) error {
	var cause errorBody

	raw, err := io.ReadAll(io.LimitReader(response.Body, 1<<16))
	if err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &cause)
	}

	message := cause.Error
	if message == "" {
		message = cause.Message
	}

	log.Warn().
		Int("status", response.StatusCode).
		Str("method", method).
		Str("path", path).
		Str("cause", message).
		Msg("record service rejected request")

	return failure.FromStatus(response.StatusCode, message) //nolint:wrapcheck
}
