// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Semenov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/dsemenov/snipsync/internal/config"
	"github.com/dsemenov/snipsync/internal/logger"
	"github.com/dsemenov/snipsync/internal/utils"
	"github.com/dsemenov/snipsync/models"
)

// LibraryFileName is the well-known filename marker identifying the shared
// command library blob among the caller's blobs. FindExisting searches by it.
const LibraryFileName = "snipsync-library.json"

// blobDocument is the blob service's envelope around the library payload.
type blobDocument struct {
	ID      string               `json:"id,omitempty"`
	Name    string               `json:"name"`
	Payload models.RemotePayload `json:"payload"`
}

type blobListResponse struct {
	Items []blobDocument `json:"items"`
}

type httpBlobClient struct {
	client    *utils.HTTPClient
	deviceKey string

	logger *logger.Logger
}

// NewHTTPBlobClient constructs an HTTP/REST implementation of
// [RemoteBlobClient]. It normalises and validates the base URL from
// cfg.Address and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPBlobClient(cfg config.Remote, logger *logger.Logger) (RemoteBlobClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpBlobClient{client: client, deviceKey: cfg.DeviceKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate implements [RemoteBlobClient]. It POSTs the configured device
// key to POST /api/v1/auth/token. On success the bearer token is extracted
// from the Authorization response header. A missing device key or a rejected
// one both surface as ErrUnauthorized.
func (h *httpBlobClient) Authenticate(ctx context.Context) (models.Credential, error) {
	if strings.TrimSpace(h.deviceKey) == "" {
		return models.Credential{}, fmt.Errorf("%w: no device key configured", ErrUnauthorized)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"device_key": h.deviceKey}).
		Post("/api/v1/auth/token")
	if err != nil {
		return models.Credential{}, fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %s", ErrUnauthorized, err)
	}

	return models.Credential{Token: token}, nil
}

// FindExisting implements [RemoteBlobClient]. It searches the caller's blobs
// by the well-known library filename and returns the handle of the first
// match, or "" when the service knows no such blob.
func (h *httpBlobClient) FindExisting(ctx context.Context, cred models.Credential) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(cred.Token).
		SetQueryParam("name", LibraryFileName).
		Get("/api/v1/blobs")
	if err != nil {
		return "", fmt.Errorf("find existing blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var list blobListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return "", fmt.Errorf("decode blob list: %w", err)
	}
	if len(list.Items) == 0 {
		return "", nil
	}

	h.logger.Debug().
		Str("handle", list.Items[0].ID).
		Msg("adopted existing library blob")
	return list.Items[0].ID, nil
}

// Create implements [RemoteBlobClient]. It POSTs the payload wrapped in a
// blob document and returns the handle assigned by the service.
func (h *httpBlobClient) Create(ctx context.Context, cred models.Credential, payload models.RemotePayload) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(cred.Token).
		SetHeader("Content-Type", "application/json").
		SetBody(blobDocument{Name: LibraryFileName, Payload: payload}).
		Post("/api/v1/blobs")
	if err != nil {
		return "", fmt.Errorf("create blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var doc blobDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return "", fmt.Errorf("decode created blob: %w", err)
	}
	if doc.ID == "" {
		return "", fmt.Errorf("create blob: service returned no handle")
	}

	return doc.ID, nil
}

// Update implements [RemoteBlobClient]. It PUTs the payload over the blob
// identified by handle. A 404 response maps to ErrHandleNotFound, which the
// orchestrator treats as "handle gone, recreate once".
func (h *httpBlobClient) Update(ctx context.Context, cred models.Credential, handle string, payload models.RemotePayload) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(cred.Token).
		SetHeader("Content-Type", "application/json").
		SetBody(blobDocument{ID: handle, Name: LibraryFileName, Payload: payload}).
		Put("/api/v1/blobs/" + url.PathEscape(handle))
	if err != nil {
		return fmt.Errorf("update blob request: %w", err)
	}

	return mapHTTPError(resp)
}

// Fetch implements [RemoteBlobClient]. It GETs the blob identified by handle
// and unwraps the library payload. A body that cannot be decoded, or one
// whose payload carries no commands array, is reported as ErrInvalidPayload.
func (h *httpBlobClient) Fetch(ctx context.Context, cred models.Credential, handle string) (*models.RemotePayload, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(cred.Token).
		Get("/api/v1/blobs/" + url.PathEscape(handle))
	if err != nil {
		return nil, fmt.Errorf("fetch blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var doc struct {
		ID      string          `json:"id"`
		Name    string          `json:"name"`
		Payload json.RawMessage `json:"payload"`
	}
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	payload, err := DecodePayload(doc.Payload)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// DecodePayload validates and decodes a raw library payload. It enforces the
// schema contract shared by fetch and file import: valid JSON with a present
// commands array.
func DecodePayload(raw []byte) (*models.RemotePayload, error) {
	var probe struct {
		Commands *[]models.Command `json:"commands"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	if probe.Commands == nil {
		return nil, fmt.Errorf("%w: missing commands array", ErrInvalidPayload)
	}

	var payload models.RemotePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}

	return &payload, nil
}
