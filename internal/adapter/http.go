package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/internal/config"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/pagination"
	"github.com/MKhiriev/go-entry-keeper/internal/utils"
	"github.com/MKhiriev/go-entry-keeper/models"
)

const (
	entriesPath = "/entries"
	entryPath   = "/entries/{id}"

	paramUserID = "user_id"
	paramLimit  = "limit"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns [ErrNotConfigured] if adapterCfg.HTTPAddress is empty, or an error
// if it cannot be parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, ErrNotConfigured
	}

	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
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

// GetEntries implements [ServerAdapter]. It sends
// GET /entries?user_id=..&id=..&last_modified=.. and decodes the page.
func (h *httpServerAdapter) GetEntries(ctx context.Context, req models.EntriesRequest) (models.EntriesPage, error) {
	var page models.EntriesPage

	query := pagination.EncodeCursor(req.After)
	query.Set(paramUserID, req.UserID)
	if req.Limit > 0 {
		query.Set(paramLimit, strconv.Itoa(req.Limit))
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&page).
		Get(entriesPath)
	if err != nil {
		return models.EntriesPage{}, fmt.Errorf("get entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EntriesPage{}, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.GetEntries").
		Str("user_id", req.UserID).
		Int("count", len(page.Entries)).
		Bool("has_next", page.LastEvaluatedKey != nil).
		Msg("page received")

	return page, nil
}

// GetEntry implements [ServerAdapter] with GET /entries/{id}.
func (h *httpServerAdapter) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&entry).
		Get(entryPath)
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

// CreateEntry implements [ServerAdapter] with POST /entries.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, req models.CreateEntryRequest) (models.Entry, error) {
	var created models.Entry

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post(entriesPath)
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return created, nil
}

// UpdateEntry implements [ServerAdapter] with PUT /entries/{id}.
func (h *httpServerAdapter) UpdateEntry(ctx context.Context, id string, req models.UpdateEntryRequest) (models.Entry, error) {
	var updated models.Entry

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&updated).
		Put(entryPath)
	if err != nil {
		return models.Entry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return updated, nil
}

// DeleteEntry implements [ServerAdapter] with DELETE /entries/{id}.
func (h *httpServerAdapter) DeleteEntry(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(entryPath)
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}
