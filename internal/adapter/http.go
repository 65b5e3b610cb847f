package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

// upsertBatchSize bounds the number of cards sent in one upsert request.
const upsertBatchSize = 100

const defaultReadRetryDelay = 200 * time.Millisecond

type httpRemoteStore struct {
	client *resty.Client

	readAttempts   uint
	readRetryDelay time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.HTTPAddress, configures
// the underlying HTTP client with the resolved base URL and request timeout
// and picks up cfg.AccessToken as the initial bearer token.
//
// Read requests are repeated cfg.ReadRetries more times on network errors,
// 429 and 5xx answers. Writes are sent once.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	retries := cfg.ReadRetries
	if retries < 0 {
		retries = 0
	}

	h := &httpRemoteStore{
		client:         client,
		readAttempts:   uint(retries) + 1,
		readRetryDelay: defaultReadRetryDelay,
		logger:         logger,
	}
	h.SetToken(cfg.AccessToken)

	return h, nil
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

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteStore].
func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [RemoteStore] with GET /api/health.
func (h *httpRemoteStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpsertCards implements [RemoteStore]. Cards are sent to
// POST /api/cards/upsert in batches of [upsertBatchSize]; the first failing
// batch aborts the import and the rows stored so far are returned with the
// error.
func (h *httpRemoteStore) UpsertCards(ctx context.Context, cards []models.Card) ([]models.Card, error) {
	stored := make([]models.Card, 0, len(cards))

	for start := 0; start < len(cards); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(cards))

		resp, err := h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(cards[start:end]).
			Post("/api/cards/upsert")
		if err != nil {
			return stored, fmt.Errorf("upsert cards request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			h.logger.Err(err).
				Str("func", "httpRemoteStore.UpsertCards").
				Int("batch_start", start).
				Int("batch_size", end-start).
				Msg("card batch rejected")
			return stored, err
		}

		var batch []models.Card
		if err = json.Unmarshal(resp.Body(), &batch); err != nil {
			return stored, fmt.Errorf("decode upsert cards response: %w", err)
		}
		stored = append(stored, batch...)
	}

	return stored, nil
}

// FetchAllCards implements [RemoteStore] with GET /api/cards.
func (h *httpRemoteStore) FetchAllCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := h.getJSON(ctx, "/api/cards", &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// FetchCardRefs implements [RemoteStore] with GET /api/cards/ids.
func (h *httpRemoteStore) FetchCardRefs(ctx context.Context) ([]models.CardRef, error) {
	var refs []models.CardRef
	if err := h.getJSON(ctx, "/api/cards/ids", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// FetchProgress implements [RemoteStore] with GET /api/progress. userID is
// unused here; the server infers the user from the bearer token.
func (h *httpRemoteStore) FetchProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	if err := h.getJSON(ctx, "/api/progress", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpsertProgress implements [RemoteStore] with POST /api/progress/upsert.
func (h *httpRemoteStore) UpsertProgress(ctx context.Context, records []models.ProgressRecord) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(records).
		Post("/api/progress/upsert")
	if err != nil {
		return fmt.Errorf("upsert progress request: %w", err)
	}

	return mapHTTPError(resp)
}

// IncrementProgress implements [RemoteStore] with POST
// /api/progress/increment.
func (h *httpRemoteStore) IncrementProgress(ctx context.Context, delta models.ProgressDelta) (models.ProgressRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(delta).
		Post("/api/progress/increment")
	if err != nil {
		return models.ProgressRecord{}, fmt.Errorf("increment progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProgressRecord{}, err
	}

	var record models.ProgressRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.ProgressRecord{}, fmt.Errorf("decode increment progress response: %w", err)
	}
	return record, nil
}

// getJSON performs an authenticated GET of path and decodes the body into
// out, repeating the request on network errors and retryable statuses.
func (h *httpRemoteStore) getJSON(ctx context.Context, path string, out any) error {
	return retry.Do(
		func() error {
			resp, err := h.authedRequest(ctx).Get(path)
			if err != nil {
				return fmt.Errorf("get %s request: %w", path, err)
			}
			if err = mapHTTPError(resp); err != nil {
				if !retryableStatus(resp.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			if err = json.Unmarshal(resp.Body(), out); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode %s response: %w", path, err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(h.readAttempts),
		retry.Delay(h.readRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			h.logger.Warn().
				Err(err).
				Str("func", "httpRemoteStore.getJSON").
				Str("path", path).
				Uint("attempt", n+1).
				Msg("remote read failed")
		}),
	)
}

// authedRequest starts a request carrying the bearer token and a fresh
// request id.
func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(utils.RequestIDHeader, uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
