package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

func testConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		Adapter: config.ClientAdapter{RequestTimeout: time.Second},
		Storage: config.ClientStorage{Path: filepath.Join(t.TempDir(), "client.db")},
		Workers: config.ClientWorkers{
			SyncInterval:     time.Hour,
			RetryDelay:       time.Millisecond,
			MaxRetryAttempts: 3,
			ProbeInterval:    time.Hour,
		},
	}
}

func TestApp_LocalOnly(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, testConfig(t), logger.Nop())
	require.NoError(t, err)

	assert.Empty(t, app.UserID())

	err = app.Run(ctx, func(ctx context.Context, services *service.ClientServices) error {
		card, err := services.CardService.Add(ctx, models.Card{Word: "der Hund", Definition: "dog", Type: models.CardTypeNoun})
		if err != nil {
			return err
		}

		practiced, err := services.CardService.RecordPractice(ctx, card.ID, 1)
		if err != nil {
			return err
		}
		assert.Equal(t, 1, practiced.ViewCount)
		assert.Zero(t, services.SyncService.Status().QueueSize)

		_, err = services.SyncService.ForceSync(ctx)
		assert.ErrorIs(t, err, service.ErrRemoteNotConfigured)
		return nil
	})
	require.NoError(t, err)
}

func TestApp_SignedInSyncsPractice(t *testing.T) {
	var increments atomic.Int32
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			w.WriteHeader(http.StatusOK)
		case "/api/progress/increment":
			var delta models.ProgressDelta
			if err := json.NewDecoder(r.Body).Decode(&delta); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			increments.Add(1)
			utils.WriteJSON(w, models.ProgressRecord{UserID: delta.UserID, CardID: delta.CardID, ViewCount: delta.ViewDelta}, http.StatusOK)
		default:
			utils.WriteJSON(w, []any{}, http.StatusOK)
		}
	}))
	t.Cleanup(remote.Close)

	token, err := utils.GenerateJWTToken("go-vocab-keeper", "user-1", time.Hour, "secret")
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Adapter.HTTPAddress = remote.URL
	cfg.Adapter.AccessToken = token.SignedString

	ctx := context.Background()
	app, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "user-1", app.UserID())

	err = app.Run(ctx, func(ctx context.Context, services *service.ClientServices) error {
		card, err := services.CardService.Add(ctx, models.Card{Word: "gehen", Definition: "to go", Type: models.CardTypeVerb})
		if err != nil {
			return err
		}
		if _, err = services.CardService.RecordPractice(ctx, card.ID, 1); err != nil {
			return err
		}

		assert.Eventually(t, func() bool {
			return services.SyncService.Status().QueueSize == 0 && increments.Load() == 1
		}, 2*time.Second, 10*time.Millisecond)
		return nil
	})
	require.NoError(t, err)
}

func TestApp_InvalidTokenRunsWithoutSession(t *testing.T) {
	cfg := testConfig(t)
	cfg.Adapter.HTTPAddress = "http://127.0.0.1:1"
	cfg.Adapter.AccessToken = "not-a-jwt"

	app, err := NewApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Empty(t, app.UserID())
}
