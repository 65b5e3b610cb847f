package service

import (
	"context"

	"github.com/MKhiriev/go-vocab-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CardService serves the shared card corpus of the remote store.
type CardService interface {
	UpsertCards(ctx context.Context, cards []models.Card) ([]models.Card, error)
	GetAllCards(ctx context.Context) ([]models.Card, error)
	GetCardRefs(ctx context.Context) ([]models.CardRef, error)
}

// ProgressService serves the progress of the user found in the context.
type ProgressService interface {
	GetProgress(ctx context.Context) ([]models.ProgressRecord, error)
	UpsertProgress(ctx context.Context, records []models.ProgressRecord) error
	IncrementProgress(ctx context.Context, delta models.ProgressDelta) (models.ProgressRecord, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
