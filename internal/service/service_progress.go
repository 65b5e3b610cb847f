package service

import (
	"context"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

type progressService struct {
	progressRepository store.ProgressRepository

	logger *logger.Logger
}

func NewProgressService(progressRepository store.ProgressRepository, logger *logger.Logger) ProgressService {
	return &progressService{
		progressRepository: progressRepository,
		logger:             logger,
	}
}

func (p *progressService) GetProgress(ctx context.Context) ([]models.ProgressRecord, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return p.progressRepository.GetProgress(ctx, userID)
}

// UpsertProgress stores records for the user in ctx. Records without a user
// are assigned to that user; records naming somebody else are rejected.
func (p *progressService) UpsertProgress(ctx context.Context, records []models.ProgressRecord) error {
	userID, err := userFromContext(ctx)
	if err != nil {
		return err
	}

	owned := make([]models.ProgressRecord, 0, len(records))
	for _, record := range records {
		if record.UserID != "" && record.UserID != userID {
			logger.FromContext(ctx).Warn().
				Str("user_id", userID).
				Str("record_user_id", record.UserID).
				Msg("attempt to write another user's progress")
			return ErrForeignUser
		}
		record.UserID = userID
		owned = append(owned, record)
	}

	return p.progressRepository.UpsertProgress(ctx, owned)
}

func (p *progressService) IncrementProgress(ctx context.Context, delta models.ProgressDelta) (models.ProgressRecord, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return models.ProgressRecord{}, err
	}
	if delta.UserID != "" && delta.UserID != userID {
		return models.ProgressRecord{}, ErrForeignUser
	}
	delta.UserID = userID

	return p.progressRepository.IncrementProgress(ctx, delta)
}

func userFromContext(ctx context.Context) (string, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
