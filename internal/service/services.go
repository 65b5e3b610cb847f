package service

import (
	"fmt"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/store"
	"github.com/MKhiriev/go-vocab-keeper/internal/validators"
)

type Services struct {
	AuthService     AuthService
	CardService     CardService
	ProgressService ProgressService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator, err := validators.NewCardValidator()
	if err != nil {
		return nil, fmt.Errorf("card validator: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(cfg.App, logger),
		CardService: NewCardValidationService(validator).
			Wrap(NewCardService(storages.CardRepository, logger)),
		ProgressService: NewProgressValidationService(validator).
			Wrap(NewProgressService(storages.ProgressRepository, logger)),
		AppInfoService: appInfo,
	}, nil
}
