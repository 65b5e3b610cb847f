package http

import (
	"time"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
)

const defaultRequestTimeout = 30 * time.Second

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	// rateLimit is requests per minute per client IP; zero disables it.
	rateLimit int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		rateLimit:      cfg.RateLimit,
		logger:         logger,
	}
}
