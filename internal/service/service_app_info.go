package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
)

// versionInfo reports the build the remote store runs. Clients compare it
// with their own version on /api/version.
type versionInfo struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("remote store build")
	return versionInfo{version: version}, nil
}

func (v versionInfo) GetAppVersion(context.Context) string {
	return v.version
}
