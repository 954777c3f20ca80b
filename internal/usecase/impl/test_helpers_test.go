package impl

import (
	"io"
	"log/slog"

	"zenmap/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Location: &config.LocationConfig{
			StayHysteresisMeters:      50,
			DefaultNearbyRadiusMeters: 1000,
			MaxNearbyRadiusMeters:     5000,
			HistoryDefaultLimit:       100,
		},
	}

	return cfg
}

func floatPtr(v float64) *float64 { return &v }
