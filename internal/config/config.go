package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig describes one lottery variant. Profiles are loaded once from
// YAML at startup and are immutable afterwards.
type GameConfig interface {
	Name() string
	Slug() string
	// APISlug is the path segment used by the public results API.
	APISlug() string
	BallCount() int
	MinNumber() int
	MaxNumber() int
	TotalCombinations() int64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// ProviderConfig points at the external draw-results API.
type ProviderConfig interface {
	BaseURL() string
	Timeout() time.Duration
}
