package env

import (
	"fmt"
	"os"
	"time"

	"lotostats_backend/internal/config"
	"lotostats_backend/pkg/caixa"
)

const (
	providerURLEnvName     = "RESULTS_API_URL"
	providerTimeoutEnvName = "RESULTS_API_TIMEOUT"

	defaultProviderTimeout = 10 * time.Second
)

type providerConfig struct {
	baseURL string
	timeout time.Duration
}

func NewProviderConfig() (config.ProviderConfig, error) {
	baseURL := os.Getenv(providerURLEnvName)
	if len(baseURL) == 0 {
		baseURL = caixa.DefaultBaseURL
	}

	timeout := defaultProviderTimeout
	if raw := os.Getenv(providerTimeoutEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid results api timeout: %w", err)
		}
		timeout = parsed
	}

	return &providerConfig{
		baseURL: baseURL,
		timeout: timeout,
	}, nil
}

func (cfg *providerConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *providerConfig) Timeout() time.Duration {
	return cfg.timeout
}
