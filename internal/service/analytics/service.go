package analytics

import (
	"lotostats_backend/internal/repository"
	"lotostats_backend/internal/service"
)

type serv struct {
	repo repository.DrawRepository
}

func NewAnalyticsService(repo repository.DrawRepository) service.AnalyticsService {
	return &serv{repo: repo}
}
