package export

import (
	"lotostats_backend/internal/repository"
	"lotostats_backend/internal/service"
)

type serv struct {
	repo repository.DrawRepository
}

func NewExportService(repo repository.DrawRepository) service.ExportService {
	return &serv{repo: repo}
}
