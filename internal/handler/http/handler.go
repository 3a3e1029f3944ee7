package http

import (
	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
