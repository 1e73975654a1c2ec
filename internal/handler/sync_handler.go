package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/collegemonitor/monitor-api/internal/dto"
	"github.com/collegemonitor/monitor-api/internal/service"
	"github.com/collegemonitor/monitor-api/internal/utils"
)

// SyncHandler wires the administrator-triggered data fetch endpoint.
type SyncHandler struct {
	service service.SyncService
	logger  zerolog.Logger
}

// NewSyncHandler constructs the handler.
func NewSyncHandler(service service.SyncService, logger zerolog.Logger) *SyncHandler {
	return &SyncHandler{
		service: service,
		logger:  logger.With().Str("component", "sync_handler").Logger(),
	}
}

// Register attaches the sync trigger route to the router group.
func (h *SyncHandler) Register(router fiber.Router) {
	router.Post("", h.run)
}

// run executes the full sync pass synchronously within the request.
func (h *SyncHandler) run(c *fiber.Ctx) error {
	summary, err := h.service.Run(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("sync run failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "Data fetch failed: "+err.Error())
	}

	response := dto.SyncSummaryResponse{
		TotalFetched:      summary.TotalFetched,
		StudentsProcessed: summary.StudentsProcessed,
		Errors:            summary.Errors,
		Message:           summary.Message(),
	}

	return utils.SendSuccess(c, response.Message, response)
}
