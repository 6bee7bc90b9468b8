package get_schedule_config

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

// ScheduleConfigResponse сводная конфигурация расписания для клиентов
type ScheduleConfigResponse struct {
	Blackouts []models.BlackoutResponse       `json:"blackouts"`
	Capacity  []models.CapacityBucketResponse `json:"capacity"`
	Limit     *models.BookingLimitResponse    `json:"limit"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blackouts, err := h.service.ListBlackouts(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/config - Failed to list blackouts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	buckets, err := h.service.ListBuckets(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/config - Failed to list capacity buckets: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	limit, err := h.service.GetLimitSetting(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/config - Failed to get limit setting: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &ScheduleConfigResponse{
		Blackouts: blackouts.Blackouts,
		Capacity:  buckets.Buckets,
		Limit:     limit,
	}

	h.logger.Info("GET /schedule/config - Retrieved successfully: blackouts=%d, buckets=%d",
		blackouts.Total, buckets.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
