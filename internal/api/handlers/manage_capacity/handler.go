package manage_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBucketID    = "некорректный ID бакета"
	msgNotFound           = "бакет вместимости не найден"
	msgDuplicate          = "бакет с таким днем недели и диапазоном уже существует"
	msgInvalidRequest     = "некорректные данные запроса"
)

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

// HandleList GET /api/v1/schedule/capacity
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBuckets(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/capacity - Failed to list buckets: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/capacity - Listed successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/schedule/capacity
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCapacityBucketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBucket(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDuplicateBucket):
			h.logger.Warn("POST /schedule/capacity - Duplicate bucket: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgDuplicate)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /schedule/capacity - Failed to create bucket: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/capacity - Created successfully: bucket_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/schedule/capacity/{bucketId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucketIDStr := vars["bucketId"]

	bucketID, err := strconv.ParseInt(bucketIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /schedule/capacity/{id} - Invalid bucket ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBucketID)
		return
	}

	var req models.UpdateCapacityBucketRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedule/capacity/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateBucket(r.Context(), bucketID, &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBucketNotFound):
			h.logger.Warn("PATCH /schedule/capacity/{id} - Bucket not found: bucket_id=%d", bucketID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /schedule/capacity/{id} - Invalid input: bucket_id=%d, error=%v", bucketID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("PATCH /schedule/capacity/{id} - Failed to update bucket: bucket_id=%d, error=%v",
				bucketID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedule/capacity/{id} - Updated successfully: bucket_id=%d", bucketID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete DELETE /api/v1/schedule/capacity/{bucketId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucketIDStr := vars["bucketId"]

	bucketID, err := strconv.ParseInt(bucketIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/capacity/{id} - Invalid bucket ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBucketID)
		return
	}

	if err := h.service.DeleteBucket(r.Context(), bucketID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBucketNotFound):
			h.logger.Warn("DELETE /schedule/capacity/{id} - Bucket not found: bucket_id=%d", bucketID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /schedule/capacity/{id} - Failed to delete bucket: bucket_id=%d, error=%v",
				bucketID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/capacity/{id} - Deleted successfully: bucket_id=%d", bucketID)
	w.WriteHeader(http.StatusNoContent)
}
