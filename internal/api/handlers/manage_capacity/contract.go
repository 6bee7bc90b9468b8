package manage_capacity

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBuckets(ctx context.Context) (*models.CapacityBucketListResponse, error)
	CreateBucket(ctx context.Context, req *models.CreateCapacityBucketRequest) (*models.CapacityBucketResponse, error)
	UpdateBucket(ctx context.Context, id int64, req *models.UpdateCapacityBucketRequest) error
	DeleteBucket(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
