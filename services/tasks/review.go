package tasks

import (
	"encoding/json"
	"time"

	"estateconnect/config"
	"estateconnect/models"

	"github.com/hibiken/asynq"
)

const TypeListingReview = "listing:review"

// NewReviewTask builds the asynq task that moves a published listing through
// review. Processing is delayed by the configured review window.
func NewReviewTask(payload models.ReviewPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	delay := time.Duration(config.AppConfig.ReviewDelayMinutes) * time.Minute
	opts := []asynq.Option{
		asynq.ProcessIn(delay),
		asynq.MaxRetry(5),
		asynq.Queue("default"),
	}
	return asynq.NewTask(TypeListingReview, b), opts, nil
}
