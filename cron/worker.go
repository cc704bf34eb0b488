package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"estateconnect/config"
	"estateconnect/models"
	"estateconnect/services/catalog"
	"estateconnect/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReviewWorker runs the listing review worker in background.
func InitReviewWorker(catalogSvc catalog.CatalogService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeListingReview, handleReviewTask(catalogSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReviewWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReviewWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReviewWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReviewTask(catalogSvc catalog.CatalogService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReviewPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReviewHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReviewHandler] Reviewing listing %d", p.ListingID)
		if err := catalogSvc.ApproveListing(p.ListingID); err != nil {
			log.Printf("[ReviewHandler] Failed to approve listing %d: %v", p.ListingID, err)
			return err
		}
		log.Printf("[ReviewHandler] Listing %d approved and published", p.ListingID)
		return nil
	}
}

// NewQueueClient returns an asynq client on the review queue database.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}
