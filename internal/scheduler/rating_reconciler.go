package scheduler

import (
	"github.com/ejparker/curdboard-backend/internal/app/service"
	"github.com/ejparker/curdboard-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// RatingReconciler periodically recomputes every business's rating
// aggregates from the review collection. Submission-time recomputation
// never sees reviews edited directly in reviews.json; this job brings
// the aggregates back in line.
type RatingReconciler struct {
	cron          *cron.Cron
	schedule      string
	reviewService *service.ReviewService
}

func NewRatingReconciler(schedule string, reviewService *service.ReviewService) *RatingReconciler {
	return &RatingReconciler{
		cron:          cron.New(),
		schedule:      schedule,
		reviewService: reviewService,
	}
}

// Start registers the cron job and begins scheduling.
func (s *RatingReconciler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		logger.Info("Starting scheduled rating reconciliation", nil)

		corrected, err := s.reviewService.ReconcileRatings()
		if err != nil {
			logger.Error("Failed to reconcile rating aggregates", err)
			return
		}

		logger.Info("Rating reconciliation finished", map[string]interface{}{
			"corrected": corrected,
		})
	})
	if err != nil {
		logger.Error("Failed to add cron job for rating reconciliation", err)
		return err
	}

	s.cron.Start()
	logger.Info("Rating reconciler started", map[string]interface{}{
		"schedule": s.schedule,
	})

	return nil
}

// Stop halts scheduling.
func (s *RatingReconciler) Stop() {
	logger.Info("Stopping rating reconciler...", nil)
	s.cron.Stop()
	logger.Info("Rating reconciler stopped", nil)
}
