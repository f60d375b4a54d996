package tasks

import (
	"context"
	"fmt"
	"time"
)

// newDailyCheckInTask creates the scheduled task that runs one check-in pass per firing.
func newDailyCheckInTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "daily_checkin")

	return func(ctx context.Context) error {
		log.InfoContext(ctx, "Starting scheduled check-in task...")
		startTime := time.Now()

		results, err := deps.SignIn.Run(ctx)
		duration := time.Since(startTime)

		if err != nil {
			log.ErrorContext(ctx, "Check-in task aborted", "error", err, "reports", len(results), "duration", duration)
			return fmt.Errorf("daily check-in failed: %w", err)
		}

		log.InfoContext(ctx, "Scheduled check-in task completed", "reports", len(results), "duration", duration)
		return nil
	}
}
