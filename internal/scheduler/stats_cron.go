package scheduler

import (
	"context"
	"time"

	"github.com/Dias221467/Mongo_Exercises/internal/jobs"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/robfig/cron/v3"
)

// ScheduleOff disables the statistics job.
const ScheduleOff = "off"

const scanTimeout = 30 * time.Second

// StartStatsCron schedules the collection statistics scan. It returns a nil
// cron when the schedule is off; callers stop the returned cron on shutdown.
func StartStatsCron(schedule string, stats *jobs.CollectionStats) (*cron.Cron, error) {
	if schedule == "" || schedule == ScheduleOff {
		logger.Log.Info("Collection stats job disabled")
		return nil, nil
	}

	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()

		if err := stats.RunScan(ctx); err != nil {
			logger.Log.WithError(err).Error("Collection stats scan failed")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logger.Log.WithField("schedule", schedule).Info("Collection stats job scheduled")
	return c, nil
}
