package jobs

import (
	"time"

	"harmony/config"
	"harmony/services"
	"harmony/services/logger"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

var jobLogger logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

// InitCronJobs registers the nightly reconciliation job. At midnight every
// room's cached status column is recomputed from the booking calendar, so a
// room whose guest checks out today shows available tomorrow even if no write
// touched it in between.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		jobLogger.Info("Running room status reconciliation at: %v", time.Now())

		if err := services.RefreshRoomStatuses(config.DB); err != nil {
			jobLogger.Error("Error refreshing room statuses: %v", err)
			return
		}

		if rdb, err := config.ConnectRedis(); err == nil {
			if err := services.DeleteFromRedis(config.Ctx, rdb, "rooms:all"); err != nil {
				jobLogger.Error("Error invalidating room cache: %v", err)
			}
			if err := services.DeleteKeysByPattern(config.Ctx, rdb, "bookings:*"); err != nil {
				jobLogger.Error("Error invalidating booking cache: %v", err)
			}
		}

		if m != nil {
			if msg, err := json.Marshal(map[string]string{"event": "rooms:refreshed"}); err == nil {
				m.Broadcast(msg)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	jobLogger.Info("Cron jobs initialized successfully")
	return nil
}
