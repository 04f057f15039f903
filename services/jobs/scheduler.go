package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// FormSweepSpec is how often abandoned contact forms are collected
const FormSweepSpec = "@every 1m"

// StartScheduler starts the background jobs. The returned cron must be
// stopped on shutdown.
func StartScheduler(sweeper FormSweeper) *cron.Cron {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(FormSweepSpec, func() {
		SweepForms(sweeper, time.Now())
	})
	if err != nil {
		log.Fatalf("[CRON] Failed to schedule form sweeper: %v", err)
	}

	c.Start()
	log.Println("[CRON] Scheduler started")
	return c
}
