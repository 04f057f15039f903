package jobs

import (
	"log"
	"time"
)

// FormSweeper is implemented by intake.Registry
type FormSweeper interface {
	Sweep(now time.Time) int
	Len() int
}

// SweepForms drops closed and idle contact form instances
func SweepForms(sweeper FormSweeper, now time.Time) int {
	removed := sweeper.Sweep(now)
	if removed > 0 {
		log.Printf("[JOB] Swept %d contact form instances (%d live)", removed, sweeper.Len())
	}
	return removed
}
