// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSessionSweeper drops expired sessions on a fixed interval so the
// session map does not grow unbounded.
func (s *AuthService) StartSessionSweeper(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if swept := s.Sessions.Sweep(); swept > 0 {
				log.Printf("[Sweeper] Dropped %d expired session(s)", swept)
			}
		}),
	)
}
