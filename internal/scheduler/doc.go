// Package scheduler runs background maintenance tasks on cron schedules.
//
// Tasks implement a two-method interface and are registered with a cron
// spec:
//
//	s := scheduler.New(scheduler.Config{Logger: logger})
//	s.Add("@every 15m", scheduler.NewDeadlineCloser(jobService))
//	s.Start()
//	defer s.Stop(ctx)
//
// A task that is still running when its next tick fires is skipped. Panics
// are recovered and logged. Task errors are logged and never stop the
// scheduler.
package scheduler
