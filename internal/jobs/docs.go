// Package jobs runs the service's periodic maintenance work on cron
// schedules, built on github.com/robfig/cron/v3.
//
// The only job today is ExpirePendingOrdersJob. It fires at the top of
// every minute ("0 * * * * *" with seconds enabled) and cancels pending
// orders that were never confirmed within the configured age limit, so an
// abandoned order outlives its limit by at most one tick. Handler failures
// are logged and the sweep simply runs again on the next tick; no state is
// kept between runs.
//
// JobManager bundles the jobs behind StartAll and StopAll:
//
//	jobManager := jobs.NewJobManager(expirePendingOrdersHandler, pendingOrderMaxAge, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Start validates the job's command up front, so a misconfigured age limit
// surfaces at boot rather than on the first tick.
package jobs
