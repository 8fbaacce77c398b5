// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// DispatchPlanningJob plans a dispatch run over the pending backlog on a
// six-field cron schedule (seconds first), by default every five minutes.
// Runs never overlap; a tick that arrives while the previous run is still in
// progress is skipped. An empty backlog is not an error.
//
//	jobManager, err := jobs.NewJobManager(planDispatchHandler, "0 */5 * * * *", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
package jobs
