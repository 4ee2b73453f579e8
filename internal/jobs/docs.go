// Package jobs provides scheduled background tasks for the depot.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision, so
// schedules take six fields ("*/30 * * * * *" runs every 30 seconds).
//
// # Available Jobs
//
// 1. DeliveryRoundJob - makes every courier with a vehicle deliver its queued orders
// 2. StateReportJob - logs the rendered depot state
//
// # Usage
//
//	jobManager := jobs.NewJobManager(runDeliveryRoundHandler, getDepotStateHandler, jobs.Schedules{
//		DeliveryRound: "0 */5 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A job without a schedule is skipped. A failed start stops the jobs that
// were already running.
package jobs
