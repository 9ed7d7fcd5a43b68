// Package jobs runs the scheduled background work of the pharmacy backend.
//
// The only job today is NotificationDispatchJob. It drains the notification
// outbox on a robfig/cron schedule (six fields, seconds first) by invoking
// the dispatch command handler. Failed sends stay in the outbox and are
// retried on a later tick until the attempt limit is reached.
//
// Jobs are started and stopped together through JobManager:
//
//	manager := jobs.NewJobManager(dispatchJob)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
