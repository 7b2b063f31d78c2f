package cron

import (
	"context"
	"time"

	"beautyspa/config"
	appointmentRepo "beautyspa/database/repository/appointment"
	"beautyspa/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentsComplete = "appointments:complete"

// InitMaintenanceWorker runs the background worker that sweeps confirmed
// appointments whose end time has passed and marks them completed.
func InitMaintenanceWorker(appts appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentsComplete, handleCompletionSweep(appts, logger))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register("@every 15m", asynq.NewTask(TypeAppointmentsComplete, nil)); err != nil {
		logger.Error("failed to register completion sweep", zap.Error(err))
	}

	go func() {
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("maintenance worker failed to start",
					zap.Int("attempt", attempt), zap.Error(err))
				if attempt == maxAttempts {
					logger.Fatal("maintenance worker gave up after max retries")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second)
				continue
			}
			break
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("maintenance scheduler stopped", zap.Error(err))
		}
	}()
}

func handleCompletionSweep(appts appointmentRepo.AppointmentRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		updated, err := appts.CompleteBefore(ctx, time.Now())
		if err != nil {
			logger.Error("completion sweep failed", zap.Error(err))
			return err
		}
		if updated > 0 {
			logger.Info("completion sweep finished", zap.Int64("completed", updated))
		}
		return nil
	}
}
