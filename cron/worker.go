package cron

import (
	"context"
	"time"

	organizationRepo "ongkit/database/repository/organization"
	"ongkit/models"
	"ongkit/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const TypeSubscriptionSweep = "subscription:sweep"

// Reminders go out this long before a paid plan expires.
const reminderWindow = 7 * 24 * time.Hour

// InitSubscriptionWorker runs the async worker and its daily scheduler in
// the background. The sweep only flags subscriptions; the effective plan is
// always computed from expiresAt at render time, so a missed sweep never
// extends paid visibility.
func InitSubscriptionWorker(orgs organizationRepo.OrganizationRepository) {
	logger := utils.GetLogger()
	redisOpts := utils.QueueRedisOpt()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSubscriptionSweep, handleSubscriptionSweep(orgs))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("0 8 * * *", asynq.NewTask(TypeSubscriptionSweep, nil)); err != nil {
		logger.Fatal("Failed to register subscription sweep", zap.Error(err))
	}

	go func() {
		logger.Info("Starting subscription worker")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Subscription worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Subscription worker gave up")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("Subscription scheduler stopped", zap.Error(err))
		}
	}()
}

// handleSubscriptionSweep marks soon-to-expire paid subscriptions so the
// dashboard can surface a renewal notice, and flips already-expired ones to
// the expired status.
func handleSubscriptionSweep(orgs organizationRepo.OrganizationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		now := time.Now()

		expiring, err := orgs.ListExpiring(now.Add(reminderWindow))
		if err != nil {
			logger.Error("Subscription sweep query failed", zap.Error(err))
			return err
		}

		for _, org := range expiring {
			update := bson.M{"subscription.reminderSentAt": now}
			if org.Subscription.ExpiresAt != nil && org.Subscription.ExpiresAt.Before(now) {
				update["subscription.status"] = models.SubscriptionExpired
			}
			if err := orgs.UpdateWithDocument(org.ID, update); err != nil {
				logger.Error("Failed to flag subscription",
					zap.String("orgId", org.ID), zap.Error(err))
				continue
			}
			logger.Info("Subscription flagged for renewal",
				zap.String("orgId", org.ID),
				zap.String("plan", org.Subscription.Plan),
				zap.Timep("expiresAt", org.Subscription.ExpiresAt))
		}
		return nil
	}
}
