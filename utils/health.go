package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest probe result for the stores the booking flow
// depends on. Sessions failing means in-flight bookings are lost even when
// the cache is fine, so the two redis databases are reported separately.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	Sessions  bool      `json:"sessions"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes mongo and both redis databases once a minute and
// keeps the snapshot in memory for the health endpoint.
func StartHealthMonitor(cache, sessions *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Cache:     cache.Ping(ctx).Err() == nil,
				Sessions:  sessions.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			}
			cancel()

			if !status.Mongo || !status.Cache || !status.Sessions {
				GetLogger().Warn("dependency health check failed",
					zap.Bool("mongo", status.Mongo),
					zap.Bool("cache", status.Cache),
					zap.Bool("sessions", status.Sessions))
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
