// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "destinos/internal/delivery/context"
	"destinos/internal/domain/service"
)

// publishEvent sends a gamification event. Publishing never fails the operation that triggered it.
func publishEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, event *service.GamificationEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish event",
			slog.String("type", string(event.Type)),
			slog.String("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}

func clampLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		return maxLimit
	}

	return limit
}
