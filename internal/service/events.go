package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/task-manager/internal/models"
	"github.com/RubachokBoss/task-manager/internal/service/integration"
)

func newEvent(eventType models.EventType, entityID int64) *models.DomainEvent {
	return &models.DomainEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().Unix(),
	}
}

// publishEvent never fails the caller: the write is already committed.
func publishEvent(ctx context.Context, publisher integration.EventPublisher, logger zerolog.Logger, event *models.DomainEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Error().
			Err(err).
			Str("type", string(event.Type)).
			Int64("entity_id", event.EntityID).
			Msg("Failed to publish event")
	}
}
