package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishImageEvent publishes an image lifecycle event keyed by image id.
// Failures are logged and never returned: events are best effort.
func publishImageEvent(ctx context.Context, w KafkaWriter, eventType string, img *models.ImageDB, actor uuid.UUID) {
	evt := models.ImageEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ImageID:   img.ImageID.String(),
		OwnerID:   img.UserID.String(),
		ActorID:   actor.String(),
		Status:    img.Status,
		Timestamp: time.Now().Unix(),
	}

	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal image event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.ImageID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish image event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		logger.Log.Infow("Image event published to Kafka", "event_id", evt.EventID, "type", evt.Type, "image_id", evt.ImageID)
	}
}
