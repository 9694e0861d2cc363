package services

import (
	"encoding/json"
	"log"
	"time"

	"homefit/internal/models"
)

// EventPublisher sends a message body under a routing key.
// *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// publishRecordEvent is best effort: failures are logged and never fail the request.
func publishRecordEvent(p EventPublisher, kind, action, recordID, userID string) {
	if p == nil {
		return
	}
	ev := models.RecordEvent{
		Kind:     kind,
		Action:   action,
		RecordID: recordID,
		UserID:   userID,
		At:       time.Now().UTC(),
	}
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", ev.RoutingKey(), err)
		return
	}
	if err := p.Publish(ev.RoutingKey(), body); err != nil {
		log.Printf("Warning: Failed to publish %s event for %s: %v", ev.RoutingKey(), recordID, err)
	}
}
