package models

import "time"

// Record kinds.
const (
	KindBed     = "bed"
	KindWorkout = "workout"
)

// Record lifecycle actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordEvent is published whenever a record is created, updated or deleted.
type RecordEvent struct {
	Kind     string    `json:"kind"`
	Action   string    `json:"action"`
	RecordID string    `json:"record_id"`
	UserID   string    `json:"user_id"`
	At       time.Time `json:"at"`
}

// RoutingKey is the AMQP routing key for the event, e.g. "bed.created".
func (e RecordEvent) RoutingKey() string {
	return e.Kind + "." + e.Action
}
