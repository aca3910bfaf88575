package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType is kind of timeline entry
type EventType string

const (
	// EventStatusChanged records transition between statuses
	EventStatusChanged EventType = "STATUS_CHANGED"
	// EventServiceChanged records supplier reassignment
	EventServiceChanged EventType = "SERVICE_CHANGED"
	// EventNote records free text note
	EventNote EventType = "NOTE"
)

// CaseEvent is append-only timeline entry of a case
type CaseEvent struct {
	ID         primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Case       primitive.ObjectID  `json:"case" bson:"case"`
	Type       EventType           `json:"type" bson:"type"`
	FromStatus *primitive.ObjectID `json:"fromStatus,omitempty" bson:"fromStatus,omitempty"`
	ToStatus   *primitive.ObjectID `json:"toStatus,omitempty" bson:"toStatus,omitempty"`
	Note       *string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt"`
}

// CaseEventView is timeline entry with statuses expanded
type CaseEventView struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Case       primitive.ObjectID `json:"case" bson:"case"`
	Type       EventType          `json:"type" bson:"type"`
	FromStatus *StatusCode        `json:"fromStatus,omitempty" bson:"fromStatus,omitempty"`
	ToStatus   *StatusCode        `json:"toStatus,omitempty" bson:"toStatus,omitempty"`
	Note       *string            `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
