package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a message in customer inbox produced by case lifecycle
type Notification struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Case      primitive.ObjectID `json:"case" bson:"case"`
	Customer  primitive.ObjectID `json:"customer" bson:"customer"`
	Message   string             `json:"message" bson:"message"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// NotificationView is notification with its case embedded
type NotificationView struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Case      *Case              `json:"case" bson:"case,omitempty"`
	Customer  primitive.ObjectID `json:"customer" bson:"customer"`
	Message   string             `json:"message" bson:"message"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// MarkAllReadResult reports bulk read-state update
type MarkAllReadResult struct {
	Success  bool  `json:"success"`
	Modified int64 `json:"modified"`
}
