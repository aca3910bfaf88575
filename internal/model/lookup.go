package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusCodeOpen is the status every new case starts with
const StatusCodeOpen = 1

// CaseType is reference data describing kind of case
type CaseType struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// StatusCode is reference data describing case state, terminal states complete the case
type StatusCode struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Code        int                `json:"code" bson:"code"`
	Name        string             `json:"name" bson:"name"`
	IsTerminal  bool               `json:"isTerminal" bson:"isTerminal"`
	Description *string            `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SeedResult reports how many catalog entries were inserted by seeding
type SeedResult struct {
	OK          bool `json:"ok"`
	CaseTypes   int  `json:"caseTypes"`
	StatusCodes int  `json:"statusCodes"`
}
