package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MinRating is the lowest survey rating
	MinRating = 1
	// MaxRating is the highest survey rating
	MaxRating = 5
)

// Survey is satisfaction feedback, at most one per case
type Survey struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Case      primitive.ObjectID `json:"case" bson:"case"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   *string            `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// SurveyView is survey with its case expanded
type SurveyView struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Case      *CaseView          `json:"case" bson:"case,omitempty"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   *string            `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// RatingBucket is number of surveys with the same rating
type RatingBucket struct {
	Rating int   `json:"_id" bson:"_id"`
	Count  int64 `json:"count" bson:"count"`
}

// SurveyStats aggregates all surveys
type SurveyStats struct {
	TotalSurveys       int64           `json:"totalSurveys"`
	AverageRating      float64         `json:"averageRating"`
	RatingDistribution []*RatingBucket `json:"ratingDistribution"`
}
