package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Case is the stored case document, references are kept as ids
type Case struct {
	ID             primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	CaseID         int64               `json:"caseId" bson:"caseId"`
	Customer       primitive.ObjectID  `json:"customer" bson:"customer"`
	CaseType       primitive.ObjectID  `json:"caseType" bson:"caseType"`
	Supplier       *primitive.ObjectID `json:"supplier,omitempty" bson:"supplier,omitempty"`
	CreateDate     time.Time           `json:"createDate" bson:"createDate"`
	LastState      primitive.ObjectID  `json:"lastState" bson:"lastState"`
	CompletionDate *time.Time          `json:"completionDate,omitempty" bson:"completionDate,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CaseView is case with all references expanded
type CaseView struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	CaseID         int64              `json:"caseId" bson:"caseId"`
	Customer       Customer           `json:"customer" bson:"customer"`
	CaseType       CaseType           `json:"caseType" bson:"caseType"`
	Supplier       *Supplier          `json:"supplier,omitempty" bson:"supplier,omitempty"`
	CreateDate     time.Time          `json:"createDate" bson:"createDate"`
	LastState      StatusCode         `json:"lastState" bson:"lastState"`
	CompletionDate *time.Time         `json:"completionDate,omitempty" bson:"completionDate,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CaseDetail is case together with its timeline and survey
type CaseDetail struct {
	Case     *CaseView        `json:"case"`
	Timeline []*CaseEventView `json:"timeline"`
	Survey   *Survey          `json:"survey"`
}

// CaseDeletion confirms cascade deletion of a case
type CaseDeletion struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
