package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer owns cases and receives notifications, it is addressed by CustomerID business key
type Customer struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CustomerID string             `json:"customerId" bson:"customerId"`
	Name       *string            `json:"name,omitempty" bson:"name,omitempty"`
	Phone      *string            `json:"phone,omitempty" bson:"phone,omitempty"`
	Email      *string            `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Supplier is a service provider assigned to a case, it is addressed by SupplierID business key
type Supplier struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SupplierID string             `json:"supplierId" bson:"supplierId"`
	Name       *string            `json:"name,omitempty" bson:"name,omitempty"`
	Phone      *string            `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
