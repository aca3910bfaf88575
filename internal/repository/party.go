package repository

import (
	"context"
	"time"

	"github.com/umalmyha/fleetcases/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomerRepository interface {
	Ensure(context.Context, string) (*model.Customer, error)
	FindByCustomerID(context.Context, string) (*model.Customer, error)
	FindByID(context.Context, primitive.ObjectID) (*model.Customer, error)
}

type mongoCustomerRepository struct {
	coll *mongo.Collection
}

func NewMongoCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{coll: db.Collection(customersCollection)}
}

// Ensure returns customer with provided business key, customer is created if missing
func (r *mongoCustomerRepository) Ensure(ctx context.Context, customerID string) (*model.Customer, error) {
	now := time.Now().UTC()
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}}}
	return upsertByKey[model.Customer](ctx, r.coll, "customerId", customerID, update)
}

func (r *mongoCustomerRepository) FindByCustomerID(ctx context.Context, customerID string) (*model.Customer, error) {
	return findOne[model.Customer](ctx, r.coll, bson.D{{Key: "customerId", Value: customerID}})
}

func (r *mongoCustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	return findOne[model.Customer](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

type SupplierRepository interface {
	Upsert(context.Context, string) (*model.Supplier, error)
	FindBySupplierID(context.Context, string) (*model.Supplier, error)
}

type mongoSupplierRepository struct {
	coll *mongo.Collection
}

func NewMongoSupplierRepository(db *mongo.Database) SupplierRepository {
	return &mongoSupplierRepository{coll: db.Collection(suppliersCollection)}
}

// Upsert creates supplier with provided business key or touches existing one leaving its fields intact
func (r *mongoSupplierRepository) Upsert(ctx context.Context, supplierID string) (*model.Supplier, error) {
	now := time.Now().UTC()
	update := bson.D{
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
	}
	return upsertByKey[model.Supplier](ctx, r.coll, "supplierId", supplierID, update)
}

func (r *mongoSupplierRepository) FindBySupplierID(ctx context.Context, supplierID string) (*model.Supplier, error) {
	return findOne[model.Supplier](ctx, r.coll, bson.D{{Key: "supplierId", Value: supplierID}})
}

// upsertByKey atomically finds or inserts document by unique business key.
// Concurrent first use may still collide on the unique index, in such case the winner is read.
func upsertByKey[T any](ctx context.Context, coll *mongo.Collection, key, value string, update bson.D) (*T, error) {
	filter := bson.D{{Key: key, Value: value}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc T
	err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		err = coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}
