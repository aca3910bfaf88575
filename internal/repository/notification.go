package repository

import (
	"context"

	"github.com/umalmyha/fleetcases/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository interface {
	Create(context.Context, *model.Notification) error
	FindViewsByCustomer(context.Context, primitive.ObjectID, int64) ([]*model.NotificationView, error)
	MarkRead(context.Context, primitive.ObjectID) (*model.Notification, error)
	MarkAllRead(context.Context, primitive.ObjectID) (int64, error)
	DeleteByCase(context.Context, primitive.ObjectID) (int64, error)
}

type mongoNotificationRepository struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) NotificationRepository {
	return &mongoNotificationRepository{coll: db.Collection(notificationsCollection)}
}

func (r *mongoNotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

// FindViewsByCustomer returns customer inbox newest first
func (r *mongoNotificationRepository) FindViewsByCustomer(ctx context.Context, customer primitive.ObjectID, limit int64) ([]*model.NotificationView, error) {
	p := pipeline(
		[]bson.D{
			{{Key: "$match", Value: bson.D{{Key: "customer", Value: customer}}}},
			{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
			{{Key: "$limit", Value: limit}},
		},
		expandReference(casesCollection, "case"),
	)
	return aggregateAll[model.NotificationView](ctx, r.coll, p)
}

// MarkRead sets read flag and returns updated notification, nil is returned if notification is missing
func (r *mongoNotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*model.Notification, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "read", Value: true}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var n model.Notification
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&n); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *mongoNotificationRepository) MarkAllRead(ctx context.Context, customer primitive.ObjectID) (int64, error) {
	filter := bson.D{{Key: "customer", Value: customer}, {Key: "read", Value: false}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "read", Value: true}}}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *mongoNotificationRepository) DeleteByCase(ctx context.Context, caseID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "case", Value: caseID}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
