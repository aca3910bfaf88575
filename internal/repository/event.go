package repository

import (
	"context"

	"github.com/umalmyha/fleetcases/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CaseEventRepository interface {
	Create(context.Context, *model.CaseEvent) error
	FindViewsByCase(context.Context, primitive.ObjectID) ([]*model.CaseEventView, error)
	DeleteByCase(context.Context, primitive.ObjectID) (int64, error)
}

type mongoCaseEventRepository struct {
	coll *mongo.Collection
}

func NewMongoCaseEventRepository(db *mongo.Database) CaseEventRepository {
	return &mongoCaseEventRepository{coll: db.Collection(caseEventsCollection)}
}

func (r *mongoCaseEventRepository) Create(ctx context.Context, e *model.CaseEvent) error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, e)
	return err
}

// FindViewsByCase returns case timeline in chronological order
func (r *mongoCaseEventRepository) FindViewsByCase(ctx context.Context, caseID primitive.ObjectID) ([]*model.CaseEventView, error) {
	p := pipeline(
		[]bson.D{
			{{Key: "$match", Value: bson.D{{Key: "case", Value: caseID}}}},
			{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
		},
		expandReference(statusCodesCollection, "fromStatus"),
		expandReference(statusCodesCollection, "toStatus"),
	)
	return aggregateAll[model.CaseEventView](ctx, r.coll, p)
}

func (r *mongoCaseEventRepository) DeleteByCase(ctx context.Context, caseID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "case", Value: caseID}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
