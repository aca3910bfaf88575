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

// CaseFilter narrows case listing, nil fields are not applied
type CaseFilter struct {
	Customer  *primitive.ObjectID
	CaseType  *primitive.ObjectID
	LastState *primitive.ObjectID
}

type CaseRepository interface {
	Create(context.Context, *model.Case) error
	SetState(context.Context, primitive.ObjectID, primitive.ObjectID, *time.Time) error
	SetSupplier(context.Context, primitive.ObjectID, primitive.ObjectID) error
	FindByID(context.Context, primitive.ObjectID) (*model.Case, error)
	FindViewByID(context.Context, primitive.ObjectID) (*model.CaseView, error)
	FindViews(context.Context, CaseFilter) ([]*model.CaseView, error)
	FindIDsByCustomer(context.Context, primitive.ObjectID) ([]primitive.ObjectID, error)
	DeleteByID(context.Context, primitive.ObjectID) error
}

type mongoCaseRepository struct {
	coll *mongo.Collection
}

func NewMongoCaseRepository(db *mongo.Database) CaseRepository {
	return &mongoCaseRepository{coll: db.Collection(casesCollection)}
}

func (r *mongoCaseRepository) Create(ctx context.Context, c *model.Case) error {
	now := time.Now().UTC()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, c)
	return err
}

// SetState moves case to provided status, completion date is written only when given and is never cleared
func (r *mongoCaseRepository) SetState(ctx context.Context, id, state primitive.ObjectID, completionDate *time.Time) error {
	set := bson.D{
		{Key: "lastState", Value: state},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}
	if completionDate != nil {
		set = append(set, bson.E{Key: "completionDate", Value: *completionDate})
	}

	_, err := r.coll.UpdateByID(ctx, id, bson.D{{Key: "$set", Value: set}})
	return err
}

// SetSupplier assigns supplier to case leaving the rest of the document untouched
func (r *mongoCaseRepository) SetSupplier(ctx context.Context, id, supplier primitive.ObjectID) error {
	set := bson.D{
		{Key: "supplier", Value: supplier},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}

	_, err := r.coll.UpdateByID(ctx, id, bson.D{{Key: "$set", Value: set}})
	return err
}

func (r *mongoCaseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Case, error) {
	return findOne[model.Case](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoCaseRepository) FindViewByID(ctx context.Context, id primitive.ObjectID) (*model.CaseView, error) {
	p := pipeline(
		[]bson.D{{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}},
		expandCaseStages(""),
	)

	views, err := aggregateAll[model.CaseView](ctx, r.coll, p)
	if err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return nil, nil
	}
	return views[0], nil
}

func (r *mongoCaseRepository) FindViews(ctx context.Context, f CaseFilter) ([]*model.CaseView, error) {
	match := bson.D{}
	if f.Customer != nil {
		match = append(match, bson.E{Key: "customer", Value: *f.Customer})
	}
	if f.CaseType != nil {
		match = append(match, bson.E{Key: "caseType", Value: *f.CaseType})
	}
	if f.LastState != nil {
		match = append(match, bson.E{Key: "lastState", Value: *f.LastState})
	}

	p := pipeline(
		[]bson.D{
			{{Key: "$match", Value: match}},
			{{Key: "$sort", Value: bson.D{{Key: "createDate", Value: -1}}}},
		},
		expandCaseStages(""),
	)
	return aggregateAll[model.CaseView](ctx, r.coll, p)
}

func (r *mongoCaseRepository) FindIDsByCustomer(ctx context.Context, customer primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "customer", Value: customer}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make([]primitive.ObjectID, 0)
	for cursor.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoCaseRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	return err
}
