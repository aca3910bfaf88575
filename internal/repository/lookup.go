package repository

import (
	"context"

	"github.com/umalmyha/fleetcases/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LookupRepository interface {
	FindAllCaseTypes(context.Context) ([]*model.CaseType, error)
	FindCaseTypeByCode(context.Context, string) (*model.CaseType, error)
	CountCaseTypes(context.Context) (int64, error)
	CreateCaseTypes(context.Context, []*model.CaseType) error
	FindAllStatusCodes(context.Context) ([]*model.StatusCode, error)
	FindStatusCodeByCode(context.Context, int) (*model.StatusCode, error)
	FindStatusCodeByID(context.Context, primitive.ObjectID) (*model.StatusCode, error)
	CountStatusCodes(context.Context) (int64, error)
	CreateStatusCodes(context.Context, []*model.StatusCode) error
}

type mongoLookupRepository struct {
	caseTypes   *mongo.Collection
	statusCodes *mongo.Collection
}

func NewMongoLookupRepository(db *mongo.Database) LookupRepository {
	return &mongoLookupRepository{
		caseTypes:   db.Collection(caseTypesCollection),
		statusCodes: db.Collection(statusCodesCollection),
	}
}

func (r *mongoLookupRepository) FindAllCaseTypes(ctx context.Context) ([]*model.CaseType, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findAll[model.CaseType](ctx, r.caseTypes, bson.D{}, opts)
}

func (r *mongoLookupRepository) FindCaseTypeByCode(ctx context.Context, code string) (*model.CaseType, error) {
	return findOne[model.CaseType](ctx, r.caseTypes, bson.D{{Key: "code", Value: code}})
}

func (r *mongoLookupRepository) CountCaseTypes(ctx context.Context) (int64, error) {
	return r.caseTypes.CountDocuments(ctx, bson.D{})
}

func (r *mongoLookupRepository) CreateCaseTypes(ctx context.Context, caseTypes []*model.CaseType) error {
	docs := make([]any, 0, len(caseTypes))
	for _, ct := range caseTypes {
		if ct.ID.IsZero() {
			ct.ID = primitive.NewObjectID()
		}
		docs = append(docs, ct)
	}
	_, err := r.caseTypes.InsertMany(ctx, docs)
	return err
}

func (r *mongoLookupRepository) FindAllStatusCodes(ctx context.Context) ([]*model.StatusCode, error) {
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	return findAll[model.StatusCode](ctx, r.statusCodes, bson.D{}, opts)
}

func (r *mongoLookupRepository) FindStatusCodeByCode(ctx context.Context, code int) (*model.StatusCode, error) {
	return findOne[model.StatusCode](ctx, r.statusCodes, bson.D{{Key: "code", Value: code}})
}

func (r *mongoLookupRepository) FindStatusCodeByID(ctx context.Context, id primitive.ObjectID) (*model.StatusCode, error) {
	return findOne[model.StatusCode](ctx, r.statusCodes, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoLookupRepository) CountStatusCodes(ctx context.Context) (int64, error) {
	return r.statusCodes.CountDocuments(ctx, bson.D{})
}

func (r *mongoLookupRepository) CreateStatusCodes(ctx context.Context, statusCodes []*model.StatusCode) error {
	docs := make([]any, 0, len(statusCodes))
	for _, sc := range statusCodes {
		if sc.ID.IsZero() {
			sc.ID = primitive.NewObjectID()
		}
		docs = append(docs, sc)
	}
	_, err := r.statusCodes.InsertMany(ctx, docs)
	return err
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func aggregateAll[T any](ctx context.Context, coll *mongo.Collection, p mongo.Pipeline) ([]*T, error) {
	cursor, err := coll.Aggregate(ctx, p)
	if err != nil {
		return nil, err
	}

	docs := make([]*T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
