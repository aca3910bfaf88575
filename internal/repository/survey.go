package repository

import (
	"context"

	"github.com/umalmyha/fleetcases/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SurveyRepository interface {
	Upsert(context.Context, *model.Survey) (*model.Survey, error)
	FindByCase(context.Context, primitive.ObjectID) (*model.Survey, error)
	FindViews(context.Context, []primitive.ObjectID) ([]*model.SurveyView, error)
	Stats(context.Context) (*model.SurveyStats, error)
	DeleteByCase(context.Context, primitive.ObjectID) (int64, error)
}

type mongoSurveyRepository struct {
	coll *mongo.Collection
}

func NewMongoSurveyRepository(db *mongo.Database) SurveyRepository {
	return &mongoSurveyRepository{coll: db.Collection(surveysCollection)}
}

// Upsert replaces rating, comment and creation time of the case survey or creates new one
func (r *mongoSurveyRepository) Upsert(ctx context.Context, s *model.Survey) (*model.Survey, error) {
	set := bson.D{
		{Key: "rating", Value: s.Rating},
		{Key: "createdAt", Value: s.CreatedAt},
	}

	update := bson.D{}
	if s.Comment != nil {
		set = append(set, bson.E{Key: "comment", Value: *s.Comment})
		update = append(update, bson.E{Key: "$set", Value: set})
	} else {
		update = append(update,
			bson.E{Key: "$set", Value: set},
			bson.E{Key: "$unset", Value: bson.D{{Key: "comment", Value: ""}}},
		)
	}

	filter := bson.D{{Key: "case", Value: s.Case}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var survey model.Survey
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&survey)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&survey)
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *mongoSurveyRepository) FindByCase(ctx context.Context, caseID primitive.ObjectID) (*model.Survey, error) {
	return findOne[model.Survey](ctx, r.coll, bson.D{{Key: "case", Value: caseID}})
}

// FindViews returns surveys of provided cases newest first, nil cases means all surveys
func (r *mongoSurveyRepository) FindViews(ctx context.Context, cases []primitive.ObjectID) ([]*model.SurveyView, error) {
	match := bson.D{}
	if cases != nil {
		match = append(match, bson.E{Key: "case", Value: bson.D{{Key: "$in", Value: cases}}})
	}

	p := pipeline(
		[]bson.D{
			{{Key: "$match", Value: match}},
			{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		},
		expandReference(casesCollection, "case"),
		expandCaseStages("case."),
	)
	return aggregateAll[model.SurveyView](ctx, r.coll, p)
}

func (r *mongoSurveyRepository) Stats(ctx context.Context) (*model.SurveyStats, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	distribution, err := aggregateAll[model.RatingBucket](ctx, r.coll, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$rating"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, err
	}

	type average struct {
		AvgRating float64 `bson:"avgRating"`
	}

	averages, err := aggregateAll[average](ctx, r.coll, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}

	stats := &model.SurveyStats{
		TotalSurveys:       total,
		RatingDistribution: distribution,
	}
	if len(averages) > 0 {
		stats.AverageRating = averages[0].AvgRating
	}
	return stats, nil
}

func (r *mongoSurveyRepository) DeleteByCase(ctx context.Context, caseID primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "case", Value: caseID}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
