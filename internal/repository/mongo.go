package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names follow documents already written by the mobile backend
const (
	customersCollection     = "customers"
	suppliersCollection     = "suppliers"
	caseTypesCollection     = "casetypes"
	statusCodesCollection   = "statuscodes"
	casesCollection         = "cases"
	caseEventsCollection    = "caseevents"
	surveysCollection       = "surveys"
	notificationsCollection = "notifications"
)

// EnsureIndexes creates unique and lookup indexes for all collections
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		customersCollection: {
			{Keys: bson.D{{Key: "customerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		suppliersCollection: {
			{Keys: bson.D{{Key: "supplierId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		caseTypesCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		statusCodesCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		casesCollection: {
			{Keys: bson.D{{Key: "caseId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "customer", Value: 1}, {Key: "createDate", Value: -1}}},
			{Keys: bson.D{{Key: "lastState", Value: 1}}},
		},
		caseEventsCollection: {
			{Keys: bson.D{{Key: "case", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		surveysCollection: {
			{Keys: bson.D{{Key: "case", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		notificationsCollection: {
			{Keys: bson.D{{Key: "customer", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "read", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s - %w", coll, err)
		}
	}
	return nil
}

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

// expandReference replaces id stored in field with referenced document
func expandReference(from, field string) []bson.D {
	return []bson.D{lookupStage(from, field, field), unwindStage(field)}
}

// expandCaseStages expands customer, caseType, supplier and lastState of case located at prefix
func expandCaseStages(prefix string) []bson.D {
	stages := make([]bson.D, 0, 8)
	stages = append(stages, expandReference(customersCollection, prefix+"customer")...)
	stages = append(stages, expandReference(caseTypesCollection, prefix+"caseType")...)
	stages = append(stages, expandReference(suppliersCollection, prefix+"supplier")...)
	stages = append(stages, expandReference(statusCodesCollection, prefix+"lastState")...)
	return stages
}

func pipeline(stages ...[]bson.D) mongo.Pipeline {
	p := make(mongo.Pipeline, 0)
	for _, s := range stages {
		p = append(p, s...)
	}
	return p
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
