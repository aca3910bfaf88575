package transactor

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// MongoTransactor runs function within multi-document transaction, requires replica set
type MongoTransactor interface {
	Transactor
	WithinTransactionWithOptions(context.Context, func(context.Context) error, *options.TransactionOptions) error
}

type mongoTransactor struct {
	client *mongo.Client
}

func NewMongoTransactor(c *mongo.Client) MongoTransactor {
	return &mongoTransactor{client: c}
}

func (t *mongoTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	opts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	return t.WithinTransactionWithOptions(ctx, txFunc, opts)
}

func (t *mongoTransactor) WithinTransactionWithOptions(ctx context.Context, txFunc func(context.Context) error, opts *options.TransactionOptions) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	// session context carries the transaction to every collection call made with it
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, txFunc(sessCtx)
	}, opts)
	return err
}
