package transactor

import (
	"context"
)

// Transactor represents behavior for transactors
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}

type sequentialTransactor struct{}

// NewSequentialTransactor builds transactor which runs function directly without transaction,
// writes issued by the function are applied one by one and are not rolled back on failure
func NewSequentialTransactor() Transactor {
	return &sequentialTransactor{}
}

func (t *sequentialTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	return txFunc(ctx)
}
