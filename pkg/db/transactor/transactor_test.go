package transactor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestSequentialTransactor(t *testing.T) {
	trx := NewSequentialTransactor()
	ctx := context.WithValue(context.Background(), ctxKey{}, "value")

	t.Log("function receives caller context")
	{
		err := trx.WithinTransaction(ctx, func(txCtx context.Context) error {
			require.Equal(t, "value", txCtx.Value(ctxKey{}))
			return nil
		})
		require.NoError(t, err)
	}

	t.Log("function error is returned as is")
	{
		fnErr := errors.New("insert failed")
		err := trx.WithinTransaction(ctx, func(context.Context) error {
			return fnErr
		})
		require.ErrorIs(t, err, fnErr)
	}
}
