package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBusinessErrJSON(t *testing.T) {
	err := NewBusinessErr("status", "transition 3 -> 1 is not allowed")

	encoded, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	require.JSONEq(t, `{"target":"status","message":"transition 3 -> 1 is not allowed"}`, string(encoded))
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create case - %w", NewDuplicateKeyErr("caseId", "case 5001 already exists"))

	var dupErr *DuplicateKeyErr
	require.True(t, stderrors.As(wrapped, &dupErr), "duplicate key error must be found in chain")
	require.Equal(t, "caseId", dupErr.Target())

	var notFoundErr *EntryNotFoundErr
	require.False(t, stderrors.As(wrapped, &notFoundErr), "duplicate key error is not a not found error")
}
