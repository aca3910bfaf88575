package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type surveyPayload struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type casePayload struct {
	CaseID       int64  `json:"caseId" validate:"required,gt=0"`
	CustomerID   string `json:"customerId" validate:"required"`
	CaseTypeCode string `json:"caseTypeCode" validate:"required"`
}

func TestEchoValidator(t *testing.T) {
	v, err := NewEchoValidator()
	require.NoError(t, err)

	t.Log("valid payload passes")
	{
		require.NoError(t, v.Validate(&surveyPayload{Rating: 4}))
	}

	t.Log("violations are reported with json field names")
	{
		err := v.Validate(&casePayload{CustomerID: "CUST900"})
		require.Error(t, err)
		require.IsType(t, &PayloadError{}, err)

		pldErr := err.(*PayloadError)
		require.Equal(t, []string{"caseId", "caseTypeCode"}, pldErr.Fields())
	}

	t.Log("rating out of range is rejected")
	{
		err := v.Validate(&surveyPayload{Rating: 6})
		require.Error(t, err)

		encoded, marshalErr := json.Marshal(err)
		require.NoError(t, marshalErr)

		var body struct {
			Error  string `json:"error"`
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(encoded, &body))
		require.NotEmpty(t, body.Error)
		require.Len(t, body.Errors, 1)
		require.Equal(t, "rating", body.Errors[0].Field)
	}
}
