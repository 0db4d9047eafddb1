package unions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Value    []int   `json:"value" validate:"required"`
	NextLink *string `json:"nextLink,omitempty"`
}

func TestUnmarshalValidatesRequiredFields(t *testing.T) {
	var env testEnvelope
	require.NoError(t, Unmarshal([]byte(`{"value":[]}`), &env))
	assert.NotNil(t, env.Value)
	assert.Nil(t, env.NextLink)

	err := Unmarshal([]byte(`{"nextLink":"n"}`), &testEnvelope{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.Contains(t, err.Error(), "value")

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "unions.testEnvelope", fieldErr.Family)
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	err := Unmarshal([]byte(`{"value":"nope"}`), &testEnvelope{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequiredField)
}

type testBase struct {
	Location string `json:"location" validate:"required"`
}

type testResource struct {
	testBase
	Owner *testOwner `json:"owner,omitempty"`
}

type testOwner struct {
	Name string `json:"name" validate:"required"`
}

type testResourceList struct {
	Value []testResource `json:"value" validate:"dive"`
}

func TestValidatePathsUseWireNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"embedded", `{"value":[{"location":"west"},{}]}`, "value[1].location"},
		{"nested", `{"value":[{"location":"west","owner":{}}]}`, "value[0].owner.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal([]byte(tt.input), &testResourceList{})
			require.Error(t, err)
			assert.EqualError(t, err, "unions.testResourceList: required field missing: "+tt.want)
		})
	}
}

func TestWirePath(t *testing.T) {
	assert.Equal(t, "value[0].location", wirePath("List.value[0].Base.location", "List.Value[0].Base.Location"))
	assert.Equal(t, "sku.name", wirePath("Account.sku.name", "Account.SKU.Name"))
	assert.Equal(t, "a.b", wirePath("T.a.b", "T.a"))
}
