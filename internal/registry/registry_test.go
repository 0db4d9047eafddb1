package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/azmodels/pkg/models/purview"
	"github.com/example/azmodels/pkg/models/synapse"
	"github.com/example/azmodels/pkg/paging"
	"github.com/example/azmodels/pkg/unions"
)

func TestNamesAreSortedAndQualified(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	for _, name := range names {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, e.Name)
		assert.True(t, strings.HasPrefix(name, e.Service+"."), name)
		assert.Contains(t, []string{"purview", "synapse", "storage"}, e.Service, name)
	}

	_, ok := Lookup("purview.Nope")
	assert.False(t, ok)
}

func TestFamilies(t *testing.T) {
	kinds := map[string]Kind{}
	for _, e := range Families() {
		kinds[e.Name] = e.Kind
		assert.Equal(t, "kind", e.Field, e.Name)
		assert.NotEmpty(t, e.Tags, e.Name)
		assert.Len(t, e.New(), len(e.Tags), e.Name)
	}

	assert.Equal(t, map[string]Kind{
		"purview.ClassificationRule":        StructTagged,
		"purview.ClassificationRulePattern": StructTagged,
		"purview.Credential":                StructTagged,
		"purview.DataSource":                StructTagged,
		"purview.IntegrationRuntime":        StructTagged,
		"purview.Scan":                      StructTagged,
		"purview.ScanRuleset":               StructTagged,
		"purview.SystemScanRuleset":         StructTagged,
		"synapse.DataConnection":            EnumKind,
		"synapse.Database":                  EnumKind,
	}, kinds)
}

func TestFamilyDecodeAndEncode(t *testing.T) {
	e, ok := Lookup("purview.Credential")
	require.True(t, ok)

	v, err := e.Decode([]byte(`{"kind":"AmazonARN","name":"arn"}`))
	require.NoError(t, err)
	assert.IsType(t, &purview.RoleARNCredential{}, v)
	assert.Equal(t, "AmazonARN", e.Tag(v))

	out, err := e.Encode(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"AmazonARN","name":"arn"}`, string(out))

	_, err = e.Encode(&synapse.ReadWriteDatabase{})
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = e.Decode([]byte(`{"kind":"Nope"}`))
	assert.ErrorIs(t, err, unions.ErrUnrecognizedDiscriminator)
}

func TestEnumKindFamilyKeepsUnknown(t *testing.T) {
	e, ok := Lookup("synapse.DataConnection")
	require.True(t, ok)
	assert.Equal(t, EnumKind, e.Kind)

	v, err := e.Decode([]byte(`{"kind":"CosmosDb"}`))
	require.NoError(t, err)
	assert.Equal(t, "CosmosDb", e.Tag(v))
}

func TestPages(t *testing.T) {
	pages := Pages()
	require.Len(t, pages, 16)
	for _, e := range pages {
		assert.Equal(t, e.Name, e.Policy.Family)
		assert.NotNil(t, e.Drive, e.Name)
		assert.NotNil(t, e.Items, e.Name)
	}

	var review []string
	for _, e := range NeedsReview() {
		review = append(review, e.Name)
	}
	assert.Equal(t, []string{
		"storage.DeletedAccountListResult",
		"storage.EncryptionScopeListResult",
		"storage.ListContainerItems",
		"storage.StorageAccountListResult",
		"synapse.OperationListResult",
	}, review)
}

func TestPageDecodeAndItems(t *testing.T) {
	e, ok := Lookup("purview.DataSourceList")
	require.True(t, ok)

	v, err := e.Decode([]byte(`{"value":[{"kind":"AmazonS3"},{"kind":"Oracle"}],"nextLink":"n"}`))
	require.NoError(t, err)
	c, ok := v.(paging.Continuable)
	require.True(t, ok, "got %T", v)
	token, more := c.ContinuationToken()
	assert.True(t, more)
	assert.Equal(t, "n", token)
	assert.Len(t, e.Items(v), 2)

	_, err = e.Decode([]byte(`{"nextLink":"n"}`))
	assert.ErrorIs(t, err, unions.ErrRequiredField)
}

func TestDrive(t *testing.T) {
	bodies := map[string]string{
		"":   `{"value":[{"kind":"System","name":"a"}],"nextLink":"p2"}`,
		"p2": `{"value":[{"kind":"Custom"},{"kind":"System"}],"nextLink":""}`,
	}
	body := func(_ context.Context, token *string) ([]byte, error) {
		key := ""
		if token != nil {
			key = *token
		}
		b, ok := bodies[key]
		if !ok {
			return nil, fmt.Errorf("no page %q", key)
		}
		return []byte(b), nil
	}

	e, ok := Lookup("purview.ClassificationRuleList")
	require.True(t, ok)

	results, err := e.Drive(context.Background(), body)
	require.NoError(t, err)
	assert.Equal(t, []PageResult{
		{Items: 1, Next: "p2", More: true},
		{Items: 2, Next: "", More: false},
	}, results)
}

func TestDriveStopsOnFetchError(t *testing.T) {
	boom := errors.New("boom")
	e, ok := Lookup("storage.ListContainerItems")
	require.True(t, ok)

	calls := 0
	results, err := e.Drive(context.Background(), func(_ context.Context, token *string) ([]byte, error) {
		calls++
		if token == nil {
			return []byte(`{"value":[{"name":"c1"}],"nextLink":""}`), nil
		}
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []PageResult{{Items: 1, Next: "", More: true}}, results)
	assert.Equal(t, 2, calls)
}

func TestModels(t *testing.T) {
	e, ok := Lookup("storage.Identity")
	require.True(t, ok)
	assert.Equal(t, Model, e.Kind)

	v, err := e.Decode([]byte(`{"type":"SomeFutureState"}`))
	require.NoError(t, err)
	out, err := e.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"SomeFutureState"}`, string(out))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "struct-tagged", StructTagged.String())
	assert.Equal(t, "enum-kind", EnumKind.String())
	assert.Equal(t, "page", Page.String())
	assert.Equal(t, "model", Model.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
