package schema

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/azmodels/internal/registry"
)

func lookup(t *testing.T, name string) registry.Entry {
	t.Helper()
	e, ok := registry.Lookup(name)
	require.True(t, ok, name)
	return e
}

func TestStructTaggedFamily(t *testing.T) {
	s, err := For(lookup(t, "purview.Credential"))
	require.NoError(t, err)

	assert.Equal(t, "purview.Credential", s.Title)
	assert.Equal(t, jsonschema.Version, s.Version)
	require.Len(t, s.OneOf, 8)

	byTitle := map[string]*jsonschema.Schema{}
	for _, sub := range s.OneOf {
		byTitle[sub.Title] = sub
		assert.Equal(t, "kind", sub.Required[0], sub.Title)
		kind, ok := sub.Properties.Get("kind")
		require.True(t, ok, sub.Title)
		assert.Equal(t, sub.Title, kind.Const)
		assert.Empty(t, sub.Definitions)
	}
	assert.Contains(t, byTitle, "AmazonARN")
	assert.Contains(t, byTitle, "SqlAuth")
}

func TestFamilySchemaMarshals(t *testing.T) {
	s, err := For(lookup(t, "purview.ClassificationRulePattern"))
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"const":"Regex"`)
	assert.Contains(t, string(data), `"pattern"`)
}

func TestEnumKindFamilyAcceptsUnknown(t *testing.T) {
	e := lookup(t, "synapse.Database")
	s, err := For(e)
	require.NoError(t, err)

	require.Len(t, s.OneOf, len(e.Tags)+1)
	unknown := s.OneOf[len(s.OneOf)-1]
	assert.Equal(t, []string{"kind"}, unknown.Required)
	kind, ok := unknown.Properties.Get("kind")
	require.True(t, ok)
	require.NotNil(t, kind.Not)
	assert.ElementsMatch(t, []any{"ReadOnlyFollowing", "ReadWrite"}, kind.Not.Enum)

	// The base declares kind itself; it must not be listed twice.
	known := s.OneOf[0]
	count := 0
	for _, r := range known.Required {
		if r == "kind" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPageSchema(t *testing.T) {
	s, err := For(lookup(t, "purview.ScanHistoryList"))
	require.NoError(t, err)

	assert.Equal(t, "purview.ScanHistoryList", s.Title)
	assert.Equal(t, "object", s.Type)
	assert.Contains(t, s.Required, "value")
	_, ok := s.Properties.Get("nextLink")
	assert.True(t, ok)
	assert.NotContains(t, s.Required, "nextLink")
}

func TestModelSchemaFlattensEmbedded(t *testing.T) {
	s, err := For(lookup(t, "storage.StorageAccount"))
	require.NoError(t, err)

	for _, key := range []string{"id", "name", "location", "tags", "sku", "properties"} {
		_, ok := s.Properties.Get(key)
		assert.True(t, ok, key)
	}
	assert.Equal(t, []string{"location"}, s.Required)
}

func TestRecursiveModel(t *testing.T) {
	s, err := For(lookup(t, "purview.ErrorResponseModel"))
	require.NoError(t, err)
	_, err = json.Marshal(s)
	require.NoError(t, err)
}

func TestGoComments(t *testing.T) {
	g := NewGenerator()
	require.NoError(t, g.AddGoComments("github.com/example/azmodels/internal/schema", "../../pkg/models/storage"))

	s, err := g.For(lookup(t, "storage.Identity"))
	require.NoError(t, err)
	assert.Equal(t, "Identity is the managed identity of an account.", s.Description)

	prop, ok := s.Properties.Get("userAssignedIdentities")
	require.True(t, ok)
	assert.Equal(t, "UserAssignedIdentities is keyed by the ARM id of the identity.", prop.Description)

	plain, err := For(lookup(t, "storage.Identity"))
	require.NoError(t, err)
	assert.Empty(t, plain.Description)
}

func TestGoCommentsMissingDir(t *testing.T) {
	err := NewGenerator().AddGoComments("example.com/x", "does-not-exist")
	assert.Error(t, err)
}

func TestNoTypes(t *testing.T) {
	_, err := For(registry.Entry{Name: "x.Y"})
	assert.ErrorIs(t, err, ErrNoTypes)
}

func TestEveryEntryHasSchema(t *testing.T) {
	for _, e := range registry.All() {
		t.Run(e.Name, func(t *testing.T) {
			s, err := For(e)
			require.NoError(t, err)
			_, err = json.Marshal(s)
			require.NoError(t, err)
		})
	}
}
