package synapse

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/azmodels/pkg/paging"
	"github.com/example/azmodels/pkg/unions"
)

func TestDecodeKnownDataConnections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v DataConnectionClassification)
	}{
		{
			name:  "event hub",
			input: `{"kind":"EventHub","id":"/dc/1","location":"westus","properties":{"eventHubResourceId":"/eh","consumerGroup":"$Default","dataFormat":"MULTIJSON","compression":"GZip"}}`,
			check: func(t *testing.T, v DataConnectionClassification) {
				eh, ok := v.(*EventHubDataConnection)
				require.True(t, ok, "got %T", v)
				assert.Equal(t, "/eh", eh.Properties.EventHubResourceID)
				assert.Equal(t, EventHubDataFormatMULTIJSON, *eh.Properties.DataFormat)
				assert.Equal(t, CompressionGZip, *eh.Properties.Compression)
			},
		},
		{
			name:  "event grid",
			input: `{"kind":"EventGrid","properties":{"storageAccountResourceId":"/sa","eventHubResourceId":"/eh","consumerGroup":"cg","ignoreFirstRecord":true,"blobStorageEventType":"Microsoft.Storage.BlobCreated"}}`,
			check: func(t *testing.T, v DataConnectionClassification) {
				eg, ok := v.(*EventGridDataConnection)
				require.True(t, ok, "got %T", v)
				assert.True(t, *eg.Properties.IgnoreFirstRecord)
				assert.False(t, eg.Properties.BlobStorageEventType.IsUnknown())
			},
		},
		{
			name:  "iot hub",
			input: `{"kind":"IotHub","properties":{"iotHubResourceId":"/iot","consumerGroup":"cg","sharedAccessPolicyName":"reader"}}`,
			check: func(t *testing.T, v DataConnectionClassification) {
				iot, ok := v.(*IotHubDataConnection)
				require.True(t, ok, "got %T", v)
				assert.Equal(t, "reader", iot.Properties.SharedAccessPolicyName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := UnmarshalDataConnectionClassification([]byte(tt.input))
			require.NoError(t, err)
			tt.check(t, v)
			assert.False(t, v.GetDataConnection().Kind.IsUnknown())

			out, err := DataConnectionCatalog.Encode(v)
			require.NoError(t, err)
			assert.JSONEq(t, tt.input, string(out))
		})
	}
}

func TestKnownVariantsWriteTheirKind(t *testing.T) {
	out, err := json.Marshal(ReadOnlyFollowingDatabase{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"ReadOnlyFollowing"}`, string(out))

	// A stale Kind on the base is overwritten.
	v := EventHubDataConnection{DataConnection: DataConnection{Kind: DataConnectionKindIotHub}}
	out, err = json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"EventHub"}`, string(out))
}

func TestUnknownKindsSurviveRoundTrip(t *testing.T) {
	t.Run("data connection", func(t *testing.T) {
		raw := `{"kind":"CosmosDb","id":"/dc/2","location":"westus","properties":{"cosmosDbAccountResourceId":"/cosmos","retrievalStartDate":"2021-01-01"}}`

		v, err := UnmarshalDataConnectionClassification([]byte(raw))
		require.NoError(t, err)

		unknown, ok := v.(*UnknownDataConnection)
		require.True(t, ok, "got %T", v)
		assert.Equal(t, "CosmosDb", unknown.DiscriminatorValue())
		assert.True(t, unknown.Kind.IsUnknown())
		assert.Equal(t, "/dc/2", *unknown.GetDataConnection().ID)

		out, err := DataConnectionCatalog.Encode(v)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	})

	t.Run("database", func(t *testing.T) {
		raw := `{"kind":"ReadOnlyLeader","name":"db1","properties":{"anything":[1,2,3]}}`

		v, err := UnmarshalDatabaseClassification([]byte(raw))
		require.NoError(t, err)
		require.IsType(t, &UnknownDatabase{}, v)

		out, err := DatabaseCatalog.Encode(v)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	})
}

func TestEncodeVariantsWithResourceFields(t *testing.T) {
	id, name, typ, loc := "/dc/1", "dc1", "Microsoft.Synapse/workspaces/kustoPools/databases/dataConnections", "westus"
	base := DataConnection{
		ProxyResource: ProxyResource{ID: &id, Name: &name, Type: &typ},
		Location:      &loc,
	}
	db := Database{ProxyResource: ProxyResource{ID: &id, Name: &name}}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "event hub",
			value: EventHubDataConnection{DataConnection: base},
			want:  `{"id":"/dc/1","name":"dc1","type":"Microsoft.Synapse/workspaces/kustoPools/databases/dataConnections","location":"westus","kind":"EventHub"}`,
		},
		{
			name:  "event grid",
			value: &EventGridDataConnection{DataConnection: base},
			want:  `{"id":"/dc/1","name":"dc1","type":"Microsoft.Synapse/workspaces/kustoPools/databases/dataConnections","location":"westus","kind":"EventGrid"}`,
		},
		{
			name:  "iot hub",
			value: IotHubDataConnection{DataConnection: base},
			want:  `{"id":"/dc/1","name":"dc1","type":"Microsoft.Synapse/workspaces/kustoPools/databases/dataConnections","location":"westus","kind":"IotHub"}`,
		},
		{
			name:  "read write",
			value: ReadWriteDatabase{Database: db},
			want:  `{"id":"/dc/1","name":"dc1","kind":"ReadWrite"}`,
		},
		{
			name:  "read only following",
			value: &ReadOnlyFollowingDatabase{Database: db},
			want:  `{"id":"/dc/1","name":"dc1","kind":"ReadOnlyFollowing"}`,
		},
		{
			name:  "unknown database",
			value: &UnknownDatabase{
				Database:   Database{ProxyResource: ProxyResource{ID: &id}, Kind: "ReadOnlyLeader"},
				Properties: json.RawMessage(`{"leader":"/c/1"}`),
			},
			want: `{"id":"/dc/1","kind":"ReadOnlyLeader","properties":{"leader":"/c/1"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := unions.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestUnknownKindKeepsMarkupCharacters(t *testing.T) {
	raw := `{"kind":"Cosmos<Db>&Co","name":"a<b","properties":{"note":"x&y"}}`

	v, err := UnmarshalDataConnectionClassification([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Cosmos<Db>&Co", v.DiscriminatorValue())

	out, err := DataConnectionCatalog.Encode(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"kind":"Cosmos<Db>&Co"`)
	assert.Contains(t, string(out), `"name":"a<b"`)
	assert.Contains(t, string(out), `"note":"x&y"`)
	assert.JSONEq(t, raw, string(out))
}

func TestOpenCatalogs(t *testing.T) {
	assert.True(t, DataConnectionCatalog.Open())
	assert.True(t, DatabaseCatalog.Open())

	var tags []string
	for _, k := range PossibleDataConnectionKindValues() {
		tags = append(tags, string(k))
	}
	assert.ElementsMatch(t, tags, DataConnectionCatalog.Tags())
	assert.Equal(t, []string{"ReadOnlyFollowing", "ReadWrite"}, DatabaseCatalog.Tags())
}

func TestOpenCatalogsRejectMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing", `{"properties":{}}`},
		{"null", `{"kind":null}`},
		{"number", `{"kind":3}`},
		{"array", `[{"kind":"EventHub"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDataConnectionClassification([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, unions.ErrMalformedDiscriminator)
		})
	}
}

func TestRequiredConnectionProperties(t *testing.T) {
	_, err := UnmarshalDataConnectionClassification([]byte(`{"kind":"IotHub","properties":{"iotHubResourceId":"/iot"}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, unions.ErrRequiredField)

	var fe *unions.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "IotHub", fe.Tag)
	assert.Contains(t, err.Error(), "consumerGroup")
	assert.Contains(t, err.Error(), "sharedAccessPolicyName")
}

func TestDatabaseListMixesKnownAndUnknown(t *testing.T) {
	var list DatabaseListResult
	require.NoError(t, unions.Unmarshal([]byte(`{"value":[
		{"kind":"ReadWrite","name":"a","properties":{"softDeletePeriod":"P365D","statistics":{"size":1024}}},
		{"kind":"Snapshot","name":"b"},
		{"kind":"ReadOnlyFollowing","name":"c","properties":{"principalsModificationKind":"Union"}}
	]}`), &list))

	require.Len(t, list.Value, 3)
	assert.IsType(t, &ReadWriteDatabase{}, list.Value[0])
	assert.IsType(t, &UnknownDatabase{}, list.Value[1])
	assert.IsType(t, &ReadOnlyFollowingDatabase{}, list.Value[2])
	assert.Equal(t, 1024.0, *list.Value[0].(*ReadWriteDatabase).Properties.Statistics.Size)

	_, more := list.ContinuationToken()
	assert.False(t, more)
}

func TestKustoPoolListValidatesPools(t *testing.T) {
	var list KustoPoolListResult
	require.NoError(t, unions.Unmarshal([]byte(`{"value":[{"location":"westus","sku":{"name":"Compute optimized","size":"Small","tier":"Standard"},"properties":{"state":"Running","engineType":"V3"}}]}`), &list))
	require.Len(t, list.Value, 1)
	assert.Equal(t, KustoPoolStateRunning, *list.Value[0].Properties.State)

	err := unions.Unmarshal([]byte(`{"value":[{"location":"westus","sku":{"name":"Compute optimized"}}]}`), &list)
	require.Error(t, err)
	assert.ErrorIs(t, err, unions.ErrRequiredField)
	assert.Contains(t, err.Error(), "tier")
}

func TestSinglePageListsIgnoreLinks(t *testing.T) {
	for _, p := range []paging.Policy{DataConnectionListResultPolicy, DatabaseListResultPolicy, KustoPoolListResultPolicy} {
		assert.Equal(t, paging.SinglePage, p.Empty, p.Family)
		link := "https://management.azure.com/next"
		_, more := p.Next(&link)
		assert.False(t, more, p.Family)
	}

	var list DataConnectionListResult
	require.NoError(t, unions.Unmarshal([]byte(`{"value":[],"nextLink":"ignored"}`), &list))
	_, more := list.ContinuationToken()
	assert.False(t, more)
}

func TestOperationListContinuation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantToken string
		wantMore  bool
	}{
		{"absent", `{"value":[]}`, "", false},
		{"empty", `{"value":[],"nextLink":""}`, "", true},
		{"present", `{"value":[],"nextLink":"https://ops?page=2"}`, "https://ops?page=2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list OperationListResult
			require.NoError(t, unions.Unmarshal([]byte(tt.input), &list))
			token, more := list.ContinuationToken()
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantMore, more)
		})
	}
	assert.True(t, OperationListResultPolicy.NeedsReview())
}

func TestPagerFollowsEmptyOperationToken(t *testing.T) {
	bodies := map[string]string{
		"p1": `{"value":[{"name":"Microsoft.Synapse/workspaces/read"}],"nextLink":""}`,
		"":   `{"value":[{"name":"Microsoft.Synapse/workspaces/write"}]}`,
	}
	calls := 0
	fetch := func(_ context.Context, token *string) (OperationListResult, error) {
		calls++
		key := "p1"
		if token != nil {
			key = *token
		}
		var list OperationListResult
		err := unions.Unmarshal([]byte(bodies[key]), &list)
		return list, err
	}

	pager := paging.NewPager(fetch, paging.WithPolicy(OperationListResultPolicy))
	ops, err := paging.Collect(context.Background(), pager, func(l OperationListResult) []Operation { return l.Value })
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "Microsoft.Synapse/workspaces/write", *ops[1].Name)
	assert.Equal(t, 2, calls)
}

func TestErrorResponse(t *testing.T) {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(`{"error":{"code":"Conflict","message":"pool is stopping","details":[{"code":"Inner","message":"retry later"}],"additionalInfo":[{"type":"PolicyViolation","info":{"policy":"p1"}}]}}`), &resp))

	err := resp.Err()
	assert.EqualError(t, err, "synapse: Conflict: pool is stopping; Inner: retry later")
	assert.Equal(t, "PolicyViolation", *resp.Error.AdditionalInfo[0].Type)

	var empty ErrorResponse
	assert.NoError(t, empty.Err())
}
