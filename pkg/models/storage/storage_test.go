package storage

import (
	"context"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/azmodels/pkg/paging"
	"github.com/example/azmodels/pkg/unions"
)

func TestIdentityKeepsFutureType(t *testing.T) {
	var id Identity
	require.NoError(t, unions.Unmarshal([]byte(`{"type":"SomeFutureState"}`), &id))
	assert.Equal(t, IdentityType("SomeFutureState"), id.Type)
	assert.True(t, id.Type.IsUnknown())

	out, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"SomeFutureState"}`, string(out))
}

func TestIdentityTypeKeepsMarkupCharacters(t *testing.T) {
	tests := []string{
		`{"type":"a<b"}`,
		`{"type":"x&y>z"}`,
		`{"type":"SystemAssigned","userAssignedIdentities":{"/ids/<a>&b":{"clientId":"c<1>"}}}`,
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			var id Identity
			require.NoError(t, unions.Unmarshal([]byte(raw), &id))

			out, err := unions.Marshal(id)
			require.NoError(t, err)
			assert.Equal(t, raw, string(out))
		})
	}
}

func TestIdentityTypeWithComma(t *testing.T) {
	var id Identity
	require.NoError(t, unions.Unmarshal([]byte(`{"type":"SystemAssigned,UserAssigned","userAssignedIdentities":{"/ids/a":{"clientId":"c1"}}}`), &id))
	assert.Equal(t, IdentityTypeSystemAssignedUserAssigned, id.Type)
	assert.False(t, id.Type.IsUnknown())
	assert.Equal(t, "c1", *id.UserAssignedIdentities["/ids/a"].ClientID)
}

func TestIdentityRequiresType(t *testing.T) {
	var id Identity
	err := unions.Unmarshal([]byte(`{"principalId":"p"}`), &id)
	require.Error(t, err)
	assert.ErrorIs(t, err, unions.ErrRequiredField)
	assert.Contains(t, err.Error(), "type")
}

func TestEnumsRejectNonStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"number", `{"name":"acct","location":"westus","kind":2}`},
		{"object", `{"name":"acct","location":"westus","kind":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var acct StorageAccount
			err := json.Unmarshal([]byte(tt.input), &acct)
			require.Error(t, err)
			assert.ErrorIs(t, err, unions.ErrMalformedDiscriminator)
		})
	}
}

func TestStorageAccountRoundTrip(t *testing.T) {
	raw := `{
		"id": "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Storage/storageAccounts/acct",
		"name": "acct",
		"type": "Microsoft.Storage/storageAccounts",
		"location": "westus",
		"tags": {"env": "test"},
		"sku": {"name": "Standard_RAGZRS", "tier": "Standard"},
		"kind": "StorageV3",
		"properties": {
			"provisioningState": "Succeeded",
			"primaryEndpoints": {"blob": "https://acct.blob.core.windows.net/"},
			"statusOfPrimary": "available",
			"creationTime": "2021-06-01T10:00:00Z",
			"minimumTlsVersion": "TLS1_3",
			"publicNetworkAccess": "Enabled"
		}
	}`

	var acct StorageAccount
	require.NoError(t, unions.Unmarshal([]byte(raw), &acct))
	assert.Equal(t, SkuNameStandardRAGZRS, acct.SKU.Name)
	assert.True(t, acct.Kind.IsUnknown())
	assert.True(t, acct.Properties.MinimumTLSVersion.IsUnknown())
	assert.Equal(t, AccountStatusAvailable, *acct.Properties.StatusOfPrimary)
	assert.Equal(t, time.Date(2021, 6, 1, 10, 0, 0, 0, time.UTC), acct.Properties.CreationTime.UTC())
	assert.Nil(t, acct.Identity)

	out, err := json.Marshal(acct)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestStorageAccountValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		missing string
	}{
		{"location", `{"name":"acct"}`, "location"},
		{"sku name", `{"location":"westus","sku":{"tier":"Premium"}}`, "sku.name"},
		{"identity type", `{"location":"westus","identity":{"tenantId":"t"}}`, "identity.type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var acct StorageAccount
			err := unions.Unmarshal([]byte(tt.input), &acct)
			require.Error(t, err)
			assert.ErrorIs(t, err, unions.ErrRequiredField)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestListContinuation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantToken string
		wantMore  bool
	}{
		{"absent", `{"value":[]}`, "", false},
		{"null", `{"nextLink":null}`, "", false},
		{"empty", `{"value":[],"nextLink":""}`, "", true},
		{"present", `{"nextLink":"https://management.azure.com/next?$skiptoken=2"}`, "https://management.azure.com/next?$skiptoken=2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := []paging.Continuable{
				&StorageAccountListResult{}, &DeletedAccountListResult{}, &ListContainerItems{}, &EncryptionScopeListResult{},
			}
			for _, page := range pages {
				require.NoError(t, unions.Unmarshal([]byte(tt.input), page))
				token, more := page.ContinuationToken()
				assert.Equal(t, tt.wantToken, token, "%T", page)
				assert.Equal(t, tt.wantMore, more, "%T", page)
			}
		})
	}
}

func TestListPoliciesAreFlagged(t *testing.T) {
	for _, p := range []paging.Policy{
		StorageAccountListResultPolicy, DeletedAccountListResultPolicy, ListContainerItemsPolicy, EncryptionScopeListResultPolicy,
	} {
		assert.Equal(t, paging.EmptyIsToken, p.Empty, p.Family)
		assert.True(t, p.NeedsReview(), p.Family)
	}
}

func TestStorageAccountListValidatesAccounts(t *testing.T) {
	var list StorageAccountListResult
	err := unions.Unmarshal([]byte(`{"value":[{"location":"westus"},{"name":"nowhere"}]}`), &list)
	require.Error(t, err)
	assert.ErrorIs(t, err, unions.ErrRequiredField)
	assert.Contains(t, err.Error(), "value[1].location")
}

func TestPagerOverContainers(t *testing.T) {
	bodies := map[string]string{
		"":   `{"value":[{"name":"logs","etag":"\"0x1\"","properties":{"publicAccess":"None","leaseState":"Available"}}],"nextLink":"c2"}`,
		"c2": `{"value":[{"name":"images","properties":{"publicAccess":"Blob","leaseDuration":"Infinite","metadata":{"owner":"web"}}}]}`,
	}
	fetch := func(_ context.Context, token *string) (ListContainerItems, error) {
		key := ""
		if token != nil {
			key = *token
		}
		var page ListContainerItems
		err := unions.Unmarshal([]byte(bodies[key]), &page)
		return page, err
	}

	pager := paging.NewPager(fetch, paging.WithPolicy(ListContainerItemsPolicy))
	items, err := paging.Collect(context.Background(), pager, func(l ListContainerItems) []ListContainerItem { return l.Value })
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "logs", *items[0].Name)
	assert.Equal(t, `"0x1"`, *items[0].Etag)
	assert.Equal(t, PublicAccessBlob, *items[1].Properties.PublicAccess)
	assert.Equal(t, "web", items[1].Properties.Metadata["owner"])
}

func TestEncryptionScopeSources(t *testing.T) {
	var scope EncryptionScope
	require.NoError(t, unions.Unmarshal([]byte(`{"name":"s1","properties":{"source":"Microsoft.KeyVault","state":"Enabled","keyVaultProperties":{"keyUri":"https://kv/keys/k"}}}`), &scope))
	assert.Equal(t, EncryptionScopeSourceMicrosoftKeyVault, *scope.Properties.Source)
	assert.Equal(t, "https://kv/keys/k", *scope.Properties.KeyVaultProperties.KeyURI)
}

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"code and message", `{"error":{"code":"StorageAccountNotFound","message":"no such account"}}`, "storage: StorageAccountNotFound: no such account"},
		{"message only", `{"error":{"message":"throttled"}}`, "storage: throttled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(tt.input), &resp))
			assert.EqualError(t, resp.Err(), tt.want)
		})
	}

	var empty ErrorResponse
	assert.NoError(t, empty.Err())
}
