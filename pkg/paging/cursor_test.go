package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyNext(t *testing.T) {
	empty := ""
	link := "https://example.com/next?page=2"

	tests := []struct {
		name     string
		policy   Policy
		link     *string
		want     string
		wantMore bool
	}{
		{name: "absent link ends paging", policy: Policy{Empty: EmptyEndsPaging}, link: nil},
		{name: "empty link ends paging", policy: Policy{Empty: EmptyEndsPaging}, link: &empty},
		{name: "link continues", policy: Policy{Empty: EmptyEndsPaging}, link: &link, want: link, wantMore: true},
		{name: "absent link with pass-through", policy: Policy{Empty: EmptyIsToken}, link: nil},
		{name: "empty link is a token", policy: Policy{Empty: EmptyIsToken}, link: &empty, want: "", wantMore: true},
		{name: "pass-through link continues", policy: Policy{Empty: EmptyIsToken}, link: &link, want: link, wantMore: true},
		{name: "single page ignores link", policy: Policy{Empty: SinglePage}, link: &link},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, more := tt.policy.Next(tt.link)
			assert.Equal(t, tt.wantMore, more)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyRequired(t *testing.T) {
	p := Policy{Empty: EmptyEndsPaging}
	_, more := p.Required("")
	assert.False(t, more)

	tok, more := p.Required("t2")
	assert.True(t, more)
	assert.Equal(t, "t2", tok)
}

func TestPolicyNeedsReview(t *testing.T) {
	assert.False(t, Policy{Family: "purview.DataSourceList"}.NeedsReview())
	assert.True(t, Policy{Family: "storage.StorageAccountListResult", Empty: EmptyIsToken, Review: "empty nextLink passed through"}.NeedsReview())
}

func TestEmptyTokenString(t *testing.T) {
	assert.Equal(t, "empty-ends-paging", EmptyEndsPaging.String())
	assert.Equal(t, "empty-is-token", EmptyIsToken.String())
	assert.Equal(t, "single-page", SinglePage.String())
	assert.Equal(t, "unknown", EmptyToken(42).String())
}
