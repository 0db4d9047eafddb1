package unions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalTagged(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		tag     string
		payload any
		want    string
		wantErr bool
	}{
		{
			name:    "empty payload",
			field:   "kind",
			tag:     "AmazonARN",
			payload: struct{}{},
			want:    `{"kind":"AmazonARN"}`,
		},
		{
			name:  "tag written first",
			field: "type",
			tag:   "Managed",
			payload: struct {
				Name string `json:"name"`
			}{Name: "ir"},
			want: `{"type":"Managed","name":"ir"}`,
		},
		{
			name:    "tag is not html escaped",
			field:   "kind",
			tag:     "a<b>&c",
			payload: map[string]int{},
			want:    `{"kind":"a<b>&c"}`,
		},
		{
			name:    "payload must be an object",
			field:   "kind",
			tag:     "X",
			payload: []int{1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalTagged(tt.field, tt.tag, tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalKeepsNestedMarkup(t *testing.T) {
	type inner struct {
		Note string `json:"note"`
	}
	v := struct {
		Name  string            `json:"name"`
		Inner inner             `json:"inner"`
		Tags  map[string]string `json:"tags"`
	}{
		Name:  "<a>",
		Inner: inner{Note: "x&y"},
		Tags:  map[string]string{"k<": ">v"},
	}

	out, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"<a>","inner":{"note":"x&y"},"tags":{"k<":">v"}}`, string(out))

	out, err = MarshalTagged("kind", "<t>", v)
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"<t>","name":"<a>","inner":{"note":"x&y"},"tags":{"k<":">v"}}`, string(out))
}

func TestReadDiscriminator(t *testing.T) {
	tag, err := ReadDiscriminator([]byte(`{"id":"/x","kind" : "SqlAuth"}`), "test", "kind")
	require.NoError(t, err)
	assert.Equal(t, "SqlAuth", tag)

	tag, err = ReadDiscriminator([]byte(`{"type":"SomeFutureState"}`), "test", "type")
	require.NoError(t, err)
	assert.Equal(t, "SomeFutureState", tag)

	_, err = ReadDiscriminator([]byte(`"SqlAuth"`), "test", "kind")
	assert.ErrorIs(t, err, ErrMalformedDiscriminator)
}
