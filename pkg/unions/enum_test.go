package unions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState string

const (
	testStateRunning testState = "Running"
	testStateStopped testState = "Stopped"
)

func TestDecodeEnum(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		start   testState
		want    testState
		wantErr bool
	}{
		{name: "known value", json: `"Running"`, want: testStateRunning},
		{name: "unknown value kept verbatim", json: `"SomeFutureState"`, want: "SomeFutureState"},
		{name: "empty string kept", json: `""`, start: testStateStopped, want: ""},
		{name: "null leaves value", json: `null`, start: testStateStopped, want: testStateStopped},
		{name: "number rejected", json: `42`, wantErr: true},
		{name: "object rejected", json: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start
			err := DecodeEnum([]byte(tt.json), "test.State", &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedDiscriminator)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKnown(t *testing.T) {
	values := []testState{testStateRunning, testStateStopped}
	assert.True(t, Known(testStateRunning, values))
	assert.False(t, Known(testState("running"), values))
	assert.False(t, Known(testState(""), values))
}
