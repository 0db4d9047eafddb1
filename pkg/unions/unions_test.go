package unions

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Shape struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

type ShapeClassification interface {
	Discriminator
	GetShape() *Shape
}

type Circle struct {
	Shape
	Radius *float64 `json:"radius,omitempty"`
}

func (Circle) DiscriminatorValue() string { return "Circle" }
func (c *Circle) GetShape() *Shape { return &c.Shape }
func (c Circle) MarshalJSON() ([]byte, error) {
	type plain Circle
	return MarshalTagged("kind", c.DiscriminatorValue(), plain(c))
}

type Label struct {
	Shape
	Text string `json:"text" validate:"required"`
}

func (Label) DiscriminatorValue() string { return "Label" }
func (l *Label) GetShape() *Shape { return &l.Shape }
func (l Label) MarshalJSON() ([]byte, error) {
	type plain Label
	return MarshalTagged("kind", l.DiscriminatorValue(), plain(l))
}

var shapeCatalog = NewCatalog("test.Shape", "kind",
	func() ShapeClassification { return &Circle{} },
	func() ShapeClassification { return &Label{} },
)

func strPtr(s string) *string { return &s }

func TestCatalogDecode(t *testing.T) {
	v, err := shapeCatalog.Decode([]byte(`{"kind":"Circle","id":"/x","name":"c1","radius":2.5}`))
	require.NoError(t, err)

	c, ok := v.(*Circle)
	require.True(t, ok, "expected *Circle, got %T", v)
	assert.Equal(t, "/x", *c.GetShape().ID)
	assert.Equal(t, "c1", *c.Name)
	assert.Equal(t, 2.5, *c.Radius)
}

func TestCatalogDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
	}{
		{name: "unknown tag", json: `{"kind":"Square"}`, wantErr: ErrUnrecognizedDiscriminator},
		{name: "empty tag", json: `{"kind":""}`, wantErr: ErrUnrecognizedDiscriminator},
		{name: "tag differs by case", json: `{"kind":"circle"}`, wantErr: ErrUnrecognizedDiscriminator},
		{name: "missing tag", json: `{"id":"/x"}`, wantErr: ErrMalformedDiscriminator},
		{name: "null tag", json: `{"kind":null}`, wantErr: ErrMalformedDiscriminator},
		{name: "numeric tag", json: `{"kind":7}`, wantErr: ErrMalformedDiscriminator},
		{name: "object tag", json: `{"kind":{"v":"Circle"}}`, wantErr: ErrMalformedDiscriminator},
		{name: "array input", json: `[{"kind":"Circle"}]`, wantErr: ErrMalformedDiscriminator},
		{name: "null input", json: `null`, wantErr: ErrMalformedDiscriminator},
		{name: "invalid json", json: `{kind}`, wantErr: ErrMalformedDiscriminator},
		{name: "required field missing", json: `{"kind":"Label"}`, wantErr: ErrRequiredField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := shapeCatalog.Decode([]byte(tt.json))
			require.Error(t, err)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogDecodeFieldTypeMismatch(t *testing.T) {
	_, err := shapeCatalog.Decode([]byte(`{"kind":"Circle","radius":"wide"}`))
	require.Error(t, err)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "Circle", fieldErr.Tag)
	assert.False(t, errors.Is(err, ErrMalformedDiscriminator))
}

func TestDiscriminatorErrorMessage(t *testing.T) {
	_, err := shapeCatalog.Decode([]byte(`{"kind":"Square"}`))
	assert.EqualError(t, err, `test.Shape.kind: unrecognized discriminator "Square"`)

	_, err = shapeCatalog.Decode([]byte(`{}`))
	assert.EqualError(t, err, `test.Shape.kind: malformed discriminator: missing`)
}

func TestCatalogEncode(t *testing.T) {
	tests := []struct {
		name  string
		value ShapeClassification
		want  string
	}{
		{
			name:  "all fields",
			value: &Circle{Shape: Shape{ID: strPtr("/x"), Name: strPtr("c1")}, Radius: new(float64)},
			want:  `{"kind":"Circle","id":"/x","name":"c1","radius":0}`,
		},
		{
			name:  "absent fields are omitted",
			value: &Circle{},
			want:  `{"kind":"Circle"}`,
		},
		{
			name:  "required field is always written",
			value: &Label{},
			want:  `{"kind":"Label","text":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shapeCatalog.Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestCatalogEncodeByValue(t *testing.T) {
	got, err := json.Marshal(Circle{Radius: new(float64)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Circle","radius":0}`, string(got))
}

func TestCatalogRoundTrip(t *testing.T) {
	inputs := []string{
		`{"kind":"Circle","id":"/x","name":"c1","radius":1.5}`,
		`{"kind":"Circle"}`,
		`{"kind":"Label","name":"l","text":"hello"}`,
	}

	for _, in := range inputs {
		v, err := shapeCatalog.Decode([]byte(in))
		require.NoError(t, err)

		out, err := shapeCatalog.Encode(v)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))

		again, err := shapeCatalog.Decode(out)
		require.NoError(t, err)
		assert.Equal(t, v, again)
	}
}

func TestCatalogDecodeSlice(t *testing.T) {
	vs, err := shapeCatalog.DecodeSlice([]byte(`[{"kind":"Label","text":"a"},{"kind":"Circle"}]`))
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "Label", vs[0].DiscriminatorValue())
	assert.Equal(t, "Circle", vs[1].DiscriminatorValue())

	vs, err = shapeCatalog.DecodeSlice([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, vs)

	_, err = shapeCatalog.DecodeSlice([]byte(`[{"kind":"Circle"},{"kind":"Hexagon"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedDiscriminator)
	assert.Contains(t, err.Error(), "element 1")

	_, err = shapeCatalog.DecodeSlice([]byte(`{"kind":"Circle"}`))
	require.Error(t, err)
}

func TestCatalogLookup(t *testing.T) {
	assert.Equal(t, []string{"Circle", "Label"}, shapeCatalog.Tags())
	assert.True(t, shapeCatalog.Has("Label"))
	assert.False(t, shapeCatalog.Has("label"))
	assert.Equal(t, "kind", shapeCatalog.DiscriminatorFieldName())
	assert.Equal(t, "test.Shape", shapeCatalog.Family())

	v, ok := shapeCatalog.Variant("Circle")
	require.True(t, ok)
	assert.IsType(t, &Circle{}, v)

	_, ok = shapeCatalog.Variant("Square")
	assert.False(t, ok)
}

func TestNewCatalogRejectsDuplicateTag(t *testing.T) {
	assert.Panics(t, func() {
		NewCatalog("test.Bad", "kind",
			func() ShapeClassification { return &Circle{} },
			func() ShapeClassification { return &Circle{Radius: new(float64)} },
		)
	})
}

type Pet struct {
	Kind string  `json:"kind"`
	Name *string `json:"name,omitempty"`
}

type PetClassification interface {
	Discriminator
	GetPet() *Pet
}

type Dog struct {
	Pet
	Barks *bool `json:"barks,omitempty"`
}

func (Dog) DiscriminatorValue() string { return "Dog" }
func (d *Dog) GetPet() *Pet { return &d.Pet }

type UnknownPet struct {
	Pet
	Properties json.RawMessage `json:"properties,omitempty"`
}

func (u UnknownPet) DiscriminatorValue() string { return u.Kind }
func (u *UnknownPet) GetPet() *Pet { return &u.Pet }

var petCatalog = NewOpenCatalog("test.Pet", "kind",
	func() PetClassification { return &UnknownPet{} },
	func() PetClassification { return &Dog{} },
)

func TestOpenCatalogKeepsUnknownKinds(t *testing.T) {
	raw := `{"kind":"Axolotl","name":"ax","properties":{"gills":6}}`

	v, err := petCatalog.Decode([]byte(raw))
	require.NoError(t, err)
	u, ok := v.(*UnknownPet)
	require.True(t, ok, "expected *UnknownPet, got %T", v)
	assert.Equal(t, "Axolotl", u.DiscriminatorValue())
	assert.JSONEq(t, `{"gills":6}`, string(u.Properties))

	out, err := petCatalog.Encode(v)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))

	v, err = petCatalog.Decode([]byte(`{"kind":"Dog","barks":true}`))
	require.NoError(t, err)
	assert.IsType(t, &Dog{}, v)

	assert.True(t, petCatalog.Open())
	assert.False(t, shapeCatalog.Open())
	assert.Equal(t, []string{"Dog"}, petCatalog.Tags())
}

func TestOpenCatalogStillRejectsMalformed(t *testing.T) {
	for _, input := range []string{`{"kind":null}`, `{"name":"x"}`, `{"kind":1}`, `"Dog"`} {
		_, err := petCatalog.Decode([]byte(input))
		assert.ErrorIs(t, err, ErrMalformedDiscriminator, input)
	}
}
