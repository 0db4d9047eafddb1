package unions

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
)

// Catalog is the fixed table of variants for one struct-tagged family,
// keyed by the exact wire string of the discriminator. A catalog is built
// once at package initialisation and never modified.
type Catalog[T Discriminator] struct {
	family   string
	field    string
	variants map[string]func() T
	tags     []string
	// fallback receives discriminators no variant claims. Only open
	// catalogs have one.
	fallback func() T
}

// NewCatalog builds the catalog for family from variant constructors. Each
// constructor must return a fresh pointer; its DiscriminatorValue becomes the
// key. Two constructors reporting the same tag is a programming error and
// panics.
func NewCatalog[T Discriminator](family, field string, variants ...func() T) *Catalog[T] {
	c := &Catalog[T]{
		family:   family,
		field:    field,
		variants: make(map[string]func() T, len(variants)),
		tags:     make([]string, 0, len(variants)),
	}
	for _, newVariant := range variants {
		tag := newVariant().DiscriminatorValue()
		if _, dup := c.variants[tag]; dup {
			panic(fmt.Sprintf("unions: %s variant %q registered twice", family, tag))
		}
		c.variants[tag] = newVariant
		c.tags = append(c.tags, tag)
	}
	sort.Strings(c.tags)
	return c
}

// NewOpenCatalog builds a catalog for a family whose discriminator is an
// open enum. A discriminator that names no variant decodes into the value
// returned by unknown, which must keep the raw discriminator so it encodes
// back unchanged.
func NewOpenCatalog[T Discriminator](family, field string, unknown func() T, variants ...func() T) *Catalog[T] {
	c := NewCatalog(family, field, variants...)
	c.fallback = unknown
	return c
}

// Open reports whether unrecognized discriminators decode into a fallback
// variant instead of failing.
func (c *Catalog[T]) Open() bool { return c.fallback != nil }

// Family returns the family name used in errors.
func (c *Catalog[T]) Family() string { return c.family }

// DiscriminatorFieldName returns the JSON field holding the tag.
func (c *Catalog[T]) DiscriminatorFieldName() string { return c.field }

// Tags returns the registered tags in sorted order.
func (c *Catalog[T]) Tags() []string {
	return append([]string(nil), c.tags...)
}

// Has reports whether tag names a variant.
func (c *Catalog[T]) Has(tag string) bool {
	_, ok := c.variants[tag]
	return ok
}

// Variant returns a zero variant for tag.
func (c *Catalog[T]) Variant(tag string) (T, bool) {
	newVariant, ok := c.variants[tag]
	if !ok {
		var zero T
		return zero, false
	}
	return newVariant(), true
}

// Decode selects the variant named by the discriminator of data and decodes
// the whole object into it. Base and variant fields share the same level.
// An unrecognized discriminator is an error unless the catalog is open.
func (c *Catalog[T]) Decode(data []byte) (T, error) {
	var zero T

	tag, err := ReadDiscriminator(data, c.family, c.field)
	if err != nil {
		return zero, err
	}

	newVariant, ok := c.variants[tag]
	if !ok {
		if c.fallback == nil {
			return zero, unrecognized(c.family, c.field, tag)
		}
		newVariant = c.fallback
	}

	v := newVariant()
	if err := json.Unmarshal(data, v); err != nil {
		return zero, &FieldError{Family: c.family, Tag: tag, Err: err}
	}
	if err := Validate(v); err != nil {
		return zero, &FieldError{Family: c.family, Tag: tag, Err: err}
	}
	return v, nil
}

// DecodeSlice decodes a JSON array of tagged objects. The first element that
// fails aborts the decode. A JSON null yields a nil slice.
func (c *Catalog[T]) DecodeSlice(data []byte) ([]T, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &FieldError{Family: c.family, Err: fmt.Errorf("decode array: %w", err)}
	}
	if raws == nil {
		return nil, nil
	}

	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		v, err := c.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Encode writes v with its discriminator flattened alongside its fields.
func (c *Catalog[T]) Encode(v T) ([]byte, error) {
	return Marshal(v)
}
