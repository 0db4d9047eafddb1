// Package registry indexes every union family, page envelope and
// standalone model the azmodels packages declare. The index is built from
// package-level values at init and is read-only afterwards.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/example/azmodels/pkg/paging"
	"github.com/example/azmodels/pkg/unions"
)

// Kind classifies an entry.
type Kind int

const (
	// StructTagged is a closed family: unknown discriminators are rejected.
	StructTagged Kind = iota
	// EnumKind is a family discriminated by an open enum: unknown
	// discriminators decode into a fallback variant.
	EnumKind
	// Page is a paginated list envelope.
	Page
	// Model is a plain resource with no discriminator.
	Model
)

func (k Kind) String() string {
	switch k {
	case StructTagged:
		return "struct-tagged"
	case EnumKind:
		return "enum-kind"
	case Page:
		return "page"
	case Model:
		return "model"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrWrongType is returned when a value handed to an entry was not produced
// by that entry.
var ErrWrongType = errors.New("value does not belong to entry")

// Entry describes one registered type.
type Entry struct {
	// Name is "<service>.<Type>", e.g. "purview.DataSource".
	Name    string
	Service string
	Kind    Kind
	// Field is the discriminator field of a family.
	Field string
	// Tags are the known discriminator values of a family, sorted.
	Tags []string
	// Policy is the continuation policy of a page.
	Policy paging.Policy

	// Decode decodes and validates one document.
	Decode func(data []byte) (any, error)
	// Encode writes a value returned by Decode.
	Encode func(v any) ([]byte, error)
	// Tag reports the discriminator of a decoded family value.
	Tag func(v any) string
	// New returns pointers to zero values for schema reflection: one per
	// tag for families, a single value otherwise.
	New func() []any
	// Items returns the items of a decoded page in server order.
	Items func(page any) []any
	// Drive runs the pager over body, which serves the raw response for a
	// request token (nil for the first request).
	Drive func(ctx context.Context, body BodyFunc, opts ...paging.Option) ([]PageResult, error)
}

// BodyFunc returns the recorded response for a request token.
type BodyFunc func(ctx context.Context, token *string) ([]byte, error)

// PageResult summarises one page visited by Drive.
type PageResult struct {
	Items int
	Next  string
	More  bool
}

// Family reports whether e is a union family.
func (e Entry) Family() bool { return e.Kind == StructTagged || e.Kind == EnumKind }

var (
	entries []Entry
	byName  map[string]int
)

func init() {
	entries = append(entries, purviewEntries()...)
	entries = append(entries, synapseEntries()...)
	entries = append(entries, storageEntries()...)

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	byName = make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := byName[e.Name]; dup {
			panic("registry: duplicate entry " + e.Name)
		}
		byName[e.Name] = i
	}
}

// Lookup returns the entry called name.
func Lookup(name string) (Entry, bool) {
	i, ok := byName[name]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Names returns every entry name in sorted order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// All returns every entry sorted by name.
func All() []Entry {
	return append([]Entry(nil), entries...)
}

// Families returns the union families.
func Families() []Entry {
	return filter(Entry.Family)
}

// Pages returns the page envelopes.
func Pages() []Entry {
	return filter(func(e Entry) bool { return e.Kind == Page })
}

// NeedsReview returns the pages whose empty-token behaviour is flagged.
func NeedsReview() []Entry {
	return filter(func(e Entry) bool { return e.Kind == Page && e.Policy.NeedsReview() })
}

func filter(keep func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func serviceOf(name string) string {
	service, _, _ := strings.Cut(name, ".")
	return service
}

func family[T unions.Discriminator](c *unions.Catalog[T]) Entry {
	kind := StructTagged
	if c.Open() {
		kind = EnumKind
	}
	return Entry{
		Name:    c.Family(),
		Service: serviceOf(c.Family()),
		Kind:    kind,
		Field:   c.DiscriminatorFieldName(),
		Tags:    c.Tags(),
		Decode: func(data []byte) (any, error) {
			v, err := c.Decode(data)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		Encode: func(v any) ([]byte, error) {
			t, ok := v.(T)
			if !ok {
				return nil, fmt.Errorf("%w: %T is not a %s", ErrWrongType, v, c.Family())
			}
			return c.Encode(t)
		},
		Tag: func(v any) string {
			if d, ok := v.(unions.Discriminator); ok {
				return d.DiscriminatorValue()
			}
			return ""
		},
		New: func() []any {
			var out []any
			for _, tag := range c.Tags() {
				v, _ := c.Variant(tag)
				out = append(out, v)
			}
			return out
		},
	}
}

func model[M any](name string) Entry {
	return Entry{
		Name:    name,
		Service: serviceOf(name),
		Kind:    Model,
		Decode: func(data []byte) (any, error) {
			m := new(M)
			if err := unions.Unmarshal(data, m); err != nil {
				return nil, err
			}
			return m, nil
		},
		Encode: encodeAs[*M](name),
		New:    func() []any { return []any{new(M)} },
	}
}

func page[P paging.Continuable, T any](policy paging.Policy, items func(P) []T) Entry {
	e := model[P](policy.Family)
	e.Kind = Page
	e.Policy = policy

	itemsOf := func(v any) []any {
		p, ok := v.(*P)
		if !ok {
			return nil
		}
		var out []any
		for _, it := range items(*p) {
			out = append(out, it)
		}
		return out
	}
	e.Items = itemsOf

	e.Drive = func(ctx context.Context, body BodyFunc, opts ...paging.Option) ([]PageResult, error) {
		fetch := func(ctx context.Context, token *string) (P, error) {
			var p P
			data, err := body(ctx, token)
			if err != nil {
				return p, err
			}
			err = unions.Unmarshal(data, &p)
			return p, err
		}
		pager := paging.NewPager(fetch, append([]paging.Option{paging.WithPolicy(policy)}, opts...)...)

		var results []PageResult
		for pager.More() {
			p, err := pager.NextPage(ctx)
			if err != nil {
				return results, err
			}
			next, more := p.ContinuationToken()
			results = append(results, PageResult{Items: len(items(p)), Next: next, More: more})
		}
		return results, nil
	}
	return e
}

func encodeAs[V any](name string) func(any) ([]byte, error) {
	return func(v any) ([]byte, error) {
		if _, ok := v.(V); !ok {
			return nil, fmt.Errorf("%w: %T is not a %s", ErrWrongType, v, name)
		}
		return unions.Marshal(v)
	}
}
