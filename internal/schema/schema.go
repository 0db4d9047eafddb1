// Package schema renders JSON Schemas for the registry entries. A family
// becomes a oneOf with one subschema per discriminator value.
package schema

import (
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/example/azmodels/internal/registry"
)

// ErrNoTypes is returned for an entry that exposes nothing to reflect.
var ErrNoTypes = errors.New("entry has no types to reflect")

// Generator renders schemas, optionally described by Go doc comments.
type Generator struct {
	comments map[string]string
}

// NewGenerator returns a generator without descriptions.
func NewGenerator() *Generator {
	return &Generator{comments: make(map[string]string)}
}

// AddGoComments reads the doc comments of the packages under dir. base is
// the import path dir corresponds to, e.g. "github.com/example/azmodels"
// for the module root.
func (g *Generator) AddGoComments(base, dir string) error {
	if err := jsonschema.ExtractGoComments(base, dir, g.comments); err != nil {
		return fmt.Errorf("extract comments: %w", err)
	}
	return nil
}

func (g *Generator) reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
		// Decoders ignore keys they do not know.
		AllowAdditionalProperties: true,
		CommentMap:                g.comments,
	}
}

// For returns the schema of e without descriptions.
func For(e registry.Entry) (*jsonschema.Schema, error) {
	return NewGenerator().For(e)
}

// For returns the schema of e.
func (g *Generator) For(e registry.Entry) (*jsonschema.Schema, error) {
	if e.New == nil {
		return nil, fmt.Errorf("%s: %w", e.Name, ErrNoTypes)
	}
	values := e.New()
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", e.Name, ErrNoTypes)
	}

	if !e.Family() {
		s := g.reflector().Reflect(values[0])
		s.Title = e.Name
		return s, nil
	}

	if len(values) != len(e.Tags) {
		return nil, fmt.Errorf("%s: %d variants for %d tags", e.Name, len(values), len(e.Tags))
	}

	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       e.Name,
		Definitions: jsonschema.Definitions{},
	}
	r := g.reflector()
	for i, v := range values {
		sub := r.Reflect(v)
		for name, def := range sub.Definitions {
			root.Definitions[name] = def
		}
		sub.Definitions = nil
		sub.Version = ""
		sub.Title = e.Tags[i]
		discriminate(sub, e.Field, &jsonschema.Schema{Type: "string", Const: e.Tags[i]})
		root.OneOf = append(root.OneOf, sub)
	}

	if e.Kind == registry.EnumKind {
		known := make([]any, len(e.Tags))
		for i, tag := range e.Tags {
			known[i] = tag
		}
		unknown := &jsonschema.Schema{Type: "object", Title: "unknown " + e.Field}
		discriminate(unknown, e.Field, &jsonschema.Schema{
			Type:     "string",
			Not:      &jsonschema.Schema{Enum: known},
			Examples: []any{"a " + e.Field + " added by a newer service version"},
		})
		root.OneOf = append(root.OneOf, unknown)
	}

	if len(root.Definitions) == 0 {
		root.Definitions = nil
	}
	return root, nil
}

// discriminate pins the discriminator property of s and marks it required.
func discriminate(s *jsonschema.Schema, field string, prop *jsonschema.Schema) {
	if s.Properties == nil {
		s.Properties = jsonschema.NewProperties()
	}
	s.Properties.Set(field, prop)
	for _, r := range s.Required {
		if r == field {
			return
		}
	}
	s.Required = append([]string{field}, s.Required...)
}
