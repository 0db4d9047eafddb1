package generator

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Catalog describes the tagged-union families and open enums of one model
// package.
type Catalog struct {
	// Package is the Go package name of the generated files.
	Package string `yaml:"package" validate:"required,goident"`
	// Service prefixes family names in codec errors, e.g. "purview".
	Service  string   `yaml:"service" validate:"required"`
	Families []Family `yaml:"families" validate:"dive"`
	Enums    []Enum   `yaml:"enums" validate:"dive"`
}

// Family is a struct-tagged union. Its base struct is named after the family
// and must be declared by hand in the same package.
type Family struct {
	Name     string    `yaml:"name" validate:"required,goident"`
	Field    string    `yaml:"field" validate:"required"`
	Variants []Variant `yaml:"variants" validate:"required,min=1,dive"`
}

// Variant maps one discriminator value to a Go type.
type Variant struct {
	Tag  string `yaml:"tag" validate:"required"`
	Type string `yaml:"type" validate:"required,goident"`
	// Properties names the type of the variant's "properties" object.
	// Empty when the variant adds no fields.
	Properties string `yaml:"properties" validate:"omitempty,goident"`
}

// Enum is an open string enum.
type Enum struct {
	Name string `yaml:"name" validate:"required,goident"`
	// Doc completes the sentence "<Name> ...".
	Doc    string      `yaml:"doc"`
	Values []EnumValue `yaml:"values" validate:"required,min=1,dive"`
}

// EnumValue is one known value of an Enum.
type EnumValue struct {
	Name  string `yaml:"name" validate:"required,goident"`
	Value string `yaml:"value" validate:"required"`
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes a catalog from YAML and validates it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &cat, nil
}

func newCatalogValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})
	return v
}

// Validate checks field constraints plus uniqueness of tags within a family
// and of Go identifiers across the package.
func (c *Catalog) Validate() error {
	if err := newCatalogValidator().Struct(c); err != nil {
		return err
	}

	idents := make(map[string]string)
	declare := func(name, owner string) error {
		if prev, ok := idents[name]; ok {
			return fmt.Errorf("identifier %s declared by both %s and %s", name, prev, owner)
		}
		idents[name] = owner
		return nil
	}

	for _, f := range c.Families {
		if err := declare(f.Name+"Classification", "family "+f.Name); err != nil {
			return err
		}
		tags := make(map[string]bool, len(f.Variants))
		for _, v := range f.Variants {
			if tags[v.Tag] {
				return fmt.Errorf("family %s: duplicate tag %q", f.Name, v.Tag)
			}
			tags[v.Tag] = true
			if err := declare(v.Type, "family "+f.Name); err != nil {
				return err
			}
		}
	}

	for _, e := range c.Enums {
		if err := declare(e.Name, "enum "+e.Name); err != nil {
			return err
		}
		values := make(map[string]bool, len(e.Values))
		for _, v := range e.Values {
			if values[v.Value] {
				return fmt.Errorf("enum %s: duplicate value %q", e.Name, v.Value)
			}
			values[v.Value] = true
			if err := declare(v.Name, "enum "+e.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
