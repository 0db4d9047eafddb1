package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

const (
	// VariantsFile and EnumsFile are the names WriteFiles writes into the
	// model package directory.
	VariantsFile = "zz_generated_variants.go"
	EnumsFile    = "zz_generated_enums.go"

	unionsImportPath = "github.com/example/azmodels/pkg/unions"
)

const header = `// Code generated by azmodels generate. DO NOT EDIT.

package {{.Package}}

import "` + unionsImportPath + `"
`

const variantsTemplate = header + `
{{- range $f := .Families}}

// {{$f.Name}}Classification is implemented by every {{$f.Name}} variant.
type {{$f.Name}}Classification interface {
	unions.Discriminator
	// Get{{$f.Name}} returns the fields shared by every variant.
	Get{{$f.Name}}() *{{$f.Name}}
}

// {{$f.Name}}Catalog holds the {{$f.Name}} variants keyed by their {{printf "%q" $f.Field}} value.
var {{$f.Name}}Catalog = unions.NewCatalog({{printf "%q" (printf "%s.%s" $.Service $f.Name)}}, {{printf "%q" $f.Field}},
{{- range $v := $f.Variants}}
	func() {{$f.Name}}Classification { return &{{$v.Type}}{} },
{{- end}}
)

// Unmarshal{{$f.Name}}Classification decodes one {{$f.Name}} variant.
func Unmarshal{{$f.Name}}Classification(data []byte) ({{$f.Name}}Classification, error) {
	return {{$f.Name}}Catalog.Decode(data)
}

// {{$f.Name}}ClassificationArray is a JSON array of {{$f.Name}} variants.
type {{$f.Name}}ClassificationArray []{{$f.Name}}Classification

// UnmarshalJSON decodes every element through {{$f.Name}}Catalog.
func (a *{{$f.Name}}ClassificationArray) UnmarshalJSON(data []byte) error {
	vs, err := {{$f.Name}}Catalog.DecodeSlice(data)
	if err != nil {
		return err
	}
	*a = vs
	return nil
}
{{- range $v := $f.Variants}}

// {{$v.Type}} is the {{$f.Name}} variant with {{$f.Field}} {{printf "%q" $v.Tag}}.
type {{$v.Type}} struct {
	{{$f.Name}}
{{- if $v.Properties}}
	Properties *{{$v.Properties}} ` + "`" + `json:"properties,omitempty"` + "`" + `
{{- end}}
}

// DiscriminatorValue implements unions.Discriminator.
func ({{$v.Type}}) DiscriminatorValue() string { return {{printf "%q" $v.Tag}} }

// Get{{$f.Name}} implements {{$f.Name}}Classification.
func (v *{{$v.Type}}) Get{{$f.Name}}() *{{$f.Name}} { return &v.{{$f.Name}} }

// MarshalJSON writes the discriminator ahead of the variant fields.
func (v {{$v.Type}}) MarshalJSON() ([]byte, error) {
	type plain {{$v.Type}}
	return unions.MarshalTagged({{printf "%q" $f.Field}}, v.DiscriminatorValue(), plain(v))
}
{{- end}}
{{- end}}
`

const enumsTemplate = header + `
{{- range $e := .Enums}}

// {{$e.Name}} {{$e.Doc}}
type {{$e.Name}} string

const (
{{- range $e.Values}}
	{{.Name}} {{$e.Name}} = {{printf "%q" .Value}}
{{- end}}
)

// Possible{{$e.Name}}Values returns the {{$e.Name}} values known to this version.
func Possible{{$e.Name}}Values() []{{$e.Name}} {
	return []{{$e.Name}}{
{{- range $e.Values}}
		{{.Name}},
{{- end}}
	}
}

// IsUnknown reports whether v was added by a newer service version.
func (v {{$e.Name}}) IsUnknown() bool {
	return !unions.Known(v, Possible{{$e.Name}}Values())
}

// UnmarshalJSON accepts any string so unknown values survive a round trip.
func (v *{{$e.Name}}) UnmarshalJSON(data []byte) error {
	return unions.DecodeEnum(data, {{printf "%q" (printf "%s.%s" $.Service $e.Name)}}, v)
}
{{- end}}
`

var (
	variantsTmpl = template.Must(template.New("variants").Parse(variantsTemplate))
	enumsTmpl    = template.Must(template.New("enums").Parse(enumsTemplate))
)

// VariantGenerator renders the Go source of a catalog.
type VariantGenerator struct {
	packageName string
}

// NewVariantGenerator creates a generator for packageName. An empty name
// defers to the catalog's package.
func NewVariantGenerator(packageName string) *VariantGenerator {
	return &VariantGenerator{packageName: packageName}
}

// GenerateVariants renders every family of cat.
func (g *VariantGenerator) GenerateVariants(cat *Catalog) ([]byte, error) {
	return g.render(variantsTmpl, cat)
}

// GenerateEnums renders every enum of cat.
func (g *VariantGenerator) GenerateEnums(cat *Catalog) ([]byte, error) {
	return g.render(enumsTmpl, cat)
}

// WriteFiles renders cat into dir and returns the paths written. A file is
// only written when the catalog has something to put in it.
func (g *VariantGenerator) WriteFiles(cat *Catalog, dir string) ([]string, error) {
	var written []string
	outputs := []struct {
		name   string
		render func(*Catalog) ([]byte, error)
		empty  bool
	}{
		{VariantsFile, g.GenerateVariants, len(cat.Families) == 0},
		{EnumsFile, g.GenerateEnums, len(cat.Enums) == 0},
	}
	for _, out := range outputs {
		if out.empty {
			continue
		}
		src, err := out.render(cat)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, out.name)
		if err := os.WriteFile(path, src, 0o644); err != nil { // #nosec G306
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func (g *VariantGenerator) render(tmpl *template.Template, cat *Catalog) ([]byte, error) {
	data := *cat
	if g.packageName != "" {
		data.Package = g.packageName
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}
