package generator

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := ParseCatalog([]byte(testCatalog))
	require.NoError(t, err)
	return cat
}

func TestGenerateVariants(t *testing.T) {
	gen := NewVariantGenerator("")

	src, err := gen.GenerateVariants(mustParseCatalog(t))
	require.NoError(t, err)
	result := string(src)

	expected := []string{
		"// Code generated by azmodels generate. DO NOT EDIT.",
		"package widgets",
		`import "github.com/example/azmodels/pkg/unions"`,
		"type WidgetClassification interface {",
		"GetWidget() *Widget",
		`var WidgetCatalog = unions.NewCatalog("test.Widget", "kind",`,
		"func() WidgetClassification { return &GearWidget{} },",
		"func UnmarshalWidgetClassification(data []byte) (WidgetClassification, error) {",
		"type WidgetClassificationArray []WidgetClassification",
		"func (a *WidgetClassificationArray) UnmarshalJSON(data []byte) error {",
		"Properties *GearProperties `json:\"properties,omitempty\"`",
		`func (GearWidget) DiscriminatorValue() string { return "Gear" }`,
		`func (ArnWidget) DiscriminatorValue() string { return "AmazonARN" }`,
		"func (v *GearWidget) GetWidget() *Widget { return &v.Widget }",
		"func (v ArnWidget) MarshalJSON() ([]byte, error) {",
		`return unions.MarshalTagged("kind", v.DiscriminatorValue(), plain(v))`,
	}
	for _, want := range expected {
		assert.Contains(t, result, want)
	}

	// ArnWidget declares no properties type.
	arn := result[strings.Index(result, "type ArnWidget struct"):]
	arn = arn[:strings.Index(arn, "}")]
	assert.NotContains(t, arn, "Properties")

	_, err = parser.ParseFile(token.NewFileSet(), "variants.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestGenerateEnums(t *testing.T) {
	gen := NewVariantGenerator("")

	src, err := gen.GenerateEnums(mustParseCatalog(t))
	require.NoError(t, err)
	result := string(src)

	expected := []string{
		"// WidgetState is the lifecycle state of a widget.",
		"type WidgetState string",
		`WidgetStateTLS12  WidgetState = "TLS1_2"`,
		"func PossibleWidgetStateValues() []WidgetState {",
		"func (v WidgetState) IsUnknown() bool {",
		"return !unions.Known(v, PossibleWidgetStateValues())",
		`return unions.DecodeEnum(data, "test.WidgetState", v)`,
	}
	for _, want := range expected {
		assert.Contains(t, result, want)
	}

	_, err = parser.ParseFile(token.NewFileSet(), "enums.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestGeneratePackageOverride(t *testing.T) {
	src, err := NewVariantGenerator("other").GenerateEnums(mustParseCatalog(t))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package other")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	cat := mustParseCatalog(t)

	written, err := NewVariantGenerator("").WriteFiles(cat, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, VariantsFile), filepath.Join(dir, EnumsFile)}, written)

	cat.Families = nil
	dir = t.TempDir()
	written, err = NewVariantGenerator("").WriteFiles(cat, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, EnumsFile)}, written)

	_, err = os.Stat(filepath.Join(dir, VariantsFile))
	assert.True(t, os.IsNotExist(err))
}

// The committed model files must match what the generator produces from the
// catalogs next to them. Layout is left to gofmt, so tokens are compared.
func TestCommittedModelsAreGenerated(t *testing.T) {
	for _, pkg := range []string{"purview", "storage", "synapse"} {
		t.Run(pkg, func(t *testing.T) {
			dir := filepath.Join("..", "..", "pkg", "models", pkg)
			cat, err := LoadCatalog(filepath.Join(dir, "catalog.yaml"))
			require.NoError(t, err)

			gen := NewVariantGenerator("")
			files := map[string]func(*Catalog) ([]byte, error){
				EnumsFile: gen.GenerateEnums,
			}
			if len(cat.Families) > 0 {
				files[VariantsFile] = gen.GenerateVariants
			} else {
				_, err := os.Stat(filepath.Join(dir, VariantsFile))
				assert.True(t, os.IsNotExist(err), "%s has no families but carries %s", pkg, VariantsFile)
			}

			for file, render := range files {
				want, err := render(cat)
				require.NoError(t, err)
				got, err := os.ReadFile(filepath.Join(dir, file))
				require.NoError(t, err)
				assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(got)), "%s/%s is stale; run go generate", pkg, file)
			}
		})
	}
}
