package homebrew

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Fguedes90/lazycelery-tools/internal/fetch"
	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/sanitize"
)

// Generator renders a Homebrew formula installing the package from source
type Generator struct {
	hasher *fetch.Hasher
}

// NewGenerator creates a new Homebrew formula generator
func NewGenerator(hasher *fetch.Hasher) *Generator {
	return &Generator{hasher: hasher}
}

// OutputPath returns the manifest path relative to the packaging directory
func (g *Generator) OutputPath() string {
	return filepath.Join("homebrew", "lazycelery.rb")
}

// Render produces the Ruby formula
func (g *Generator) Render(ctx context.Context, meta *metadata.Metadata) (string, error) {
	name, err := sanitize.Name(meta.Name)
	if err != nil {
		return "", err
	}
	version, err := sanitize.Version(meta.Version)
	if err != nil {
		return "", err
	}
	repository, err := sanitize.URL(meta.Repository)
	if err != nil {
		return "", err
	}
	homepage, err := sanitize.URL(meta.Homepage)
	if err != nil {
		return "", err
	}

	sourceURL := fmt.Sprintf("%s/archive/v%s.tar.gz", repository, version)
	sha256 := g.hasher.SHA256(ctx, sourceURL)

	var formula strings.Builder

	fmt.Fprintf(&formula, "class %s < Formula\n", toClassName(name))
	fmt.Fprintf(&formula, "  desc \"%s\"\n", meta.Description)
	fmt.Fprintf(&formula, "  homepage \"%s\"\n", homepage)
	fmt.Fprintf(&formula, "  url \"%s\"\n", sourceURL)
	fmt.Fprintf(&formula, "  sha256 \"%s\"\n", sha256)
	fmt.Fprintf(&formula, "  license \"%s\"\n", meta.License)
	formula.WriteString("\n")
	formula.WriteString("  depends_on \"rust\" => :build\n")
	formula.WriteString("\n")
	formula.WriteString("  def install\n")
	formula.WriteString("    system \"cargo\", \"install\", *std_cargo_args\n")
	formula.WriteString("  end\n")
	formula.WriteString("\n")
	formula.WriteString("  test do\n")
	fmt.Fprintf(&formula, "    assert_match \"%s\", shell_output(\"#{bin}/%s --help\")\n", name, name)
	formula.WriteString("  end\n")
	formula.WriteString("end\n")

	return formula.String(), nil
}

// toClassName converts a package name to a Ruby class name
func toClassName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, "")
}
