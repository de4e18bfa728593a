package aur

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Fguedes90/lazycelery-tools/internal/fetch"
	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/sanitize"
)

// SourceGenerator renders the PKGBUILD that builds the package from source
type SourceGenerator struct {
	hasher *fetch.Hasher
}

// NewSourceGenerator creates a new source PKGBUILD generator
func NewSourceGenerator(hasher *fetch.Hasher) *SourceGenerator {
	return &SourceGenerator{hasher: hasher}
}

// OutputPath returns the manifest path relative to the packaging directory
func (g *SourceGenerator) OutputPath() string {
	return filepath.Join("aur", "PKGBUILD")
}

// Render produces the source-build PKGBUILD
func (g *SourceGenerator) Render(ctx context.Context, meta *metadata.Metadata) (string, error) {
	name, version, repository, homepage, err := validateFields(meta)
	if err != nil {
		return "", err
	}

	sourceURL := fmt.Sprintf("%s/archive/v%s.tar.gz", repository, version)
	sha256 := g.hasher.SHA256(ctx, sourceURL)

	var b strings.Builder

	fmt.Fprintf(&b, "# Maintainer: %s\n", meta.Author())
	fmt.Fprintf(&b, "pkgname=%s\n", name)
	fmt.Fprintf(&b, "pkgver=%s\n", version)
	b.WriteString("pkgrel=1\n")
	fmt.Fprintf(&b, "pkgdesc=\"%s\"\n", meta.Description)
	b.WriteString("arch=('x86_64')\n")
	fmt.Fprintf(&b, "url=\"%s\"\n", homepage)
	fmt.Fprintf(&b, "license=('%s')\n", meta.License)
	b.WriteString("depends=('gcc-libs')\n")
	b.WriteString("makedepends=('rust' 'cargo')\n")
	fmt.Fprintf(&b, "source=(\"$pkgname-$pkgver.tar.gz::%s/archive/v$pkgver.tar.gz\")\n", repository)
	fmt.Fprintf(&b, "sha256sums=('%s')\n", sha256)
	b.WriteString(`
build() {
    cd "$pkgname-$pkgver"
    export RUSTUP_TOOLCHAIN=stable
    export CARGO_TARGET_DIR=target
    cargo build --release --locked
}

check() {
    cd "$pkgname-$pkgver"
    export RUSTUP_TOOLCHAIN=stable
    cargo test --release --locked
}

package() {
    cd "$pkgname-$pkgver"
    install -Dm755 target/release/$pkgname "$pkgdir/usr/bin/$pkgname"
    install -Dm644 LICENSE "$pkgdir/usr/share/licenses/$pkgname/LICENSE"
    install -Dm644 README.md "$pkgdir/usr/share/doc/$pkgname/README.md"
}
`)

	return b.String(), nil
}

// BinaryGenerator renders the PKGBUILD that installs the prebuilt release
type BinaryGenerator struct {
	hasher *fetch.Hasher
}

// NewBinaryGenerator creates a new binary PKGBUILD generator
func NewBinaryGenerator(hasher *fetch.Hasher) *BinaryGenerator {
	return &BinaryGenerator{hasher: hasher}
}

// OutputPath returns the manifest path relative to the packaging directory
func (g *BinaryGenerator) OutputPath() string {
	return filepath.Join("aur", "PKGBUILD-bin")
}

// Render produces the binary-release PKGBUILD
func (g *BinaryGenerator) Render(ctx context.Context, meta *metadata.Metadata) (string, error) {
	name, version, repository, homepage, err := validateFields(meta)
	if err != nil {
		return "", err
	}

	binaryURL := fmt.Sprintf("%s/releases/download/v%s/%s-linux-x86_64.tar.gz", repository, version, name)
	sha256 := g.hasher.SHA256(ctx, binaryURL)

	var b strings.Builder

	fmt.Fprintf(&b, "# Maintainer: %s\n", meta.Author())
	fmt.Fprintf(&b, "pkgname=%s-bin\n", name)
	fmt.Fprintf(&b, "pkgver=%s\n", version)
	b.WriteString("pkgrel=1\n")
	fmt.Fprintf(&b, "pkgdesc=\"%s (binary release)\"\n", meta.Description)
	b.WriteString("arch=('x86_64')\n")
	fmt.Fprintf(&b, "url=\"%s\"\n", homepage)
	fmt.Fprintf(&b, "license=('%s')\n", meta.License)
	b.WriteString("depends=('gcc-libs')\n")
	fmt.Fprintf(&b, "provides=('%s')\n", name)
	fmt.Fprintf(&b, "conflicts=('%s')\n", name)
	fmt.Fprintf(&b, "source_x86_64=(\"%s/releases/download/v$pkgver/%s-linux-x86_64.tar.gz\")\n", repository, name)
	fmt.Fprintf(&b, "sha256sums_x86_64=('%s')\n", sha256)
	b.WriteString("\npackage() {\n")
	fmt.Fprintf(&b, "    install -Dm755 %s \"$pkgdir/usr/bin/%s\"\n", name, name)
	b.WriteString("\n    # Download and install license and docs\n")
	fmt.Fprintf(&b, "    curl -sL \"%s/raw/v$pkgver/LICENSE\" -o LICENSE\n", repository)
	fmt.Fprintf(&b, "    curl -sL \"%s/raw/v$pkgver/README.md\" -o README.md\n", repository)
	b.WriteString("\n    install -Dm644 LICENSE \"$pkgdir/usr/share/licenses/$pkgname/LICENSE\"\n")
	b.WriteString("    install -Dm644 README.md \"$pkgdir/usr/share/doc/$pkgname/README.md\"\n")
	b.WriteString("}\n")

	return b.String(), nil
}

// validateFields sanitizes the metadata fields both PKGBUILD variants embed
func validateFields(meta *metadata.Metadata) (name, version, repository, homepage string, err error) {
	if name, err = sanitize.Name(meta.Name); err != nil {
		return
	}
	if version, err = sanitize.Version(meta.Version); err != nil {
		return
	}
	if repository, err = sanitize.URL(meta.Repository); err != nil {
		return
	}
	homepage, err = sanitize.URL(meta.Homepage)
	return
}
