package metadata

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Fguedes90/lazycelery-tools/internal/models"
)

// Metadata holds the package metadata extracted from the canonical config.
// It is populated once per run and read-only afterwards.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Authors     []string
	License     string
	Repository  string
	Homepage    string
	Keywords    []string
	Categories  []string

	// RustVersion is the minimum toolchain version declared in the
	// canonical config. Only the version checker uses it.
	RustVersion string
}

// cargoManifest mirrors the [package] table of a Cargo-style TOML file.
// Unknown keys and other tables are ignored.
type cargoManifest struct {
	Package cargoPackage `toml:"package"`
}

type cargoPackage struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Description string   `toml:"description"`
	Authors     []string `toml:"authors"`
	License     string   `toml:"license"`
	Repository  string   `toml:"repository"`
	Homepage    string   `toml:"homepage"`
	Keywords    []string `toml:"keywords"`
	Categories  []string `toml:"categories"`
	RustVersion string   `toml:"rust-version"`
}

// Author returns the first declared author, falling back to "Unknown"
func (m *Metadata) Author() string {
	if len(m.Authors) > 0 && m.Authors[0] != "" {
		return m.Authors[0]
	}
	return "Unknown"
}

// Load reads package metadata from a Cargo-style TOML file. Every field
// missing from the file is filled with a fixed default, so a partial config
// still yields a complete Metadata. Only an unreadable or unparseable file
// is an error.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.ReleaseError{
			Type: models.ErrMetadata,
			Path: path,
			Err:  err,
		}
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, &models.ReleaseError{
			Type: models.ErrMetadata,
			Path: path,
			Err:  fmt.Errorf("failed to parse TOML: %w", err),
		}
	}

	pkg := manifest.Package

	meta := &Metadata{
		Name:        defaultString(pkg.Name, "lazycelery"),
		Version:     defaultString(pkg.Version, "0.4.0"),
		Description: defaultString(pkg.Description, "Terminal UI for monitoring Celery"),
		Authors:     []string{firstAuthor(pkg.Authors)},
		License:     defaultString(pkg.License, "MIT"),
		Repository:  defaultString(pkg.Repository, "https://github.com/Fguedes90/lazycelery"),
		Homepage:    defaultString(pkg.Homepage, "https://github.com/Fguedes90/lazycelery"),
		Keywords:    defaultSlice(pkg.Keywords, []string{"celery", "tui", "terminal", "monitoring", "redis"}),
		Categories:  defaultSlice(pkg.Categories, []string{"command-line-utilities"}),
		RustVersion: pkg.RustVersion,
	}

	return meta, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultSlice(value, fallback []string) []string {
	if len(value) == 0 {
		return fallback
	}
	return value
}

func firstAuthor(authors []string) string {
	if len(authors) > 0 && authors[0] != "" {
		return authors[0]
	}
	return "Unknown"
}
