package scoop

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/Fguedes90/lazycelery-tools/internal/fetch"
	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/sanitize"
)

// Manifest mirrors the Scoop app manifest layout. Field order follows the
// upstream bucket convention.
type Manifest struct {
	Version      string       `json:"version"`
	Description  string       `json:"description"`
	Homepage     string       `json:"homepage"`
	License      string       `json:"license"`
	Architecture Architecture `json:"architecture"`
	Bin          string       `json:"bin"`
	Checkver     Checkver     `json:"checkver"`
	Autoupdate   Autoupdate   `json:"autoupdate"`
}

// Architecture holds the per-architecture download entries
type Architecture struct {
	Bit64 Download `json:"64bit"`
}

// Download describes one downloadable artifact
type Download struct {
	URL        string `json:"url"`
	Hash       string `json:"hash"`
	ExtractDir string `json:"extract_dir"`
}

// Checkver tells Scoop where to look for new releases
type Checkver struct {
	Github string `json:"github"`
}

// Autoupdate describes the autoupdate URL template
type Autoupdate struct {
	Architecture AutoupdateArchitecture `json:"architecture"`
}

// AutoupdateArchitecture holds the per-architecture autoupdate entries
type AutoupdateArchitecture struct {
	Bit64 AutoupdateDownload `json:"64bit"`
}

// AutoupdateDownload holds the URL template with a literal $version variable
type AutoupdateDownload struct {
	URL string `json:"url"`
}

// Generator renders the Scoop JSON manifest
type Generator struct {
	hasher *fetch.Hasher
}

// NewGenerator creates a new Scoop generator
func NewGenerator(hasher *fetch.Hasher) *Generator {
	return &Generator{hasher: hasher}
}

// OutputPath returns the manifest path relative to the packaging directory
func (g *Generator) OutputPath() string {
	return filepath.Join("scoop", "lazycelery.json")
}

// Render produces the JSON manifest
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

	windowsURL := fmt.Sprintf("%s/releases/download/v%s/%s-windows-x86_64.zip", repository, version, name)
	sha256 := g.hasher.SHA256(ctx, windowsURL)

	manifest := Manifest{
		Version:     version,
		Description: meta.Description,
		Homepage:    homepage,
		License:     meta.License,
		Architecture: Architecture{
			Bit64: Download{
				URL:  windowsURL,
				Hash: sha256,
			},
		},
		Bin: name + ".exe",
		Checkver: Checkver{
			Github: repository,
		},
		Autoupdate: Autoupdate{
			Architecture: AutoupdateArchitecture{
				Bit64: AutoupdateDownload{
					URL: fmt.Sprintf("%s/releases/download/v$version/%s-windows-x86_64.zip", repository, name),
				},
			},
		},
	}

	data, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return "", err
	}

	return string(data) + "\n", nil
}
