package chocolatey

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/sanitize"
)

// nuspecTemplate is the Chocolatey package specification. Field order
// matters to Chocolatey's validator, so the XML is laid out literally.
const nuspecTemplate = `<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://schemas.microsoft.com/packaging/2015/06/nuspec.xsd">
  <metadata>
    <id>%[1]s</id>
    <version>%[2]s</version>
    <packageSourceUrl>%[3]s/tree/main/packaging/chocolatey</packageSourceUrl>
    <owners>%[4]s</owners>
    <title>%[5]s</title>
    <authors>%[4]s</authors>
    <projectUrl>%[3]s</projectUrl>
    <iconUrl>%[3]s/raw/main/screenshots/workers-view.png</iconUrl>
    <copyright>2024 %[4]s</copyright>
    <licenseUrl>%[3]s/blob/main/LICENSE</licenseUrl>
    <requireLicenseAcceptance>false</requireLicenseAcceptance>
    <projectSourceUrl>%[3]s</projectSourceUrl>
    <docsUrl>%[3]s/blob/main/README.md</docsUrl>
    <bugTrackerUrl>%[3]s/issues</bugTrackerUrl>
    <tags>%[6]s</tags>
    <summary>%[7]s</summary>
    <description>
%[7]s

## Features
- Real-time monitoring of Celery workers and tasks
- Task management (retry, revoke, purge queues)
- Redis broker support with real Celery protocol integration
- Intuitive terminal interface with vim-style navigation
- Cross-platform support (Linux, macOS, Windows)

## Usage
Run ` + "`%[1]s`" + ` in your terminal to start monitoring your Celery infrastructure.
    </description>
    <releaseNotes>%[3]s/releases</releaseNotes>
  </metadata>
  <files>
    <file src="tools\**" target="tools" />
  </files>
</package>
`

// Generator renders the Chocolatey nuspec manifest
type Generator struct{}

// NewGenerator creates a new Chocolatey generator
func NewGenerator() *Generator {
	return &Generator{}
}

// OutputPath returns the manifest path relative to the packaging directory
func (g *Generator) OutputPath() string {
	return filepath.Join("chocolatey", "lazycelery.nuspec")
}

// Render produces the nuspec XML
func (g *Generator) Render(_ context.Context, meta *metadata.Metadata) (string, error) {
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

	author := authorName(meta.Author())
	tags := strings.Join(meta.Keywords, " ")
	title := strings.ToUpper(name[:1]) + name[1:]

	return fmt.Sprintf(nuspecTemplate,
		name, version, repository, author, title, tags, meta.Description), nil
}

// authorName strips a trailing "<email>" part from an author entry
func authorName(author string) string {
	name, _, _ := strings.Cut(author, "<")
	return strings.TrimSpace(name)
}
