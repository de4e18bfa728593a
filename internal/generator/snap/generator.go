package snap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/sanitize"
)

// snapcraftTemplate is the snapcraft.yaml layout. The version scalar stays
// single-quoted so the consistency checker can match it.
const snapcraftTemplate = `name: %[1]s
base: core22
version: '%[2]s'
summary: %[4]s
description: |
  %[4]s

  Features:
  - Real-time monitoring of Celery workers and tasks
  - Task management (retry, revoke, purge queues)
  - Redis broker support with real Celery protocol integration
  - Intuitive terminal interface with vim-style navigation
  - Cross-platform support

grade: stable
confinement: strict

architectures:
  - build-on: amd64
  - build-on: arm64

apps:
  %[1]s:
    command: bin/%[1]s
    plugs:
      - network
      - network-bind
      - home

parts:
  %[1]s:
    plugin: rust
    source: %[3]s.git
    source-tag: v%[2]s
    rust-features: []
    build-packages:
      - build-essential
      - pkg-config
    override-build: |
      craftctl default
      # Strip the binary to reduce size
      strip $CRAFT_PART_INSTALL/bin/%[1]s
`

// Generator renders the snapcraft.yaml manifest
type Generator struct{}

// NewGenerator creates a new Snapcraft generator
func NewGenerator() *Generator {
	return &Generator{}
}

// OutputPath returns the manifest path relative to the packaging directory
func (g *Generator) OutputPath() string {
	return filepath.Join("snap", "snapcraft.yaml")
}

// Render produces the snapcraft YAML
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

	return fmt.Sprintf(snapcraftTemplate, name, version, repository, meta.Description), nil
}
