package version

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/Fguedes90/lazycelery-tools/internal/fetch"
	"github.com/Fguedes90/lazycelery-tools/internal/generator"
	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/models"
	"github.com/Fguedes90/lazycelery-tools/internal/sanitize"
)

var (
	cargoRustVersionRe = regexp.MustCompile(`rust-version = "[^"]*"`)
	dockerfileFromRe   = regexp.MustCompile(`FROM rust:[0-9.]+`)
)

// FixToolchain rewrites the toolchain version in the canonical config and
// the container recipe to the target version. The tool-pinning file is
// treated as authoritative and left untouched. Returns whether any file
// changed.
func (c *Checker) FixToolchain(target string) bool {
	fixedAny := false

	if fixFile(c.cfg.CargoPath(), cargoRustVersionRe, fmt.Sprintf("rust-version = %q", target)) {
		logrus.Infof("Fixed Rust version in Cargo.toml to %s", target)
		fixedAny = true
	}

	if fixFile(c.cfg.DockerfilePath(), dockerfileFromRe, "FROM rust:"+target) {
		logrus.Infof("Fixed Rust version in Dockerfile to %s", target)
		fixedAny = true
	}

	return fixedAny
}

// fixFile applies a targeted substitution in place, reporting whether the
// file contents changed
func fixFile(path string, pattern *regexp.Regexp, replacement string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	updated := pattern.ReplaceAll(data, []byte(replacement))
	if string(updated) == string(data) {
		return false
	}

	if err := os.WriteFile(path, updated, 0644); err != nil {
		logrus.Errorf("Failed to rewrite %s: %v", path, err)
		return false
	}

	return true
}

// RegeneratePackages re-runs the manifest generation driver so every
// generated file picks up the canonical project version. Hashes are left
// as-is (placeholders) since regeneration is an offline fix.
func (c *Checker) RegeneratePackages(ctx context.Context) error {
	meta, err := metadata.Load(c.cfg.CargoPath())
	if err != nil {
		return err
	}

	if _, err := sanitize.Version(meta.Version); err != nil {
		return err
	}

	hasher := fetch.NewHasher(false)
	if failures := generator.GenerateAll(ctx, c.cfg, meta, generator.Targets(hasher)); failures > 0 {
		return &models.ReleaseError{
			Type: models.ErrManifestGen,
			Err:  fmt.Errorf("%d package files failed to regenerate", failures),
		}
	}

	logrus.Info("Regenerated package files with correct versions")
	return nil
}
