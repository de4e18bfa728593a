package version

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Fguedes90/lazycelery-tools/internal/fetch"
	"github.com/Fguedes90/lazycelery-tools/internal/generator"
	"github.com/Fguedes90/lazycelery-tools/internal/models"
	"github.com/Fguedes90/lazycelery-tools/internal/scanner"
)

// versionPatterns maps each manifest kind to the pattern that extracts the
// embedded project version from it
var versionPatterns = map[scanner.ManifestKind]*regexp.Regexp{
	scanner.KindPKGBUILD:  regexp.MustCompile(`pkgver=([0-9.]+)`),
	scanner.KindFormula:   regexp.MustCompile(`url ".*v([0-9.]+)\.tar\.gz"`),
	scanner.KindNuspec:    regexp.MustCompile(`<version>([^<]+)</version>`),
	scanner.KindScoop:     regexp.MustCompile(`"version":\s*"([^"]+)"`),
	scanner.KindSnapcraft: regexp.MustCompile(`version:\s*'([^']+)'`),
}

// Checker validates version consistency across project files
type Checker struct {
	cfg     *models.Config
	scanner scanner.Scanner
}

// NewChecker creates a new consistency checker
func NewChecker(cfg *models.Config) *Checker {
	return &Checker{
		cfg:     cfg,
		scanner: scanner.NewFileSystemScanner(),
	}
}

// Validate runs the full collect-and-compare pass and returns a fresh report
func (c *Checker) Validate(ctx context.Context) *Report {
	logrus.Info("Validating version consistency across project...")

	report := NewReport()

	c.validateRustVersions(report)
	c.validatePackageVersions(report)
	c.checkPlaceholderHashes(ctx, report)

	return report
}

// validateRustVersions compares the toolchain version across the canonical
// config, the tool-pinning file and the container recipe. A missing
// Dockerfile entry is tolerated as a warning; the other two are required.
func (c *Checker) validateRustVersions(report *Report) {
	cargoRust, err := c.cargoRustVersion()
	if err != nil {
		report.Errorf("Could not read rust-version from Cargo.toml: %v", err)
	}

	miseRust, err := c.MiseRustVersion()
	if err != nil {
		report.Errorf("Could not read Rust version from .mise.toml: %v", err)
	}

	dockerRust, err := c.DockerfileRustVersion()
	if err != nil {
		report.Errorf("Could not read Rust version from Dockerfile: %v", err)
	}

	if cargoRust == "" {
		report.Errorf("No rust-version found in Cargo.toml")
	}
	if miseRust == "" {
		report.Errorf("No Rust version found in .mise.toml")
	}
	if dockerRust == "" {
		report.Warnf("No Rust version found in Dockerfile")
	}

	if cargoRust != "" && miseRust != "" && cargoRust != miseRust {
		report.Errorf("Rust version mismatch: Cargo.toml=%s, .mise.toml=%s", cargoRust, miseRust)
	}
	if cargoRust != "" && dockerRust != "" && cargoRust != dockerRust {
		report.Errorf("Rust version mismatch: Cargo.toml=%s, Dockerfile=%s", cargoRust, dockerRust)
	}
	if miseRust != "" && dockerRust != "" && miseRust != dockerRust {
		report.Errorf("Rust version mismatch: .mise.toml=%s, Dockerfile=%s", miseRust, dockerRust)
	}
}

func (c *Checker) cargoRustVersion() (string, error) {
	_, rustVersion, err := c.CargoVersions()
	return rustVersion, err
}

// validatePackageVersions compares every generated manifest's embedded
// version against the canonical project version
func (c *Checker) validatePackageVersions(report *Report) {
	cargoVersion, _, err := c.CargoVersions()
	if err != nil {
		report.Errorf("Could not read Cargo.toml: %v", err)
		return
	}
	if cargoVersion == "" {
		report.Errorf("Could not determine version from Cargo.toml")
		return
	}

	packagingDir := c.cfg.PackagingDir()
	if _, err := os.Stat(packagingDir); os.IsNotExist(err) {
		report.Warnf("No packaging directory found")
		return
	}

	for _, target := range generator.Targets(fetch.NewHasher(false)) {
		relPath := filepath.Join("packaging", target.OutputPath())
		fullPath := filepath.Join(packagingDir, target.OutputPath())

		data, err := os.ReadFile(fullPath)
		if err != nil {
			report.Warnf("Package file not found: %s", relPath)
			continue
		}

		pattern, ok := versionPatterns[scanner.DetectManifestKind(fullPath)]
		if !ok {
			report.Warnf("No version pattern for %s", relPath)
			continue
		}

		match := pattern.FindStringSubmatch(string(data))
		if match == nil {
			report.Warnf("Could not find version in %s", relPath)
			continue
		}

		if match[1] != cargoVersion {
			report.Errorf("Version mismatch in %s: found=%s, expected=%s", relPath, match[1], cargoVersion)
		}
	}
}

// checkPlaceholderHashes scans the packaging tree for sentinel hashes left
// over from a run without remote hashing. Placeholders are expected during
// development, so they only warrant warnings.
func (c *Checker) checkPlaceholderHashes(ctx context.Context, report *Report) {
	packagingDir := c.cfg.PackagingDir()
	if _, err := os.Stat(packagingDir); os.IsNotExist(err) {
		return
	}

	manifests, err := c.scanner.Scan(ctx, packagingDir)
	if err != nil {
		report.Warnf("Could not scan packaging directory: %v", err)
		return
	}

	for _, manifest := range manifests {
		data, err := os.ReadFile(manifest.Path)
		if err != nil {
			continue
		}

		if strings.Contains(string(data), fetch.PlaceholderSHA256) {
			rel, err := filepath.Rel(c.cfg.ProjectRoot, manifest.Path)
			if err != nil {
				rel = manifest.Path
			}
			report.Warnf("Placeholder SHA256 found in %s", rel)
		}
	}
}
