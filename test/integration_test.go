package test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEnd builds both binaries and runs them against a fixture project
func TestEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping end-to-end tests in short mode")
	}

	projectRoot, err := getProjectRoot()
	if err != nil {
		t.Fatalf("Failed to find project root: %v", err)
	}

	binDir := t.TempDir()
	generateBin := filepath.Join(binDir, "generate-packages")
	validateBin := filepath.Join(binDir, "validate-versions")

	t.Log("Building binaries...")
	if err := buildBinary(projectRoot, "./cmd/generate-packages", generateBin); err != nil {
		t.Fatalf("Failed to build generate-packages: %v", err)
	}
	if err := buildBinary(projectRoot, "./cmd/validate-versions", validateBin); err != nil {
		t.Fatalf("Failed to build validate-versions: %v", err)
	}

	fixtureRoot := t.TempDir()
	writeFixtureProject(t, fixtureRoot)

	// Generation must succeed and write all six manifests
	out, err := runCommand(generateBin, "--project-root", fixtureRoot)
	if err != nil {
		t.Fatalf("generate-packages failed: %v\n%s", err, out)
	}

	manifests := []string{
		"packaging/aur/PKGBUILD",
		"packaging/aur/PKGBUILD-bin",
		"packaging/homebrew/lazycelery.rb",
		"packaging/chocolatey/lazycelery.nuspec",
		"packaging/scoop/lazycelery.json",
		"packaging/snap/snapcraft.yaml",
	}
	for _, rel := range manifests {
		if _, err := os.Stat(filepath.Join(fixtureRoot, rel)); err != nil {
			t.Errorf("missing manifest after generation: %s", rel)
		}
	}

	// Without --calculate-hashes every hash field carries the placeholder
	pkgbuild, err := os.ReadFile(filepath.Join(fixtureRoot, "packaging/aur/PKGBUILD"))
	if err != nil {
		t.Fatalf("reading PKGBUILD: %v", err)
	}
	if !strings.Contains(string(pkgbuild), "PLACEHOLDER_SHA256") {
		t.Error("PKGBUILD does not contain the placeholder hash")
	}

	// A consistent tree validates cleanly (warnings only)
	out, err = runCommand(validateBin, "--project-root", fixtureRoot)
	if err != nil {
		t.Errorf("validate-versions failed on consistent project: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Placeholder SHA256") {
		t.Errorf("expected placeholder warnings in output:\n%s", out)
	}

	// Break the toolchain pin and check the non-zero exit
	misePath := filepath.Join(fixtureRoot, ".mise.toml")
	if err := os.WriteFile(misePath, []byte("[tools]\nrust = \"1.76.0\"\n"), 0644); err != nil {
		t.Fatalf("writing .mise.toml: %v", err)
	}
	if _, err := runCommand(validateBin, "--project-root", fixtureRoot); err == nil {
		t.Error("validate-versions exited 0 on a toolchain mismatch")
	}

	// --fix adopts the pinned toolchain and converges
	out, err = runCommand(validateBin, "--fix", "--project-root", fixtureRoot)
	if err != nil {
		t.Errorf("validate-versions --fix failed: %v\n%s", err, out)
	}
	cargo, err := os.ReadFile(filepath.Join(fixtureRoot, "Cargo.toml"))
	if err != nil {
		t.Fatalf("reading Cargo.toml: %v", err)
	}
	if !strings.Contains(string(cargo), `rust-version = "1.76.0"`) {
		t.Error("--fix did not rewrite the Cargo.toml toolchain version")
	}
}

func writeFixtureProject(t *testing.T, root string) {
	t.Helper()

	files := map[string]string{
		"Cargo.toml": `[package]
name = "lazycelery"
version = "1.2.3"
description = "Terminal UI for monitoring Celery"
authors = ["Jane Doe <jane@example.com>"]
license = "MIT"
repository = "https://github.com/Fguedes90/lazycelery"
homepage = "https://github.com/Fguedes90/lazycelery"
rust-version = "1.75.0"
`,
		".mise.toml": "[tools]\nrust = \"1.75.0\"\n",
		"Dockerfile": "FROM rust:1.75.0 AS builder\nFROM debian:bookworm\n",
	}

	for rel, content := range files {
		if err := os.WriteFile(filepath.Join(root, rel), []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

func buildBinary(projectRoot, pkg, out string) error {
	cmd := exec.Command("go", "build", "-o", out, pkg)
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s", err, output)
	}
	return nil
}

func runCommand(bin string, args ...string) (string, error) {
	cmd := exec.Command(bin, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}
