package version

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// dockerfileRustRe matches the toolchain version in a FROM rust:X line
var dockerfileRustRe = regexp.MustCompile(`FROM rust:([0-9.]+)`)

// cargoVersions mirrors the version fields of the Cargo.toml [package] table
type cargoVersions struct {
	Package struct {
		Version     string `toml:"version"`
		RustVersion string `toml:"rust-version"`
	} `toml:"package"`
}

// miseConfig mirrors the [tools] table of a .mise.toml file
type miseConfig struct {
	Tools map[string]interface{} `toml:"tools"`
}

// CargoVersions extracts the project version and the minimum toolchain
// version from the canonical config. Either value may be empty when the
// file or the field is absent.
func (c *Checker) CargoVersions() (version, rustVersion string, err error) {
	data, err := os.ReadFile(c.cfg.CargoPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", nil
		}
		return "", "", err
	}

	var cargo cargoVersions
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return "", "", fmt.Errorf("failed to parse Cargo.toml: %w", err)
	}

	return cargo.Package.Version, cargo.Package.RustVersion, nil
}

// MiseRustVersion extracts the pinned toolchain version from .mise.toml.
// Only a plain string pin is recognized.
func (c *Checker) MiseRustVersion() (string, error) {
	data, err := os.ReadFile(c.cfg.MisePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var mise miseConfig
	if err := toml.Unmarshal(data, &mise); err != nil {
		return "", fmt.Errorf("failed to parse .mise.toml: %w", err)
	}

	rust, _ := mise.Tools["rust"].(string)
	return rust, nil
}

// DockerfileRustVersion extracts the base image toolchain version from the
// container build recipe
func (c *Checker) DockerfileRustVersion() (string, error) {
	data, err := os.ReadFile(c.cfg.DockerfilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	match := dockerfileRustRe.FindSubmatch(data)
	if match == nil {
		return "", nil
	}
	return string(match[1]), nil
}
