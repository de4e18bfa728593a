package models

import "path/filepath"

// Config contains the shared run configuration for both tools
type Config struct {
	// ProjectRoot is the directory holding Cargo.toml, .mise.toml,
	// Dockerfile and the packaging/ tree
	ProjectRoot string

	// Hashing
	CalculateHashes bool

	// Checker options
	Fix bool
}

// CargoPath returns the path to the canonical config file
func (c *Config) CargoPath() string {
	return filepath.Join(c.ProjectRoot, "Cargo.toml")
}

// MisePath returns the path to the tool-pinning file
func (c *Config) MisePath() string {
	return filepath.Join(c.ProjectRoot, ".mise.toml")
}

// DockerfilePath returns the path to the container build recipe
func (c *Config) DockerfilePath() string {
	return filepath.Join(c.ProjectRoot, "Dockerfile")
}

// PackagingDir returns the directory that generated manifests are written to
func (c *Config) PackagingDir() string {
	return filepath.Join(c.ProjectRoot, "packaging")
}
