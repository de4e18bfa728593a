package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Fguedes90/lazycelery-tools/internal/fetch"
	"github.com/Fguedes90/lazycelery-tools/internal/generator"
	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/models"
	"github.com/Fguedes90/lazycelery-tools/internal/sanitize"
)

// NewGenerateCmd creates the root command for generate-packages
func NewGenerateCmd() *cobra.Command {
	var cfg models.Config

	cmd := &cobra.Command{
		Use:   "generate-packages",
		Short: "Generate package manager manifests from Cargo.toml metadata",
		Long: `Generate-packages renders package manager manifests from the metadata
declared in Cargo.toml, reducing duplication and ensuring consistency
across package managers.

Generated manifests:
  - AUR PKGBUILD (source and binary)
  - Homebrew formula
  - Chocolatey nuspec
  - Scoop manifest
  - Snapcraft YAML`,
		SilenceUsage:     true,
		PersistentPreRun: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), &cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.CalculateHashes, "calculate-hashes", false, "Compute SHA256 hashes from release artifacts")
	cmd.Flags().StringVar(&cfg.ProjectRoot, "project-root", ".", "Directory containing Cargo.toml and the packaging tree")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	return cmd
}

func setupLogging(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func runGenerate(ctx context.Context, cfg *models.Config) error {
	meta, err := metadata.Load(cfg.CargoPath())
	if err != nil {
		return err
	}

	if err := validateMetadata(meta); err != nil {
		return &models.ReleaseError{
			Type: models.ErrMetadata,
			Path: cfg.CargoPath(),
			Err:  fmt.Errorf("invalid metadata: %w", err),
		}
	}

	logrus.Infof("Generating packages for %s v%s", meta.Name, meta.Version)

	if cfg.CalculateHashes {
		logrus.Info("Calculating SHA256 hashes from release artifacts...")
	}

	hasher := fetch.NewHasher(cfg.CalculateHashes)
	failures := generator.GenerateAll(ctx, cfg, meta, generator.Targets(hasher))

	if failures > 0 {
		logrus.Warnf("Generation finished with %d failed targets", failures)
	} else {
		logrus.Info("All package files generated successfully!")
	}

	if !cfg.CalculateHashes {
		logrus.Info("Note: Use --calculate-hashes to compute real SHA256 hashes from release artifacts.")
	}

	return nil
}

// validateMetadata checks the critical fields before any target renders, so
// a bad canonical config fails the whole run instead of every target
func validateMetadata(meta *metadata.Metadata) error {
	if _, err := sanitize.Version(meta.Version); err != nil {
		return err
	}
	if _, err := sanitize.URL(meta.Repository); err != nil {
		return err
	}
	if _, err := sanitize.URL(meta.Homepage); err != nil {
		return err
	}
	if _, err := sanitize.Name(meta.Name); err != nil {
		return err
	}
	return nil
}
