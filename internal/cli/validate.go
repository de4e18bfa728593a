package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Fguedes90/lazycelery-tools/internal/models"
	"github.com/Fguedes90/lazycelery-tools/internal/version"
)

// NewValidateCmd creates the root command for validate-versions
func NewValidateCmd() *cobra.Command {
	var cfg models.Config

	cmd := &cobra.Command{
		Use:   "validate-versions",
		Short: "Validate version consistency across project files",
		Long: `Validate-versions cross-checks the version strings embedded in the
generated package manifests and the toolchain versions pinned in
Cargo.toml, .mise.toml and the Dockerfile, preventing version drift
between configuration files.`,
		SilenceUsage:     true,
		PersistentPreRun: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), &cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "Attempt to fix version inconsistencies")
	cmd.Flags().StringVar(&cfg.ProjectRoot, "project-root", ".", "Directory containing Cargo.toml and the packaging tree")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	return cmd
}

func runValidate(ctx context.Context, cfg *models.Config) error {
	checker := version.NewChecker(cfg)

	report := checker.Validate(ctx)

	if cfg.Fix && !report.OK() {
		logrus.Info("Attempting to fix version inconsistencies...")

		// The tool-pinning file is the authoritative toolchain source
		miseRust, err := checker.MiseRustVersion()
		if err == nil && miseRust != "" {
			checker.FixToolchain(miseRust)
		}

		if err := checker.RegeneratePackages(ctx); err != nil {
			logrus.Errorf("Failed to regenerate packages: %v", err)
		}

		logrus.Info("Re-validating after fixes...")
		report = checker.Validate(ctx)
	}

	printReport(report)

	if !report.OK() {
		return fmt.Errorf("version validation failed with %d errors", len(report.Errors))
	}

	return nil
}

func printReport(report *version.Report) {
	for _, e := range report.Errors {
		logrus.Error(e)
	}
	for _, w := range report.Warnings {
		logrus.Warn(w)
	}

	switch {
	case len(report.Errors) == 0 && len(report.Warnings) == 0:
		logrus.Info("All version checks passed!")
	case len(report.Errors) == 0:
		logrus.Info("No critical errors found (warnings only)")
	}
}
