package generator

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Fguedes90/lazycelery-tools/internal/fetch"
	"github.com/Fguedes90/lazycelery-tools/internal/generator/aur"
	"github.com/Fguedes90/lazycelery-tools/internal/generator/chocolatey"
	"github.com/Fguedes90/lazycelery-tools/internal/generator/homebrew"
	"github.com/Fguedes90/lazycelery-tools/internal/generator/scoop"
	"github.com/Fguedes90/lazycelery-tools/internal/generator/snap"
	"github.com/Fguedes90/lazycelery-tools/internal/metadata"
	"github.com/Fguedes90/lazycelery-tools/internal/models"
	"github.com/Fguedes90/lazycelery-tools/internal/utils"
)

// Renderer produces one package-manager manifest from the project metadata
type Renderer interface {
	// OutputPath returns the manifest path relative to the packaging directory
	OutputPath() string

	// Render produces the manifest contents
	Render(ctx context.Context, meta *metadata.Metadata) (string, error)
}

// Targets returns all manifest renderers in their fixed generation order
func Targets(hasher *fetch.Hasher) []Renderer {
	return []Renderer{
		aur.NewSourceGenerator(hasher),
		aur.NewBinaryGenerator(hasher),
		homebrew.NewGenerator(hasher),
		chocolatey.NewGenerator(),
		scoop.NewGenerator(hasher),
		snap.NewGenerator(),
	}
}

// GenerateAll renders every target and writes it below the packaging
// directory. A failed render or write is logged and the remaining targets
// are still processed; only the count of failures is reported back.
func GenerateAll(ctx context.Context, cfg *models.Config, meta *metadata.Metadata, renderers []Renderer) int {
	failures := 0

	for _, r := range renderers {
		content, err := r.Render(ctx, meta)
		if err != nil {
			logrus.Errorf("Error generating %s: %v", r.OutputPath(), err)
			failures++
			continue
		}

		outPath := filepath.Join(cfg.PackagingDir(), r.OutputPath())
		if err := utils.WriteFile(outPath, []byte(content), 0644); err != nil {
			logrus.Errorf("Error writing %s: %v", r.OutputPath(), err)
			failures++
			continue
		}

		logrus.Infof("Generated: %s", r.OutputPath())
	}

	return failures
}
