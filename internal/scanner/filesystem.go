package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner interface for filesystem scanning
type FileSystemScanner struct{}

// NewFileSystemScanner creates a new filesystem scanner
func NewFileSystemScanner() *FileSystemScanner {
	return &FileSystemScanner{}
}

// Scan recursively scans a directory for generated manifest files
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]ScannedManifest, error) {
	var manifests []ScannedManifest

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Skip directories
		if info.IsDir() {
			return nil
		}

		kind := s.DetectKind(path)
		if kind == KindUnknown {
			return nil
		}

		logrus.Debugf("Found %s manifest: %s", kind, path)

		manifests = append(manifests, ScannedManifest{
			Path: path,
			Kind: kind,
			Size: info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	return manifests, nil
}

// DetectKind determines the manifest kind of a file
func (s *FileSystemScanner) DetectKind(path string) ManifestKind {
	return DetectManifestKind(path)
}
