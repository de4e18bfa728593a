package scanner

import "context"

// ManifestKind represents the format of a generated package manifest
type ManifestKind int

const (
	KindUnknown ManifestKind = iota
	KindPKGBUILD
	KindFormula
	KindNuspec
	KindScoop
	KindSnapcraft
)

// String returns the string representation of ManifestKind
func (k ManifestKind) String() string {
	switch k {
	case KindPKGBUILD:
		return "pkgbuild"
	case KindFormula:
		return "formula"
	case KindNuspec:
		return "nuspec"
	case KindScoop:
		return "scoop"
	case KindSnapcraft:
		return "snapcraft"
	default:
		return "unknown"
	}
}

// ScannedManifest represents a manifest file found during scanning
type ScannedManifest struct {
	Path string
	Kind ManifestKind
	Size int64
}

// Scanner interface for detecting and scanning generated manifests
type Scanner interface {
	// Scan recursively scans a directory for manifest files
	Scan(ctx context.Context, dir string) ([]ScannedManifest, error)

	// DetectKind determines the manifest kind of a file
	DetectKind(path string) ManifestKind
}
