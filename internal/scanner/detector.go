package scanner

import (
	"path/filepath"
	"strings"
)

// DetectManifestKind determines the manifest kind from the file name.
// Manifests are plain text, so detection goes by naming convention rather
// than content.
func DetectManifestKind(path string) ManifestKind {
	base := filepath.Base(path)

	if strings.HasPrefix(base, "PKGBUILD") {
		return KindPKGBUILD
	}

	switch filepath.Ext(base) {
	case ".rb":
		return KindFormula
	case ".nuspec":
		return KindNuspec
	case ".json":
		return KindScoop
	case ".yaml", ".yml":
		return KindSnapcraft
	}

	return KindUnknown
}
