package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectManifestKind(t *testing.T) {
	cases := map[string]ManifestKind{
		"packaging/aur/PKGBUILD":            KindPKGBUILD,
		"packaging/aur/PKGBUILD-bin":        KindPKGBUILD,
		"packaging/homebrew/lazycelery.rb":  KindFormula,
		"packaging/chocolatey/app.nuspec":   KindNuspec,
		"packaging/scoop/lazycelery.json":   KindScoop,
		"packaging/snap/snapcraft.yaml":     KindSnapcraft,
		"packaging/snap/snapcraft.yml":      KindSnapcraft,
		"packaging/chocolatey/install.ps1":  KindUnknown,
		"packaging/README.md":               KindUnknown,
	}

	for path, want := range cases {
		if got := DetectManifestKind(path); got != want {
			t.Errorf("DetectManifestKind(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"aur/PKGBUILD":        "pkgver=1.2.3\n",
		"scoop/app.json":      "{}\n",
		"snap/snapcraft.yaml": "name: app\n",
		"notes.txt":           "not a manifest\n",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	sc := NewFileSystemScanner()
	manifests, err := sc.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(manifests) != 3 {
		t.Fatalf("Scan found %d manifests, want 3", len(manifests))
	}

	kinds := make(map[ManifestKind]bool)
	for _, m := range manifests {
		kinds[m.Kind] = true
	}
	for _, want := range []ManifestKind{KindPKGBUILD, KindScoop, KindSnapcraft} {
		if !kinds[want] {
			t.Errorf("Scan did not find a %s manifest", want)
		}
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := NewFileSystemScanner()
	if _, err := sc.Scan(ctx, t.TempDir()); err == nil {
		t.Error("Scan succeeded with cancelled context")
	}
}
