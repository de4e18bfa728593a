package sanitize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Fguedes90/lazycelery-tools/internal/models"
)

// DefaultCharset is the safe default for package names, versions and URLs
const DefaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.-_/:"

// NameCharset is the restricted charset for package names
const NameCharset = "abcdefghijklmnopqrstuvwxyz0123456789-"

// MaxNameLength limits package names embedded into manifests
const MaxNameLength = 50

var (
	// Semantic version: x.y.z with optional pre-release suffix
	versionRe = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9\-\.]+)?$`)

	// http(s) scheme followed by a hostname and optional path
	urlRe = regexp.MustCompile(`^https?://[a-zA-Z0-9\-\.]+(/.*)?$`)
)

// Sanitize checks a value against a maximum length and a character whitelist.
// It returns the value unchanged when it is clean, so callers can embed the
// result directly into generated scripts.
func Sanitize(value string, maxLength int, allowed string) (string, error) {
	if len(value) > maxLength {
		return "", &models.ReleaseError{
			Type: models.ErrInvalidInput,
			Err:  fmt.Errorf("input exceeds maximum length of %d", maxLength),
		}
	}

	for _, r := range value {
		if !strings.ContainsRune(allowed, r) {
			return "", &models.ReleaseError{
				Type: models.ErrInvalidInput,
				Err:  fmt.Errorf("invalid character %q in input", r),
			}
		}
	}

	return value, nil
}

// Name validates a package name for embedding into manifests
func Name(name string) (string, error) {
	return Sanitize(name, MaxNameLength, NameCharset)
}

// Version validates semantic version format
func Version(version string) (string, error) {
	if !versionRe.MatchString(version) {
		return "", &models.ReleaseError{
			Type: models.ErrInvalidInput,
			Err:  fmt.Errorf("invalid version format: %s", version),
		}
	}
	return version, nil
}

// URL validates URL format
func URL(url string) (string, error) {
	if !urlRe.MatchString(url) {
		return "", &models.ReleaseError{
			Type: models.ErrInvalidInput,
			Err:  fmt.Errorf("invalid URL format: %s", url),
		}
	}
	return url, nil
}
