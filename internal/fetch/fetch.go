package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Fguedes90/lazycelery-tools/internal/utils"
)

// PlaceholderSHA256 is the sentinel written in place of a real digest when
// the release artifact could not be fetched
const PlaceholderSHA256 = "PLACEHOLDER_SHA256"

// defaultTimeout bounds a single artifact download
const defaultTimeout = 60 * time.Second

// Hasher computes SHA-256 digests of remote release artifacts. When disabled
// it hands out the placeholder literal without touching the network.
type Hasher struct {
	enabled bool
	client  *http.Client
}

// NewHasher creates a new artifact hasher
func NewHasher(enabled bool) *Hasher {
	return &Hasher{
		enabled: enabled,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Enabled reports whether remote hashing is turned on
func (h *Hasher) Enabled() bool {
	return h.enabled
}

// SHA256 downloads the artifact at url and returns the hex-encoded SHA-256
// digest of its contents. Any failure degrades to the placeholder literal
// with a warning; a missing release artifact must not fail generation.
func (h *Hasher) SHA256(ctx context.Context, url string) string {
	if !h.enabled {
		return PlaceholderSHA256
	}

	sum, err := h.fetch(ctx, url)
	if err != nil {
		logrus.Warnf("Could not calculate hash for %s: %v", url, err)
		return PlaceholderSHA256
	}

	return sum
}

func (h *Hasher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return utils.SHA256Reader(resp.Body)
}
