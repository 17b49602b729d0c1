// Package storage materializes inline-encoded image payloads to the local
// upload directory and serves their public paths.
package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
)

// dataURLPattern matches a self-describing base64 image payload, e.g.
// data:image/png;base64,iVBORw0...
var dataURLPattern = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,(.+)$`)

var extensionByMIME = map[string]string{
	"png":     ".png",
	"jpeg":    ".jpg",
	"jpg":     ".jpg",
	"gif":     ".gif",
	"webp":    ".webp",
	"svg+xml": ".svg",
	"avif":    ".avif",
}

// ImageStore writes decoded image payloads under a product-scoped directory
// and maps them to public URL paths.
type ImageStore struct {
	// rootDir is the filesystem directory uploads are written to.
	rootDir string
	// publicBase is the URL path prefix the files are served under.
	publicBase string
}

// NewImageStore creates an image store rooted at rootDir, serving files under
// publicBase (e.g. "/uploads").
func NewImageStore(rootDir, publicBase string) *ImageStore {
	return &ImageStore{
		rootDir:    rootDir,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

// RootDir returns the filesystem directory uploads are written to.
func (s *ImageStore) RootDir() string {
	return s.rootDir
}

// IsInlinePayload reports whether url carries an inline base64 image rather
// than a remote reference.
func IsInlinePayload(url string) bool {
	return dataURLPattern.MatchString(url)
}

// Materialize resolves an image URL for persistence. Remote references pass
// through untouched. Inline payloads are decoded and written to
// <rootDir>/products/<productID>/<uuid><ext>, and the returned URL is the
// public path of the written file. Undecodable payloads return
// domain.ErrInvalidPayload.
func (s *ImageStore) Materialize(productID uint, url string) (string, error) {
	match := dataURLPattern.FindStringSubmatch(url)
	if match == nil {
		if strings.HasPrefix(url, "data:") {
			return "", fmt.Errorf("%w: unsupported inline payload", domain.ErrInvalidPayload)
		}
		return url, nil
	}

	mime, payload := match[1], match[2]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: undecodable image payload: %v", domain.ErrInvalidPayload, err)
	}

	ext, ok := extensionByMIME[strings.ToLower(mime)]
	if !ok {
		ext = ".bin"
	}

	dir := filepath.Join(s.rootDir, "products", fmt.Sprintf("%d", productID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// UUID filenames keep concurrent uploads for the same product from
	// colliding.
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return fmt.Sprintf("%s/products/%d/%s", s.publicBase, productID, name), nil
}

// Remove deletes the local file behind a previously materialized public URL.
// Remote URLs and missing files are ignored; the image row is the source of
// truth and cleanup is best effort.
func (s *ImageStore) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, s.publicBase+"/")
	if !ok {
		return nil
	}

	path := filepath.Join(s.rootDir, filepath.FromSlash(rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
