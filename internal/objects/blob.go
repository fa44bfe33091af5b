// Package objects implements the content-addressed object store: blobs and
// commits, keyed by a 40-hex SHA-1 fingerprint of their canonical bytes.
package objects

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrObjectMissing is returned when a blob's fingerprint has no backing file.
var ErrObjectMissing = errors.New("object does not exist")

const blobsDirName = "blobs"

// PutBlob stores content under its fingerprint, doing nothing if it already
// exists. The fingerprint is the SHA-1 of the raw bytes — no header is mixed
// in, so two files with identical content always collide on one blob.
func PutBlob(gitletDir string, content []byte) (string, error) {
	hash := Fingerprint(content)
	path := blobPath(gitletDir, hash)
	if fileExists(path) {
		return hash, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating blob directory: %w", err)
	}
	if err := writeFileAtomic(path, content); err != nil {
		return "", fmt.Errorf("writing blob %s: %w", hash, err)
	}
	return hash, nil
}

// GetBlob retrieves the raw bytes stored under fingerprint.
func GetBlob(gitletDir, fingerprint string) ([]byte, error) {
	path := blobPath(gitletDir, fingerprint)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrObjectMissing, fingerprint)
		}
		return nil, fmt.Errorf("reading blob %s: %w", fingerprint, err)
	}
	return content, nil
}

// BlobExists reports whether a blob with the given fingerprint is present.
func BlobExists(gitletDir, fingerprint string) bool {
	return fileExists(blobPath(gitletDir, fingerprint))
}

func blobPath(gitletDir, fingerprint string) string {
	return filepath.Join(gitletDir, blobsDirName, fingerprint)
}
