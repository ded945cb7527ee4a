// Package blob stores documents and result artifacts in an S3-compatible
// object store and builds the content-addressed keys they live under.
package blob

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// keyNamespace prefixes every key so the app can share a bucket.
const keyNamespace = "benfordapp"

const (
	documentSuffix = ".pdf"
	resultSuffix   = ".txt"
)

// DocumentKey builds the storage key for an uploaded document:
// benfordapp/<username>/<stem>-<uuid>.pdf. The random component keeps
// concurrent submissions with identical filenames from colliding.
func DocumentKey(username, filename string) string {
	base := path.Base(filename)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return fmt.Sprintf("%s/%s/%s-%s%s", keyNamespace, username, stem, uuid.New(), documentSuffix)
}

// ResultKey derives the result artifact key from a document key by swapping
// the .pdf suffix for .txt. ok is false when the key has no .pdf suffix and
// therefore no derivable result key.
func ResultKey(documentKey string) (string, bool) {
	if !strings.HasSuffix(documentKey, documentSuffix) {
		return "", false
	}
	return strings.TrimSuffix(documentKey, documentSuffix) + resultSuffix, true
}

// IsDocumentKey reports whether key looks like an uploaded document.
func IsDocumentKey(key string) bool {
	return strings.HasSuffix(key, documentSuffix)
}
