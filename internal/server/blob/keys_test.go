package blob

import (
	"strings"
	"testing"
)

func TestDocumentKey_Shape(t *testing.T) {
	t.Parallel()

	key := DocumentKey("alice", "report.pdf")

	if !strings.HasPrefix(key, "benfordapp/alice/report-") {
		t.Fatalf("unexpected key prefix: %q", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("expected .pdf suffix: %q", key)
	}
}

func TestDocumentKey_UniquePerCall(t *testing.T) {
	t.Parallel()

	a := DocumentKey("alice", "report.pdf")
	b := DocumentKey("alice", "report.pdf")
	if a == b {
		t.Fatalf("keys for identical submissions must differ: %q", a)
	}
}

func TestDocumentKey_StripsDirectoryComponents(t *testing.T) {
	t.Parallel()

	key := DocumentKey("alice", "some/dir/report.pdf")
	if !strings.HasPrefix(key, "benfordapp/alice/report-") {
		t.Fatalf("directory components must not leak into the key: %q", key)
	}
}

func TestResultKey(t *testing.T) {
	t.Parallel()

	got, ok := ResultKey("benfordapp/alice/report-123.pdf")
	if !ok || got != "benfordapp/alice/report-123.txt" {
		t.Fatalf("ResultKey = (%q, %v)", got, ok)
	}

	if _, ok := ResultKey("benfordapp/alice/report-123.docx"); ok {
		t.Fatalf("non-pdf key must have no derivable result key")
	}
}

func TestIsDocumentKey(t *testing.T) {
	t.Parallel()

	if !IsDocumentKey("a/b/c.pdf") {
		t.Fatalf("expected .pdf key to be a document key")
	}
	if IsDocumentKey("a/b/c.txt") {
		t.Fatalf("result artifacts are not document keys")
	}
}
