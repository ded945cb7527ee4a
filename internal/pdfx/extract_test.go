package pdfx

import "testing"

func TestPages_RejectsNonPDFBytes(t *testing.T) {
	t.Parallel()

	e := NewReader()
	if _, err := e.Pages([]byte("this is not a pdf")); err == nil {
		t.Fatalf("expected error for non-PDF input")
	}
}

func TestPages_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	e := NewReader()
	if _, err := e.Pages(nil); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestPages_RejectsTruncatedHeader(t *testing.T) {
	t.Parallel()

	// A valid magic prefix with nothing behind it must fail, not panic.
	e := NewReader()
	if _, err := e.Pages([]byte("%PDF-1.7\n")); err == nil {
		t.Fatalf("expected error for truncated file")
	}
}
