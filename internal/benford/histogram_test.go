package benford

import "testing"

func TestCountFirstDigits_MixedPageText(t *testing.T) {
	t.Parallel()

	counts := CountFirstDigits([]string{"Revenue 1023 and 88 units, total 1023.50"})

	// "1023" and "1023.50" (stripped to "102350") both lead with 1;
	// "88" leads with 8. Everything else is non-numeric.
	want := [10]int{}
	want[1] = 2
	want[8] = 1
	if counts != want {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

func TestCountFirstDigits_ZeroTokens(t *testing.T) {
	t.Parallel()

	counts := CountFirstDigits([]string{"000 0.00 007"})

	// "000" and "0.00" (stripped to "000") are all zeros and count
	// nowhere; "007" skips its leading zeros and counts as 7.
	want := [10]int{}
	want[7] = 1
	if counts != want {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

func TestCountFirstDigits_NonNumericTokens(t *testing.T) {
	t.Parallel()

	counts := CountFirstDigits([]string{"abc123 45%"})

	// "abc123" contains letters and is rejected; "45%" strips to "45".
	want := [10]int{}
	want[4] = 1
	if counts != want {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

func TestCountFirstDigits_AccumulatesAcrossPages(t *testing.T) {
	t.Parallel()

	counts := CountFirstDigits([]string{"12 34", "56 78", "91"})

	want := [10]int{}
	want[1] = 1
	want[3] = 1
	want[5] = 1
	want[7] = 1
	want[9] = 1
	if counts != want {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

func TestCountFirstDigits_EmptyAndPunctuationOnly(t *testing.T) {
	t.Parallel()

	counts := CountFirstDigits([]string{"", "   ", "--- ... ?!"})

	if counts != [10]int{} {
		t.Fatalf("expected empty histogram, got %v", counts)
	}
}

func TestCountFirstDigits_Deterministic(t *testing.T) {
	t.Parallel()

	pages := []string{"719 23 23 0.5 five 600"}
	a := CountFirstDigits(pages)
	b := CountFirstDigits(pages)
	if a != b {
		t.Fatalf("same input produced different histograms: %v vs %v", a, b)
	}
}
