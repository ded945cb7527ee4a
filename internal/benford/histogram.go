// Package benford implements the first-significant-digit extraction used to
// test numeric data against Benford's law, plus the plain-text report format
// the analysis results are stored in.
package benford

import "strings"

// punctuation is the ASCII punctuation set stripped from every token before
// it is tested for being numeric. Stripping (rather than splitting) means
// "3.14" is counted as "314" and "45%" as "45".
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// CountFirstDigits tallies the first significant (non-zero) digit of every
// numeric token across the given page texts. The returned histogram is
// indexed by digit; index 0 stays unused because no first significant digit
// can be zero. Tokens that are all zeros after stripping ("000") have no
// significant digit and are dropped.
//
// This is a pure function: the same pages always yield the same histogram.
func CountFirstDigits(pages []string) [10]int {
	var counts [10]int

	for _, text := range pages {
		for _, word := range strings.Fields(text) {
			word = stripPunctuation(word)
			if !isNumeric(word) {
				continue
			}
			for _, c := range word {
				if c == '0' {
					continue
				}
				counts[c-'0']++
				break
			}
		}
	}

	return counts
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
}

// isNumeric reports whether s is non-empty and consists solely of decimal
// digit characters. No sign, no separators: those were punctuation and are
// already gone.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
