package benford

import (
	"bytes"
	"fmt"
	"strings"
)

// FormatReport serializes the page count and digit histogram into the
// human-readable layout stored as the job's result artifact:
//
//	**RESULTS**
//	<pageCount> pages
//	<digit> <count>       (one line per digit, 0 through 9)
func FormatReport(pageCount int, counts [10]int) []byte {
	var b bytes.Buffer
	b.WriteString("**RESULTS**\n")
	fmt.Fprintf(&b, "%d pages\n", pageCount)
	for digit, count := range counts {
		fmt.Fprintf(&b, "%d %d\n", digit, count)
	}
	return b.Bytes()
}

// FirstLine returns the first line of an artifact without its trailing
// newline. Error artifacts carry a one-line diagnostic, so this is what
// gets surfaced to the caller. Empty input yields "".
func FirstLine(data []byte) string {
	s := string(data)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
