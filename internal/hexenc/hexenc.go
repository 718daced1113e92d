// Package hexenc renders binary data as embeddable C-array text. The layout
// is fixed by the files that include the generated headers and must not
// change: lowercase "0xNN" tokens joined by ", ", sixteen bytes per line,
// no separator after the last token and no trailing newline.
package hexenc

import (
	"bufio"
	"io"
	"strings"
)

const bytesPerLine = 16

const hexDigits = "0123456789abcdef"

// Encode returns the embeddable hex-array form of data. Empty input
// produces an empty string.
func Encode(data []byte) string {
	var sb strings.Builder
	// Token plus separator is 6 bytes, plus one newline per line.
	sb.Grow(len(data)*6 + len(data)/bytesPerLine)
	if err := EncodeTo(&sb, data); err != nil {
		// strings.Builder never returns a write error.
		panic(err)
	}
	return sb.String()
}

// EncodeTo streams the embeddable hex-array form of data to w.
func EncodeTo(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	for i, b := range data {
		bw.WriteString("0x")
		bw.WriteByte(hexDigits[b>>4])
		bw.WriteByte(hexDigits[b&0x0f])
		if i == len(data)-1 {
			break
		}
		bw.WriteString(", ")
		// Line breaks sit after the separator so a token is never split.
		if (i+1)%bytesPerLine == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
