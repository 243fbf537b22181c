// Package encoding decodes bank CSV exports of unknown charset to UTF-8.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader detects the encoding of a CSV statement export and returns a
// reader that decodes the content to UTF-8. Thai banks commonly publish CSVs
// in TIS-620/Windows-874, which is also the fallback when detection is
// inconclusive.
//
// Detection order:
//  1. Check for BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Validate if the content is valid UTF-8 and return as-is
//  3. Thai code-range check (Windows-874)
//  4. Heuristic detection via chardet
//  5. Fallback to Windows-874
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	// Peek enough bytes for BOM detection and charset heuristics.
	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	// 1. Check for BOM.
	if bytes.HasPrefix(buf, bomUTF8) {
		// Discard the 3-byte UTF-8 BOM and return the rest as-is.
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if bytes.HasPrefix(buf, bomUTF16LE) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}

	if bytes.HasPrefix(buf, bomUTF16BE) {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), nil
	}

	// 2. If the content is valid UTF-8, return as-is.
	if utf8.Valid(buf) {
		return br, nil
	}

	// 3. Thai single-byte content. chardet carries no TIS-620 model, so
	// check the Thai code ranges directly before consulting it.
	if looksLikeThai(buf) {
		return transform.NewReader(br, charmap.Windows874.NewDecoder()), nil
	}

	// 4. Heuristic detection via chardet.
	detector := chardet.NewTextDetector()

	result, detectErr := detector.DetectBest(buf)
	if detectErr == nil {
		switch result.Charset {
		case "UTF-8":
			return br, nil
		case "TIS-620", "ISO-8859-11", "windows-874":
			return transform.NewReader(br, charmap.Windows874.NewDecoder()), nil
		case "ISO-8859-1", "windows-1252":
			return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
		}
	}

	// 5. Fallback to Windows-874.
	return transform.NewReader(br, charmap.Windows874.NewDecoder()), nil
}

// looksLikeThai reports whether every non-ASCII byte falls inside the
// Windows-874 Thai blocks (0xA1-0xDA consonants/vowels, 0xDF-0xFB signs and
// digits). Latin text in a single-byte charset almost always carries bytes
// outside these ranges.
func looksLikeThai(buf []byte) bool {
	high := 0

	for _, b := range buf {
		if b < 0x80 {
			continue
		}

		high++

		if (b < 0xA1 || b > 0xDA) && (b < 0xDF || b > 0xFB) {
			return false
		}
	}

	return high > 0
}
