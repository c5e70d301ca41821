package mp3parser

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

// Text encodings of an ID3v2 text frame.
const (
	encodingISO88591 = 0
	encodingUTF16BOM = 1
	encodingUTF16BE  = 2
	encodingUTF8     = 3
)

const yearLength = 4

// readTextFrame decodes the body of a T??? frame. The result is empty
// when the frame carries no usable text.
func readTextFrame(body []byte) string {
	if len(body) <= 1 {
		return ""
	}

	var text string
	switch body[0] {
	case encodingISO88591, encodingUTF8:
		// UTF-8 is mapped byte by byte as well.
		text = latin1(body[1:])
	case encodingUTF16BOM, encodingUTF16BE:
		text = utf16Text(body[1:])
	}
	return cleanText(text)
}

// latin1 maps b up to its first NUL one byte per character.
func latin1(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

func latin1Text(b []byte) string {
	return cleanText(latin1(b))
}

// utf16Text decodes UTF-16 code units up to the first zero unit. A
// leading FF FE selects little endian, FE FF or no BOM big endian.
func utf16Text(b []byte) string {
	order := xunicode.BigEndian
	if len(b) >= 2 {
		switch {
		case b[0] == 0xFF && b[1] == 0xFE:
			order = xunicode.LittleEndian
			b = b[2:]
		case b[0] == 0xFE && b[1] == 0xFF:
			b = b[2:]
		}
	}

	n := len(b) &^ 1
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			n = i
			break
		}
	}

	out, err := xunicode.UTF16(order, xunicode.IgnoreBOM).NewDecoder().Bytes(b[:n])
	if err != nil {
		return ""
	}
	return string(out)
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// truncateYear keeps the leading year of values like "2023-05-01".
func truncateYear(s string) string {
	r := []rune(s)
	if len(r) <= yearLength {
		return s
	}
	return cleanText(string(r[:yearLength]))
}
