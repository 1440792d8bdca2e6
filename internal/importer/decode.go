package importer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names the character encoding of an export file.
type Encoding string

const (
	// EncodingAuto sniffs a byte-order mark, then falls back to UTF-8 when the
	// bytes are valid UTF-8 and Windows-1252 otherwise.
	EncodingAuto        Encoding = "auto"
	EncodingUTF8        Encoding = "utf-8"
	EncodingUTF16LE     Encoding = "utf-16le"
	EncodingUTF16BE     Encoding = "utf-16be"
	EncodingWindows1252 Encoding = "windows-1252"
)

// Encodings lists every supported Encoding.
var Encodings = []Encoding{EncodingAuto, EncodingUTF8, EncodingUTF16LE, EncodingUTF16BE, EncodingWindows1252}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Valid reports whether e is a supported encoding name.
func (e Encoding) Valid() bool {
	for _, known := range Encodings {
		if e == known {
			return true
		}
	}
	return false
}

func (e Encoding) decoder() (encoding.Encoding, error) {
	switch e {
	case EncodingUTF8:
		return unicode.UTF8BOM, nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", e)
	}
}

// sniff picks a concrete encoding for data.
func sniff(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return EncodingUTF8
	case bytes.HasPrefix(data, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return EncodingUTF16BE
	case utf8.Valid(data):
		return EncodingUTF8
	default:
		return EncodingWindows1252
	}
}

// Decode converts export bytes to text. A leading byte-order mark is removed.
//
// Precondition: enc is one of Encodings.
// Postcondition: returns the decoded text, or an error for an unsupported
// encoding or undecodable bytes.
func Decode(data []byte, enc Encoding) (string, error) {
	if enc == EncodingAuto {
		enc = sniff(data)
	}
	e, err := enc.decoder()
	if err != nil {
		return "", err
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", enc, err)
	}
	return string(out), nil
}
