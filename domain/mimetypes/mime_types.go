package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown MIME = "unknown"
	TextCSV MIME = "text/csv"

	// ApplicationXLSX is the OOXML spreadsheet type produced by Excel.
	ApplicationXLSX MIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// applicationCSV is a declared alias some clients use for CSV uploads.
	applicationCSV MIME = "application/csv"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// FromDeclared maps a declared upload content type onto one of the two
// recognized tabular formats. Parameters such as charset are ignored.
func FromDeclared(declared string) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return Unknown, false
	}
	switch MIME(mt) {
	case TextCSV, applicationCSV:
		return TextCSV, true
	case ApplicationXLSX:
		return ApplicationXLSX, true
	default:
		return Unknown, false
	}
}

// Sniff falls back to magic-byte detection for uploads whose declared type
// is missing or foreign. Plain text content is assumed to be CSV since that
// is the only text format the bot accepts.
func Sniff(data []byte) (MIME, bool) {
	detected := mimetype.Detect(data)
	switch {
	case detected.Is(string(ApplicationXLSX)):
		return ApplicationXLSX, true
	case detected.Is(string(TextCSV)), detected.Is("text/plain"):
		return TextCSV, true
	default:
		return Unknown, false
	}
}
