package engine

import (
	"bytes"
	"net/http"
	"strings"
	"unicode/utf8"

	cdom "comprehend/internal/services/comprehend/domain"
)

// MaxDocumentBytes bounds raw document input
const MaxDocumentBytes = 10 << 20

// Sniff identifies the format of a raw document. ok is false for formats the service does not read
func Sniff(b []byte) (cdom.DocumentType, bool) {
	if bytes.HasPrefix(b, []byte("II*\x00")) || bytes.HasPrefix(b, []byte("MM\x00*")) {
		return cdom.DocumentTypeImage, true
	}
	ct := http.DetectContentType(b)
	switch {
	case ct == "application/pdf":
		return cdom.DocumentTypeNativePdf, true
	case ct == "image/png" || ct == "image/jpeg":
		return cdom.DocumentTypeImage, true
	case ct == "application/zip" && bytes.Contains(b, []byte("word/")):
		return cdom.DocumentTypeMsWord, true
	case strings.HasPrefix(ct, "text/plain") && utf8.Valid(b):
		return cdom.DocumentTypePlainText, true
	}
	return "", false
}
