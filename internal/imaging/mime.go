package imaging

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMIME sniffs the MIME type of data, without parameters
func DetectMIME(data []byte) string {
	mt := mimetype.Detect(data).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return mt
}

// IsImage reports whether data sniffs as an image
func IsImage(data []byte) bool {
	return strings.HasPrefix(DetectMIME(data), "image/")
}

// Extension returns the conventional extension for data without the dot,
// or "" when unknown
func Extension(data []byte) string {
	return strings.TrimPrefix(mimetype.Detect(data).Extension(), ".")
}
