//go:build !ocr

package textextract

import (
	"errors"
	"io"
)

// ErrOCRNotEnabled is returned when image extraction is requested but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it; this
// requires Tesseract to be installed (apt-get install tesseract-ocr).
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ImageExtractor is the stub used when the "ocr" build tag is not set.
type ImageExtractor struct {
	Language string
}

func (e *ImageExtractor) Extract(r io.Reader, filename string) (string, error) {
	return "", ErrOCRNotEnabled
}
