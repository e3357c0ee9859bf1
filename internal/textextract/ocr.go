//go:build ocr

package textextract

import (
	"fmt"
	"io"

	"github.com/otiai10/gosseract/v2"
)

// ImageExtractor runs OCR over a scanned page image via Tesseract. Built
// only with the "ocr" tag; requires the tesseract library at build and
// run time. A single image is treated as one page.
type ImageExtractor struct {
	// Language is the Tesseract language code ("eng" when empty).
	// Multiple languages can be "+"-separated, e.g. "eng+fra".
	Language string
}

func (e *ImageExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.Language != "" {
		if err := client.SetLanguage(e.Language); err != nil {
			return "", fmt.Errorf("set ocr language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set ocr image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}

	return pageMarker(1, 1) + "\n" + text + "\n", nil
}
