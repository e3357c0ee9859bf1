package textextract

import "io"

// TextExtractor handles plain text files. The text is passed through
// unchanged; plain text has no page boundaries, so no markers are added.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
