// Package layout holds the page-image layout-detection collaborator
// interface and a renderer that draws detected regions onto page images.
// It is a visual annotation aid only and shares no data with the outline
// core.
package layout

import (
	"context"
	"image"
)

// Box is a pixel-space bounding box with inclusive top-left and exclusive
// bottom-right corners.
type Box struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Detection is one region proposed by a layout model: its box, the class
// label (e.g. "title", "table", "figure") and the model's confidence.
type Detection struct {
	Box        Box     `json:"box"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Detector is the layout-model inference interface. Inference runs in an
// external subsystem; this service only consumes its output.
type Detector interface {
	Detect(ctx context.Context, img image.Image) ([]Detection, error)
}
