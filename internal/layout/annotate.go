package layout

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	boxColor   = color.RGBA{G: 255, A: 255}
	labelColor = color.RGBA{R: 255, A: 255}
)

const boxThickness = 2

// Annotate returns a copy of src with each detection drawn as a box
// outline and a "label (confidence)" caption above its top-left corner.
func Annotate(src image.Image, detections []Detection) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	for _, det := range detections {
		drawBox(dst, det.Box)
		caption := fmt.Sprintf("%s (%.2f)", det.Label, det.Confidence)
		drawLabel(dst, caption, det.Box.X0, det.Box.Y0-4)
	}

	return dst
}

func drawBox(dst *image.RGBA, b Box) {
	r := image.Rect(b.X0, b.Y0, b.X1, b.Y1).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < boxThickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setIfInside(dst, x, r.Min.Y+t)
			setIfInside(dst, x, r.Max.Y-1-t)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setIfInside(dst, r.Min.X+t, y)
			setIfInside(dst, r.Max.X-1-t, y)
		}
	}
}

func setIfInside(dst *image.RGBA, x, y int) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, boxColor)
	}
}

func drawLabel(dst *image.RGBA, text string, x, y int) {
	face := basicfont.Face7x13
	// Keep the caption on the image when the box touches the top edge.
	if y-face.Ascent < dst.Bounds().Min.Y {
		y = dst.Bounds().Min.Y + face.Ascent
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
