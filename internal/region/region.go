// Package region maps display-space selection rectangles onto an image's
// native resolution and extracts the selected pixels.
//
// Display space (the on-screen rendered size) and source space (the decoded
// image's native resolution) are kept as distinct types so a rectangle cannot
// be used for extraction without going through the scale conversion.
package region

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// MinSelectionSize is the minimum display-space width and height of a
// selection. Smaller selections are treated as accidental clicks rather than
// intentional drags.
const MinSelectionSize = 10

var (
	// ErrSelectionTooSmall is returned for selections below MinSelectionSize.
	// Callers should treat the selection as still in progress, not as a
	// failure to report.
	ErrSelectionTooSmall = errors.New("selection below minimum size")

	// ErrInvalidDisplaySize is returned when the display dimensions are not
	// positive, making the display-to-source scale undefined.
	ErrInvalidDisplaySize = errors.New("display size must be positive")
)

// DisplayRect is a selection rectangle in display-space coordinates.
type DisplayRect struct {
	X, Y, W, H float64
}

// DisplaySize is the on-screen rendered size of an image.
type DisplaySize struct {
	W, H float64
}

// SourceRect is a rectangle in source-space pixel coordinates.
type SourceRect struct {
	X, Y, W, H int
}

// ToSource maps a display-space rectangle onto an image of native size
// srcW x srcH rendered at the given display size. Each mapped value is
// truncated, which can land one pixel short but keeps the mapping consistent.
func (r DisplayRect) ToSource(srcW, srcH int, ds DisplaySize) SourceRect {
	scaleX := float64(srcW) / ds.W
	scaleY := float64(srcH) / ds.H
	return SourceRect{
		X: int(r.X * scaleX),
		Y: int(r.Y * scaleY),
		W: int(r.W * scaleX),
		H: int(r.H * scaleY),
	}
}

// clamp restricts the rectangle to a width x height buffer. Selections that
// overshoot the image edge after scaling are pulled back into range instead
// of failing, to keep interactive cropping forgiving.
func (r SourceRect) clamp(width, height int) SourceRect {
	if r.X < 0 {
		r.W += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.H += r.Y
		r.Y = 0
	}
	if r.X > width {
		r.X = width
	}
	if r.Y > height {
		r.Y = height
	}
	if r.X+r.W > width {
		r.W = width - r.X
	}
	if r.Y+r.H > height {
		r.H = height - r.Y
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Extract copies the pixels under a display-space selection out of an image
// rendered at the given display size. The returned buffer is independent of
// the source: pixels are copied one-for-one with no resampling.
func Extract(img image.Image, sel DisplayRect, ds DisplaySize) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if ds.W <= 0 || ds.H <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidDisplaySize, ds.W, ds.H)
	}
	if sel.W < MinSelectionSize || sel.H < MinSelectionSize {
		return nil, fmt.Errorf("%w: %gx%g display units (minimum %dx%d)",
			ErrSelectionTooSmall, sel.W, sel.H, MinSelectionSize, MinSelectionSize)
	}

	bounds := img.Bounds()
	src := sel.ToSource(bounds.Dx(), bounds.Dy(), ds).clamp(bounds.Dx(), bounds.Dy())

	rect := image.Rect(
		bounds.Min.X+src.X,
		bounds.Min.Y+src.Y,
		bounds.Min.X+src.X+src.W,
		bounds.Min.Y+src.Y+src.H,
	)
	return imaging.Crop(img, rect), nil
}
