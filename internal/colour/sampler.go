package colour

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	// maxSamples bounds how many pixels are inspected regardless of image
	// size, keeping sampling cost constant for interactive use.
	maxSamples = 2000

	// alphaThreshold is the opacity cutoff: only pixels whose alpha channel
	// exceeds this value contribute to the palette.
	alphaThreshold = 128
)

// Sample subsamples an image into a list of candidate colours for
// quantization. Near-transparent pixels are filtered out, so a fully
// transparent image yields an empty (but valid) result.
func Sample(img image.Image) []RGB {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Bounds().Min != (image.Point{}) {
		nrgba = imaging.Clone(img)
	}
	return SamplePixels(nrgba)
}

// SamplePixels walks the buffer at a fixed stride of pixel indices in
// row-major order, collecting every sampled pixel whose alpha exceeds the
// opacity threshold. At most ~maxSamples pixels are inspected.
func SamplePixels(img *image.NRGBA) []RGB {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	total := width * height
	if total == 0 {
		return nil
	}

	step := total / maxSamples
	if step < 1 {
		step = 1
	}

	colors := make([]RGB, 0, total/step+1)
	for i := 0; i < total; i += step {
		x := i % width
		y := i / width
		off := y*img.Stride + x*4
		if img.Pix[off+3] > alphaThreshold {
			colors = append(colors, RGB{
				R: img.Pix[off],
				G: img.Pix[off+1],
				B: img.Pix[off+2],
			})
		}
	}
	return colors
}
