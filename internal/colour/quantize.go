package colour

import (
	"fmt"
	"image"
	"slices"
	"sort"
)

// DefaultColourCount is the number of colours requested when the caller does
// not specify one.
const DefaultColourCount = 10

// Quantize buckets candidate colours by brightness into at most count
// representative averaged colours.
//
// The candidates are sorted ascending by channel sum and partitioned into
// count contiguous buckets of floor(len/count) colours each; every non-empty
// bucket contributes the arithmetic mean of its channels. Trailing candidates
// beyond count*bucketSize are deliberately excluded - changing that boundary
// policy would change the numeric output of existing palettes. When fewer
// candidates than buckets exist, each candidate gets its own bucket and the
// rest stay empty, so the returned palette may be shorter than count.
//
// A single sort-and-average pass, no iterative refinement: output is fully
// deterministic for a fixed input sequence.
func Quantize(colors []RGB, count int) (*Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if len(colors) == 0 {
		return NewPalette(nil), nil
	}

	sorted := slices.Clone(colors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Brightness() < sorted[j].Brightness()
	})

	bucketSize := len(sorted) / count
	if bucketSize == 0 {
		bucketSize = 1
	}

	result := make([]RGB, 0, count)
	for b := 0; b < count; b++ {
		start := b * bucketSize
		if start >= len(sorted) {
			break
		}
		end := start + bucketSize

		var rSum, gSum, bSum int
		for _, c := range sorted[start:end] {
			rSum += int(c.R)
			gSum += int(c.G)
			bSum += int(c.B)
		}
		n := end - start
		result = append(result, RGB{
			R: uint8(rSum / n),
			G: uint8(gSum / n),
			B: uint8(bSum / n),
		})
	}

	return NewPalette(result), nil
}

// ExtractPalette samples an image and quantizes the result into a palette of
// at most count colours, ordered brightness-ascending.
func ExtractPalette(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	return Quantize(Sample(img), count)
}
