// Swatchgrab - palette extraction and region cropping for images
//
// Swatchgrab extracts colour palettes from images, exports them as Adobe
// Swatch Exchange files and crops selected regions at native resolution.
package main

import (
	"github.com/swatchgrab/swatchgrab/internal/cli"
)

func main() {
	cli.Execute()
}
