package cli

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/swatchgrab/swatchgrab/internal/colour"
	"github.com/swatchgrab/swatchgrab/internal/export"
	"github.com/swatchgrab/swatchgrab/internal/image"
	"github.com/swatchgrab/swatchgrab/internal/region"
)

var (
	// Bundle command flags
	bundleColours int
	bundleOutput  string
	bundleRect    string
	bundleDisplay string
)

// bundleCmd represents the bundle command
var bundleCmd = &cobra.Command{
	Use:   "bundle <image>",
	Short: "Export a palette bundle as a zip archive",
	Long: `Export a palette bundle as a zip archive.

The bundle contains the extracted palette as an Adobe Swatch Exchange
file (palette.ase), a JSON description (palette.json) and a plain hex
listing (palette.txt). With --rect, a PNG crop of the selected region
(crop.png) is included as well.

Examples:
  # Bundle the default 10-colour palette
  swatchgrab bundle wallpaper.jpg

  # Bundle 6 colours plus a cropped region
  swatchgrab bundle -c 6 --rect 100,50,200,200 wallpaper.jpg

  # Name the archive
  swatchgrab bundle --output theme.zip wallpaper.png`,
	Args: cobra.ExactArgs(1),
	RunE: runBundle,
}

func init() {
	bundleCmd.Flags().IntVarP(&bundleColours, "colours", "c", colour.DefaultColourCount, "number of colours to extract")
	bundleCmd.Flags().StringVarP(&bundleOutput, "output", "o", "swatch-bundle.zip", "output archive file")
	bundleCmd.Flags().StringVar(&bundleRect, "rect", "", "optional crop selection as x,y,w,h in display units")
	bundleCmd.Flags().StringVar(&bundleDisplay, "display", "", "displayed size as WxH (default: native size)")
}

// runBundle executes the bundle command.
func runBundle(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	palette, err := colour.ExtractPalette(img, bundleColours)
	if err != nil {
		return fmt.Errorf("failed to extract palette: %w", err)
	}
	logger.Debug("palette extracted", "colours", palette.Len())

	entries, err := export.PaletteEntries(palette)
	if err != nil {
		return err
	}

	if bundleRect != "" {
		sel, err := parseRect(bundleRect)
		if err != nil {
			return err
		}

		bounds := img.Bounds()
		display := region.DisplaySize{W: float64(bounds.Dx()), H: float64(bounds.Dy())}
		if bundleDisplay != "" {
			display, err = parseDisplaySize(bundleDisplay)
			if err != nil {
				return err
			}
		}

		cropped, err := region.Extract(img, sel, display)
		if err != nil {
			return fmt.Errorf("failed to crop image: %w", err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, cropped); err != nil {
			return fmt.Errorf("failed to encode crop: %w", err)
		}
		entries = append(entries, export.Entry{Name: "crop.png", Data: buf.Bytes()})
		logger.Debug("crop added to bundle",
			"width", cropped.Bounds().Dx(), "height", cropped.Bounds().Dy())
	}

	out, err := os.Create(bundleOutput)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	if err := export.WriteBundle(out, entries); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	logger.Info("wrote bundle", "path", bundleOutput, "entries", len(entries))
	return nil
}
