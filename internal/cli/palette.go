package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swatchgrab/swatchgrab/internal/ase"
	"github.com/swatchgrab/swatchgrab/internal/colour"
	"github.com/swatchgrab/swatchgrab/internal/image"
)

var (
	// Palette command flags
	paletteColours int
	paletteFormat  string
	paletteOutput  string
	palettePreview bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image.

The palette command samples the image's opaque pixels, buckets them by
brightness and averages each bucket into a representative colour. The
resulting palette is ordered darkest to lightest. Images with fewer
distinct samples than the requested count yield a shorter palette, and a
fully transparent image yields an empty one.

Supported image formats: JPEG, PNG, GIF, WebP. The image argument may be
a local file or an HTTP(S) URL.

Examples:
  # Extract 10 colours (default) from an image
  swatchgrab palette wallpaper.jpg

  # Extract 6 colours with terminal previews
  swatchgrab palette --preview --colours 6 wallpaper.png

  # Write an Adobe Swatch Exchange file
  swatchgrab palette --format ase --output palette.ase wallpaper.jpg

  # Extract from a URL and output as JSON
  swatchgrab palette --format json https://example.com/photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteColours, "colours", "c", colour.DefaultColourCount, "number of colours to extract")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "hex", "output format (hex, rgb, json, ase)")
	paletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "", "output file (default: stdout)")
	paletteCmd.Flags().BoolVar(&palettePreview, "preview", false, "show colour previews in terminal")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	if paletteFormat == "ase" && paletteOutput == "" {
		return fmt.Errorf("ase output is binary, use --output to name a file")
	}

	palette, err := extractFromPath(imagePath, paletteColours)
	if err != nil {
		return err
	}

	if paletteFormat == "ase" {
		data := ase.Encode(palette)
		if err := os.WriteFile(paletteOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote ASE file", "path", paletteOutput, "colours", palette.Len(), "bytes", len(data))
		return nil
	}

	output, err := formatPalette(palette, paletteFormat, palettePreview)
	if err != nil {
		return err
	}

	if paletteOutput != "" {
		if err := os.WriteFile(paletteOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote palette", "path", paletteOutput, "colours", palette.Len())
		return nil
	}

	fmt.Print(output)
	return nil
}

// extractFromPath loads an image from a file or URL and extracts a palette.
func extractFromPath(imagePath string, count int) (*colour.Palette, error) {
	logger.Debug("loading image", "path", imagePath)

	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	palette, err := colour.ExtractPalette(img, count)
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette: %w", err)
	}

	logger.Debug("palette extracted", "colours", palette.Len())
	if palette.Len() == 0 {
		logger.Warn("no opaque pixels sampled, palette is empty")
	}
	return palette, nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	showPreview = showPreview && colour.SupportsANSIColours()

	switch format {
	case "hex":
		output := ""
		for _, c := range palette.Colors {
			if showPreview {
				output += colour.FormatColourWithPreview(c, 8) + "\n"
			} else {
				output += c.Hex() + "\n"
			}
		}
		return output, nil
	case "rgb":
		output := ""
		for _, c := range palette.Colors {
			if showPreview {
				output += colour.ColourPreview(c, 8) + "  " + c.String() + "\n"
			} else {
				output += c.String() + "\n"
			}
		}
		return output, nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, ase)", format)
	}
}
