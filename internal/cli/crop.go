package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/swatchgrab/swatchgrab/internal/image"
	"github.com/swatchgrab/swatchgrab/internal/region"
)

var (
	// Crop command flags
	cropRect    string
	cropDisplay string
	cropOutput  string
)

// cropCmd represents the crop command
var cropCmd = &cobra.Command{
	Use:   "crop <image>",
	Short: "Crop a selected region of an image at native resolution",
	Long: `Crop a selected region of an image at native resolution.

The selection rectangle is given in display-space coordinates: the
coordinates of the image as rendered on screen, which may be smaller or
larger than its native size. The --display flag names that rendered size;
swatchgrab scales the selection up to the image's native resolution before
copying pixels. Without --display the selection is taken at native scale.

Selections smaller than 10x10 display units are rejected, and selections
reaching past the image edge are clamped to it.

Examples:
  # Crop a region of an image displayed at native size
  swatchgrab crop --rect 100,50,400,300 photo.png

  # The same image rendered at 640x360 on screen
  swatchgrab crop --rect 100,50,50,50 --display 640x360 photo.png

  # Name the output file
  swatchgrab crop --rect 0,0,200,200 --output detail.png photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runCrop,
}

func init() {
	cropCmd.Flags().StringVarP(&cropRect, "rect", "r", "", "selection rectangle as x,y,w,h in display units (required)")
	cropCmd.Flags().StringVarP(&cropDisplay, "display", "d", "", "displayed size as WxH (default: native size)")
	cropCmd.Flags().StringVarP(&cropOutput, "output", "o", "crop.png", "output image file")
	_ = cropCmd.MarkFlagRequired("rect")
}

// runCrop executes the crop command.
func runCrop(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	sel, err := parseRect(cropRect)
	if err != nil {
		return err
	}

	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	display := region.DisplaySize{W: float64(bounds.Dx()), H: float64(bounds.Dy())}
	if cropDisplay != "" {
		display, err = parseDisplaySize(cropDisplay)
		if err != nil {
			return err
		}
	}
	logger.Debug("cropping", "native", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"display", fmt.Sprintf("%gx%g", display.W, display.H), "selection", cropRect)

	cropped, err := region.Extract(img, sel, display)
	if err != nil {
		if errors.Is(err, region.ErrSelectionTooSmall) {
			return fmt.Errorf("selection too small: width and height must be at least %d display units", region.MinSelectionSize)
		}
		return fmt.Errorf("failed to crop image: %w", err)
	}

	if err := imaging.Save(cropped, cropOutput); err != nil {
		return fmt.Errorf("failed to save cropped image: %w", err)
	}

	logger.Info("wrote crop", "path", cropOutput,
		"width", cropped.Bounds().Dx(), "height", cropped.Bounds().Dy())
	return nil
}

// parseRect parses a selection rectangle in "x,y,w,h" form.
func parseRect(s string) (region.DisplayRect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return region.DisplayRect{}, fmt.Errorf("invalid rectangle %q: expected x,y,w,h", s)
	}

	values := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return region.DisplayRect{}, fmt.Errorf("invalid rectangle %q: %w", s, err)
		}
		values[i] = v
	}

	return region.DisplayRect{X: values[0], Y: values[1], W: values[2], H: values[3]}, nil
}

// parseDisplaySize parses a display size in "WxH" form.
func parseDisplaySize(s string) (region.DisplaySize, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return region.DisplaySize{}, fmt.Errorf("invalid display size %q: expected WxH", s)
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return region.DisplaySize{}, fmt.Errorf("invalid display width in %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return region.DisplaySize{}, fmt.Errorf("invalid display height in %q: %w", s, err)
	}

	if w <= 0 || h <= 0 {
		return region.DisplaySize{}, fmt.Errorf("display size must be positive, got %q", s)
	}
	return region.DisplaySize{W: w, H: h}, nil
}
