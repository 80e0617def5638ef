package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swatchgrab/swatchgrab/internal/ase"
	"github.com/swatchgrab/swatchgrab/internal/colour"
)

var showPreview bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file.ase>",
	Short: "Print the colours in an Adobe Swatch Exchange file",
	Long: `Print the colours in an Adobe Swatch Exchange file.

Reads an .ase file and lists each swatch with its name and hex value.
Only RGB swatches are supported; group markers are ignored.

Examples:
  swatchgrab show palette.ase
  swatchgrab show --preview palette.ase`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPreview, "preview", false, "show colour previews in terminal")
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read swatch file: %w", err)
	}

	palette, names, err := ase.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode swatch file: %w", err)
	}

	logger.Debug("decoded swatch file", "path", args[0], "colours", palette.Len())

	preview := showPreview && colour.SupportsANSIColours()
	for i, c := range palette.Colors {
		if preview {
			fmt.Printf("%s  %-16s %s\n", colour.ColourPreview(c, 8), names[i], c.Hex())
		} else {
			fmt.Printf("%-16s %s\n", names[i], c.Hex())
		}
	}
	return nil
}
