// Package cli provides the command-line interface for swatchgrab.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/swatchgrab/swatchgrab/internal/version"
)

var (
	// logger is the shared command logger, configured from the persistent
	// --verbose/--quiet flags before any command runs.
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "swatchgrab",
		Short: "Grab colour palettes and crops from images",
		Long: `Swatchgrab extracts representative colour palettes from images and exports
them as Adobe Swatch Exchange (.ase) files, alongside cropping selected
regions of an image at its native resolution.

Palettes are built from a brightness-bucketed sample of the image's opaque
pixels, ordered darkest to lightest.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd)
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(cropCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(bundleCmd)
}

// newLogger builds the command logger from the persistent flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	if quiet {
		level = hclog.Error
	}
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatchgrab",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
