package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "regxml",
	Short: "SMPTE metadata dictionary toolkit",
	Long: `regxml loads SMPTE metadata dictionaries (ST 2001-1 interchange documents or
compiled snapshots), validates them and resolves KLV keys against them.

Dictionaries named in regxml.yaml (or REGXML_DICTIONARIES) are used whenever a
command accepts dictionaries and none are given on the command line.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Malformed dictionary, snapshot or KLV input
  12 - Duplicate definition or scheme
  13 - Definition not found`,
	SilenceUsage: true,
}

var rootFlags struct {
	verbose bool
	dir     string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.dir, "dir", ".", "Directory holding regxml.yaml and .env")
}
