package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "golay24",
	Short: "Extended binary Golay [24,12,8] encoder and decoder",
	Long: `Tools around the extended binary Golay code: encode 12 bit messages
into 24 bit codewords, correct up to 3 bit errors (detecting 4 bit errors),
and run channel simulations against the code.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
