package cmd

import (
	"github.com/nathanhack/golay24/cmd/internal/codec"
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode MESSAGE",
	Aliases: []string{"e"},
	Short:   "Encodes a 12 bit message into a 24 bit codeword",
	Long: `Encodes a 12 bit message into a 24 bit codeword. The message may be
given in binary (0b...), hex (0x...), or decimal; only the low 12 bits are used.`,
	Args: cobra.ExactArgs(1),
	Run:  codec.EncodeRun,
}

// eccCmd represents the ecc command
var eccCmd = &cobra.Command{
	Use:   "ecc RECEIVED",
	Short: "Corrects up to 3 bit errors in a received 24 bit word",
	Long: `Corrects up to 3 bit errors in a received 24 bit word and extracts the
message. A 4 bit error is detected and reported without correction.`,
	Args: cobra.ExactArgs(1),
	Run:  codec.EccRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode CODEWORD",
	Aliases: []string{"d"},
	Short:   "Extracts the 12 bit message from a 24 bit codeword",
	Long: `Extracts the 12 bit message from the systematic positions of a 24 bit
codeword. The codeword is expected to be valid (see the ecc command).`,
	Args: cobra.ExactArgs(1),
	Run:  codec.DecodeRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(eccCmd)
	rootCmd.AddCommand(decodeCmd)

	eccCmd.Flags().BoolVarP(&codec.Verbose, "verbose", "v", false, "enable verbose info")
	decodeCmd.Flags().BoolVarP(&codec.Verbose, "verbose", "v", false, "enable verbose info")
}
