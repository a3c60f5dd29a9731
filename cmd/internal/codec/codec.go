package codec

import (
	"fmt"
	"strconv"

	"github.com/nathanhack/golay24/golay"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Verbose bool

func setup() {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func parseWord(arg string) (uint32, error) {
	w, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %v: %v", arg, err)
	}
	return uint32(w), nil
}

var EncodeRun = func(cmd *cobra.Command, args []string) {
	message, err := parseWord(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	codeword := golay.Encode(uint16(message))
	fmt.Printf("message:  %012b\n", message&golay.MessageMask)
	fmt.Printf("codeword: %024b\n", codeword)
}

var EccRun = func(cmd *cobra.Command, args []string) {
	setup()

	received, err := parseWord(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	logrus.Debugf("syndrome: %012b", golay.Syndrome(received))

	corrected, ok := golay.ECC(received)
	if !ok {
		fmt.Printf("received:  %024b\n", received&golay.CodewordMask)
		fmt.Println("detected an uncorrectable error (4 bit errors are detected but not correctable)")
		return
	}

	fmt.Printf("received:  %024b\n", received&golay.CodewordMask)
	fmt.Printf("corrected: %024b\n", corrected)
	fmt.Printf("message:   %012b\n", golay.Decode(corrected))
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	setup()

	codeword, err := parseWord(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	if golay.Syndrome(codeword) != 0 {
		logrus.Warnf("the input is not a valid codeword, run ecc first for error correction")
	}

	fmt.Printf("message: %012b\n", golay.Decode(codeword))
}
