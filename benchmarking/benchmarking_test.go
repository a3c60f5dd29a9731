package benchmarking

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/nathanhack/golay24/golay"
	mat2 "gonum.org/v1/gonum/mat"
)

func ExampleBenchmarkBSC() {
	createMessage := func(trial int) uint16 {
		return uint16(trial) & golay.MessageMask
	}

	encode := func(message uint16) (codeword uint32) {
		return golay.Encode(message)
	}

	channel := func(originalCodeword uint32) (erroredCodeword uint32) {
		//golay corrects any <=3 bit errors so we flip exactly 3 bits per codeword
		return RandomFlipBitCount(originalCodeword, golay.CodewordBits, 3)
	}

	repair := func(originalCodeword, channelInducedCodeword uint32) (fixed uint32) {
		corrected, ok := golay.ECC(channelInducedCodeword)
		if !ok {
			return channelInducedCodeword
		}
		return corrected
	}

	metrics := func(originalMessage uint16, originalCodeword, fixedChannelInducedCodeword uint32) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		codewordErrors := HammingDistance(originalCodeword, fixedChannelInducedCodeword, golay.CodewordBits)
		message := golay.Decode(fixedChannelInducedCodeword)
		messageErrors := HammingDistance(uint32(message), uint32(originalMessage), golay.MessageBits)
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(golay.CodewordBits)
		percentFixedMessageErrors = float64(messageErrors) / float64(golay.MessageBits)
		percentFixedParityErrors = float64(parityErrors) / float64(golay.MessageBits)
		return
	}

	checkpoint := func(updatedStats Stats) {}

	stats := BenchmarkBSC(context.Background(), 4096, 1, createMessage, encode, channel, repair, metrics, checkpoint, false)

	fmt.Println("Bit Error Probability :", stats)
	//Output:
	// Bit Error Probability : {Codeword:0.00(+/-0.00), Message:0.00(+/-0.00), Parity:0.00(+/-0.00)}
}

func TestBenchmarkBPSK(t *testing.T) {
	threads := runtime.NumCPU()
	trials := 500

	createMessage := func(trial int) uint16 {
		return RandomMessage(golay.MessageBits)
	}

	encode := func(message uint16) (codeword mat2.Vector) {
		return BitsToBPSK(golay.Encode(message), golay.CodewordBits)
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		//at 4Eb the hard decision rarely gets more than 3 of 24 bits wrong
		return RandomNoiseBPSK(codeword, 4.0)
	}

	repair := func(originalCodeword, channelInducedCodeword mat2.Vector) (codeword mat2.Vector) {
		//hard decision of >=0 is 1, then golay correction
		received := BPSKToBits(channelInducedCodeword, 0)
		corrected, ok := golay.ECC(received)
		if !ok {
			corrected = received
		}
		return BitsToBPSK(corrected, golay.CodewordBits)
	}

	metrics := func(originalMessage uint16, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		codewordErrors := HammingDistanceBPSK(originalCodeword, fixedChannelInducedCodeword)
		message := golay.Decode(BPSKToBits(fixedChannelInducedCodeword, 0))
		messageErrors := HammingDistance(uint32(message), uint32(originalMessage), golay.MessageBits)
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(golay.CodewordBits)
		percentFixedMessageErrors = float64(messageErrors) / float64(golay.MessageBits)
		percentFixedParityErrors = float64(parityErrors) / float64(golay.MessageBits)
		return
	}

	stats := BenchmarkBPSK(context.Background(), trials, threads, createMessage, encode, channel, repair, metrics, nil, false)

	if stats.ChannelCodewordError.Count != trials {
		t.Fatalf("expected %v trials but found %v", trials, stats.ChannelCodewordError.Count)
	}
	if stats.ChannelMessageError.Mean > 0.05 {
		t.Fatalf("expected a small residual message error rate but found %v", stats.ChannelMessageError.Mean)
	}
}

func TestRandomErrorPattern(t *testing.T) {
	for w := 0; w <= 4; w++ {
		pattern := RandomErrorPattern(golay.CodewordBits, w)
		if popcount(pattern) != w {
			t.Fatalf("expected weight %v but found %v", w, popcount(pattern))
		}
		if pattern > golay.CodewordMask {
			t.Fatalf("expected pattern within %v bits but found %b", golay.CodewordBits, pattern)
		}
	}
}
