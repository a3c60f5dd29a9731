package bsc

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/golay24/benchmarking"
	"github.com/nathanhack/golay24/cmd/internal/tools"
	"github.com/nathanhack/golay24/golay"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	Verbose          bool
)

var SimRun = func(cmd *cobra.Command, args []string) {
	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadResults(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	//if data is nil then we create it
	if data == nil {
		data = &tools.SimulationStats{
			TypeInfo: typeInfo(),
			ECCInfo:  eccInfo(),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	//in either case lets validate it
	if data.TypeInfo != typeInfo() {
		fmt.Printf("results loaded do not match the same type expected %v but found %v\n", typeInfo(), data.TypeInfo)
		return
	}
	if data.ECCInfo != eccInfo() {
		fmt.Printf("results loaded do not match the ECC\n")
		return
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	runSimulation(ctx, data, args[0])

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

func typeInfo() string {
	return "BSC:github.com/nathanhack/golay24/golay"
}

// eccInfo fingerprints the code by its parity check matrix so results
// files can't silently mix codes
func eccInfo() string {
	return tools.Md5Sum(golay.NewLinearBlock().H)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runSimulation(ctx context.Context, data *tools.SimulationStats, outputFilename string) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThreads := int(Threads)
	if numberOfThreads == 0 {
		numberOfThreads = runtime.NumCPU()
	}

	trialsPerIter := numberOfThreads * 10
	bar := pb.StartNew(int(Trials) * len(ErrorProbability))
trialLoops:
	for t := 0; t <= int(Trials); t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range ErrorProbability {
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := tools.SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}
			data.Stats[p] = RunBSC(ctx, p, min(t, int(Trials)), numberOfThreads, data.Stats[p], checkpoint, false)
			bar.Add(trialsPerIter)
		}
	}
	bar.Finish()
}

// RunBSC runs trials of random messages through a binary symmetric
// channel with the given crossover probability and syndrome table
// correction on the far side.
func RunBSC(ctx context.Context,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) uint16 {
		return benchmarking.RandomMessage(golay.MessageBits)
	}

	encode := func(message uint16) (codeword uint32) {
		return golay.Encode(message)
	}

	channel := func(originalCodeword uint32) (erroredCodeword uint32) {
		return benchmarking.RandomFlip(originalCodeword, golay.CodewordBits, crossoverProbability)
	}

	correction := func(originalCodeword, channelInducedCodeword uint32) (fixedChannelInducedCodeword uint32) {
		fixed, ok := golay.ECC(channelInducedCodeword)
		if !ok {
			//detected but uncorrectable, pass the received word through
			return channelInducedCodeword
		}
		return fixed
	}

	metrics := func(originalMessage uint16, originalCodeword, fixedChannelInducedCodeword uint32) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
		codewordErrors := benchmarking.HammingDistance(originalCodeword, fixedChannelInducedCodeword, golay.CodewordBits)
		message := golay.Decode(fixedChannelInducedCodeword)
		messageErrors := benchmarking.HammingDistance(uint32(message), uint32(originalMessage), golay.MessageBits)
		parityErrors := codewordErrors - messageErrors

		percentFixedCodewordErrors = float64(codewordErrors) / float64(golay.CodewordBits)
		percentFixedMessageErrors = float64(messageErrors) / float64(golay.MessageBits)
		percentFixedParityErrors = float64(parityErrors) / float64(golay.MessageBits)
		return
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, correction, metrics, checkpoints, previousStats, showProgress)
}
