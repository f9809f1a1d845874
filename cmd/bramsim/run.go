package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sarchlab/bramsim/bram"
	"github.com/sarchlab/bramsim/memfile"
	"github.com/sarchlab/bramsim/sim"
	"github.com/sarchlab/bramsim/simulation"
)

var runFlags struct {
	wordWidth  int
	depth      int
	mode       string
	policy     string
	initFile   string
	initFormat string
	stimulus   string
	output     string
	freqMHz    float64
	verbose    bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a stimulus script through a configured memory block.",
	RunE:  runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runFlags.wordWidth, "word-width", 32,
		"number of bits per word")
	runCmd.Flags().IntVar(&runFlags.depth, "depth", 1024,
		"number of addressable words")
	runCmd.Flags().StringVar(&runFlags.mode, "performance-mode",
		"LOW_LATENCY", "read latency mode, LOW_LATENCY or HIGH_PERFORMANCE")
	runCmd.Flags().StringVar(&runFlags.policy, "address-policy", "strict",
		"out-of-range address policy, strict or mask")
	runCmd.Flags().StringVar(&runFlags.initFile, "init-file", "",
		"memory initialization image")
	runCmd.Flags().StringVar(&runFlags.initFormat, "init-format", "hex",
		"initialization image format, hex or bin")
	runCmd.Flags().StringVar(&runFlags.stimulus, "stimulus", "",
		"stimulus script, one cycle per line")
	runCmd.Flags().StringVar(&runFlags.output, "output",
		os.Getenv("BRAMSIM_OUTPUT"),
		"name of the trace database, without the .sqlite3 suffix")
	runCmd.Flags().Float64Var(&runFlags.freqMHz, "freq-mhz", 1000,
		"clock frequency in MHz")
	runCmd.Flags().BoolVarP(&runFlags.verbose, "verbose", "v", false,
		"enable debug logging")

	_ = runCmd.MarkFlagRequired("stimulus")
}

func runSimulation(_ *cobra.Command, _ []string) error {
	if runFlags.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	mode, err := bram.PerformanceModeFromString(runFlags.mode)
	if err != nil {
		return err
	}

	policy, err := addressPolicyFromString(runFlags.policy)
	if err != nil {
		return err
	}

	var contents []uint64
	if runFlags.initFile != "" {
		contents, err = memfile.LoadFile(
			runFlags.initFile, runFlags.initFormat,
			runFlags.wordWidth, runFlags.depth)
		if err != nil {
			return err
		}

		logrus.WithField("file", runFlags.initFile).
			Debug("loaded initial contents")
	}

	stimuli, err := loadStimulusFile(runFlags.stimulus)
	if err != nil {
		return err
	}

	s := simulation.MakeBuilder().
		WithOutputFileName(runFlags.output).
		Build()

	if runFlags.verbose {
		s.GetEngine().AcceptHook(
			sim.NewEventLogger(log.New(os.Stderr, "", 0)))
	}

	comp, err := bram.MakeCompBuilder().
		WithEngine(s.GetEngine()).
		WithFreq(sim.Freq(runFlags.freqMHz) * sim.MHz).
		WithRecorder(s.GetDataRecorder()).
		WithWordWidth(runFlags.wordWidth).
		WithDepth(runFlags.depth).
		WithPerformanceMode(mode).
		WithAddressPolicy(policy).
		WithInitialContents(contents).
		Build("MemBlock")
	if err != nil {
		return err
	}

	s.RegisterComponent(comp)

	for _, st := range stimuli {
		comp.AppendStimulus(st)
	}

	logrus.WithFields(logrus.Fields{
		"cycles": len(stimuli),
		"mode":   mode,
	}).Debug("starting simulation")

	err = s.GetEngine().Run()
	if err != nil {
		return err
	}

	s.Terminate()

	fmt.Printf("cycles applied: %d\n", comp.TickCount())
	fmt.Printf("final read: 0x%X\n", comp.LastRead())

	return nil
}

func addressPolicyFromString(s string) (bram.AddressPolicy, error) {
	switch s {
	case "strict":
		return bram.StrictAddress, nil
	case "mask":
		return bram.MaskAddress, nil
	}
	return 0, fmt.Errorf("unknown address policy %q", s)
}
