package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/bramsim/bram"
)

// parseStimulus reads a stimulus script. Each non-empty line describes one
// cycle: "W <addr> <data>" writes, "R <addr>" reads. Numbers accept the 0x
// and 0b prefixes. '#' starts a comment.
func parseStimulus(r io.Reader) ([]bram.Stimulus, error) {
	var stimuli []bram.Stimulus

	lineNum := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		st, err := parseStimulusLine(fields)
		if err != nil {
			return nil, fmt.Errorf("stimulus line %d: %w", lineNum, err)
		}

		stimuli = append(stimuli, st)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return stimuli, nil
}

func parseStimulusLine(fields []string) (bram.Stimulus, error) {
	switch strings.ToUpper(fields[0]) {
	case "W":
		if len(fields) != 3 {
			return bram.Stimulus{},
				fmt.Errorf("W takes an address and a data word")
		}

		addr, err := strconv.ParseUint(fields[1], 0, 64)
		if err != nil {
			return bram.Stimulus{},
				fmt.Errorf("bad address %q", fields[1])
		}

		data, err := strconv.ParseUint(fields[2], 0, 64)
		if err != nil {
			return bram.Stimulus{},
				fmt.Errorf("bad data word %q", fields[2])
		}

		return bram.Stimulus{
			Address:     addr,
			WriteData:   data,
			WriteEnable: true,
		}, nil

	case "R":
		if len(fields) != 2 {
			return bram.Stimulus{},
				fmt.Errorf("R takes an address")
		}

		addr, err := strconv.ParseUint(fields[1], 0, 64)
		if err != nil {
			return bram.Stimulus{},
				fmt.Errorf("bad address %q", fields[1])
		}

		return bram.Stimulus{Address: addr}, nil
	}

	return bram.Stimulus{}, fmt.Errorf("unknown operation %q", fields[0])
}

func loadStimulusFile(path string) ([]bram.Stimulus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseStimulus(f)
}
