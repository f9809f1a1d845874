package bram

import (
	"strings"

	"github.com/sarchlab/bramsim/datarecording"
	"github.com/sarchlab/bramsim/sim"
)

// CompBuilder configures and constructs engine-driven memory block
// components.
type CompBuilder struct {
	engine   sim.Engine
	freq     sim.Freq
	recorder datarecording.DataRecorder

	blockBuilder Builder
}

// MakeCompBuilder returns a new CompBuilder with the default configuration.
func MakeCompBuilder() CompBuilder {
	return CompBuilder{
		freq:         1 * sim.GHz,
		blockBuilder: MakeBuilder(),
	}
}

// WithEngine sets the engine that drives the component.
func (b CompBuilder) WithEngine(engine sim.Engine) CompBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the component.
func (b CompBuilder) WithFreq(freq sim.Freq) CompBuilder {
	b.freq = freq
	return b
}

// WithRecorder sets the recorder that stores the access trace. Without a
// recorder no trace is kept.
func (b CompBuilder) WithRecorder(
	recorder datarecording.DataRecorder,
) CompBuilder {
	b.recorder = recorder
	return b
}

// WithWordWidth sets the number of bits per word.
func (b CompBuilder) WithWordWidth(wordWidth int) CompBuilder {
	b.blockBuilder = b.blockBuilder.WithWordWidth(wordWidth)
	return b
}

// WithDepth sets the number of addressable words.
func (b CompBuilder) WithDepth(depth int) CompBuilder {
	b.blockBuilder = b.blockBuilder.WithDepth(depth)
	return b
}

// WithPerformanceMode sets the read latency mode.
func (b CompBuilder) WithPerformanceMode(mode PerformanceMode) CompBuilder {
	b.blockBuilder = b.blockBuilder.WithPerformanceMode(mode)
	return b
}

// WithAddressPolicy sets the out-of-range address policy.
func (b CompBuilder) WithAddressPolicy(policy AddressPolicy) CompBuilder {
	b.blockBuilder = b.blockBuilder.WithAddressPolicy(policy)
	return b
}

// WithInitialContents seeds the block storage.
func (b CompBuilder) WithInitialContents(contents []uint64) CompBuilder {
	b.blockBuilder = b.blockBuilder.WithInitialContents(contents)
	return b
}

// Build constructs the component and, when a recorder is configured, creates
// the access-trace table named after the component.
func (b CompBuilder) Build(name string) (*Comp, error) {
	block, err := b.blockBuilder.Build(name + ".Block")
	if err != nil {
		return nil, err
	}

	c := &Comp{
		block:     block,
		recorder:  b.recorder,
		tableName: strings.ReplaceAll(name, ".", "_") + "_access",
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	if b.recorder != nil {
		b.recorder.CreateTable(c.tableName, AccessTrace{})
	}

	return c, nil
}
