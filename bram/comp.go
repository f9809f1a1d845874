package bram

import (
	"log"

	"github.com/sarchlab/bramsim/datarecording"
	"github.com/sarchlab/bramsim/sim"
)

// A Stimulus describes the port signals that a driver presents to the memory
// block for one clock cycle.
type Stimulus struct {
	Address     uint64
	WriteData   uint64
	WriteEnable bool
}

// An AccessTrace is one recorded cycle of memory activity. ReadData is the
// output of the block sampled after the cycle completed, so it reflects the
// configured read latency.
type AccessTrace struct {
	Tick        uint64
	Address     uint64
	WriteEnable bool
	WriteData   uint64
	ReadData    uint64
}

// A Comp drives a MemBlock from a discrete event engine. Each engine tick
// consumes one queued stimulus, applies it to the block, and samples the
// block output.
type Comp struct {
	*sim.TickingComponent

	block     *MemBlock
	recorder  datarecording.DataRecorder
	tableName string

	stimuli   []Stimulus
	cursor    int
	tickCount uint64
	lastRead  uint64
}

// Block returns the memory block driven by this component.
func (c *Comp) Block() *MemBlock {
	return c.block
}

// LastRead returns the block output sampled after the most recent cycle.
func (c *Comp) LastRead() uint64 {
	return c.lastRead
}

// TickCount returns the number of cycles applied so far.
func (c *Comp) TickCount() uint64 {
	return c.tickCount
}

// AppendStimulus queues the port signals for one future cycle and makes sure
// the component is ticking.
func (c *Comp) AppendStimulus(st Stimulus) {
	c.stimuli = append(c.stimuli, st)
	c.TickLater()
}

// Tick applies one queued stimulus to the memory block. It returns false when
// no stimulus is pending, letting the component go idle.
func (c *Comp) Tick() bool {
	if c.cursor >= len(c.stimuli) {
		return false
	}

	st := c.stimuli[c.cursor]
	c.cursor++

	err := c.block.Tick(st.Address, st.WriteData, st.WriteEnable)
	if err != nil {
		log.Panicf("stimulus %d violates the address contract: %v",
			c.cursor-1, err)
	}

	c.tickCount++
	c.lastRead = c.block.Read()

	if c.recorder != nil {
		c.recorder.InsertData(c.tableName, AccessTrace{
			Tick:        c.tickCount,
			Address:     st.Address,
			WriteEnable: st.WriteEnable,
			WriteData:   st.WriteData,
			ReadData:    c.lastRead,
		})
	}

	return true
}
