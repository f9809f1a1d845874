// Package bram models a single-port synchronous block RAM with configurable
// word width, depth, and read latency.
package bram

import (
	"fmt"
	"math/bits"
)

// PerformanceMode selects the read latency of a memory block. The mode is
// fixed at construction and cannot be switched at runtime.
type PerformanceMode int

const (
	// LowLatency exposes the raw read after one cycle.
	LowLatency PerformanceMode = iota

	// HighPerformance inserts an extra output register, exposing the raw
	// read after two cycles.
	HighPerformance
)

func (m PerformanceMode) String() string {
	switch m {
	case LowLatency:
		return "LOW_LATENCY"
	case HighPerformance:
		return "HIGH_PERFORMANCE"
	}
	return fmt.Sprintf("PerformanceMode(%d)", int(m))
}

// PerformanceModeFromString parses the external string form of a performance
// mode.
func PerformanceModeFromString(s string) (PerformanceMode, error) {
	switch s {
	case "LOW_LATENCY":
		return LowLatency, nil
	case "HIGH_PERFORMANCE":
		return HighPerformance, nil
	}
	return 0, &ConfigurationError{
		Field: "performanceMode",
		Msg:   fmt.Sprintf("unknown mode %q", s),
	}
}

// AddressPolicy decides what happens when Tick receives an address outside
// [0, depth).
type AddressPolicy int

const (
	// StrictAddress rejects out-of-range addresses with an OutOfRangeError.
	// Storage is left untouched.
	StrictAddress AddressPolicy = iota

	// MaskAddress masks the address to AddressWidth bits the way a hardware
	// address bus would, then wraps modulo depth when the masked value still
	// exceeds depth-1 (possible when depth is not a power of two).
	MaskAddress
)

// A ConfigurationError reports an invalid memory block configuration. The
// construction attempt fails; the caller can reconfigure and retry.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bram configuration: %s: %s", e.Field, e.Msg)
}

// An OutOfRangeError reports a Tick address outside [0, depth) under the
// strict address policy.
type OutOfRangeError struct {
	Address uint64
	Depth   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bram address %d out of range [0, %d)",
		e.Address, e.Depth)
}

// A MemBlock is a behavioral model of a single-port synchronous memory. All
// state changes happen atomically within one Tick call; there is no sub-tick
// observability and no combinational read path.
//
// A MemBlock is not safe for concurrent use. A host embedding it in a larger
// simulation must serialize all Tick and Read calls on one instance.
type MemBlock struct {
	name      string
	wordWidth int
	depth     int
	addrWidth int
	mode      PerformanceMode
	policy    AddressPolicy

	wordMask uint64
	storage  []uint64

	rawReadLatch uint64
	outputLatch  uint64
}

// Name returns the name of the memory block.
func (m *MemBlock) Name() string {
	return m.name
}

// WordWidth returns the number of bits per word.
func (m *MemBlock) WordWidth() int {
	return m.wordWidth
}

// Depth returns the number of addressable words.
func (m *MemBlock) Depth() int {
	return m.depth
}

// AddressWidth returns ceil(log2(depth)), the number of address bits.
func (m *MemBlock) AddressWidth() int {
	return m.addrWidth
}

// Mode returns the configured performance mode.
func (m *MemBlock) Mode() PerformanceMode {
	return m.mode
}

// Tick applies one rising clock edge. The addressed word is captured before
// any write, giving read-first semantics on a same-address collision. Write
// data wider than the word width is truncated to the low wordWidth bits, the
// way a hardware data bus would drop the upper lines.
func (m *MemBlock) Tick(address uint64, writeData uint64, writeEnable bool) error {
	addr, err := m.resolveAddress(address)
	if err != nil {
		return err
	}

	priorValue := m.storage[addr]

	if writeEnable {
		m.storage[addr] = writeData & m.wordMask
	}

	if m.mode == HighPerformance {
		m.outputLatch = m.rawReadLatch
	}
	m.rawReadLatch = priorValue

	return nil
}

// Read returns the current output of the memory block. It is a pure accessor.
// In LowLatency mode the value reflects the address presented at the most
// recent Tick. In HighPerformance mode it lags one further Tick behind.
// Before the first Tick, Read returns the zero word in both modes.
func (m *MemBlock) Read() uint64 {
	if m.mode == HighPerformance {
		return m.outputLatch
	}
	return m.rawReadLatch
}

func (m *MemBlock) resolveAddress(address uint64) (uint64, error) {
	if address < uint64(m.depth) {
		return address, nil
	}

	if m.policy == StrictAddress {
		return 0, &OutOfRangeError{Address: address, Depth: m.depth}
	}

	masked := address & ((uint64(1) << m.addrWidth) - 1)
	if masked >= uint64(m.depth) {
		masked %= uint64(m.depth)
	}
	return masked, nil
}

// addressWidthFor returns the number of address bits needed to index depth
// words, satisfying 2^width >= depth.
func addressWidthFor(depth int) int {
	return bits.Len(uint(depth - 1))
}

// wordMaskFor returns a mask with the low width bits set.
func wordMaskFor(width int) uint64 {
	if width == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}
