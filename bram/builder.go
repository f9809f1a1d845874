package bram

import "fmt"

// Builder configures and constructs MemBlock instances.
type Builder struct {
	wordWidth       int
	depth           int
	mode            PerformanceMode
	policy          AddressPolicy
	initialContents []uint64
}

// MakeBuilder returns a new Builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		wordWidth: 32,
		depth:     1024,
		mode:      LowLatency,
		policy:    StrictAddress,
	}
}

// WithWordWidth sets the number of bits per word.
func (b Builder) WithWordWidth(wordWidth int) Builder {
	b.wordWidth = wordWidth
	return b
}

// WithDepth sets the number of addressable words.
func (b Builder) WithDepth(depth int) Builder {
	b.depth = depth
	return b
}

// WithPerformanceMode sets the read latency mode.
func (b Builder) WithPerformanceMode(mode PerformanceMode) Builder {
	b.mode = mode
	return b
}

// WithAddressPolicy sets the out-of-range address policy.
func (b Builder) WithAddressPolicy(policy AddressPolicy) Builder {
	b.policy = policy
	return b
}

// WithInitialContents seeds the storage with the given words, one per
// address. Without initial contents every word starts at zero.
func (b Builder) WithInitialContents(contents []uint64) Builder {
	b.initialContents = contents
	return b
}

// Build validates the configuration and constructs a MemBlock.
func (b Builder) Build(name string) (*MemBlock, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	m := &MemBlock{
		name:      name,
		wordWidth: b.wordWidth,
		depth:     b.depth,
		addrWidth: addressWidthFor(b.depth),
		mode:      b.mode,
		policy:    b.policy,
		wordMask:  wordMaskFor(b.wordWidth),
		storage:   make([]uint64, b.depth),
	}

	copy(m.storage, b.initialContents)

	return m, nil
}

func (b Builder) validate() error {
	if b.wordWidth < 1 || b.wordWidth > 64 {
		return &ConfigurationError{
			Field: "wordWidth",
			Msg: fmt.Sprintf("must be in [1, 64], got %d",
				b.wordWidth),
		}
	}

	if b.depth < 2 {
		return &ConfigurationError{
			Field: "depth",
			Msg:   fmt.Sprintf("must be at least 2, got %d", b.depth),
		}
	}

	if b.initialContents == nil {
		return nil
	}

	if len(b.initialContents) != b.depth {
		return &ConfigurationError{
			Field: "initialContents",
			Msg: fmt.Sprintf("length %d does not match depth %d",
				len(b.initialContents), b.depth),
		}
	}

	mask := wordMaskFor(b.wordWidth)
	for i, word := range b.initialContents {
		if word&^mask != 0 {
			return &ConfigurationError{
				Field: "initialContents",
				Msg: fmt.Sprintf(
					"word %d (0x%X) does not fit in %d bits",
					i, word, b.wordWidth),
			}
		}
	}

	return nil
}
