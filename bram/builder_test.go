package bram

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	expectConfigurationError := func(b Builder) {
		m, err := b.Build("MemBlock")

		var cfgErr *ConfigurationError
		Expect(m).To(BeNil())
		Expect(err).To(HaveOccurred())
		Expect(err).To(BeAssignableToTypeOf(cfgErr))
	}

	It("should build with the default configuration", func() {
		m, err := MakeBuilder().Build("MemBlock")

		Expect(err).ToNot(HaveOccurred())
		Expect(m.WordWidth()).To(Equal(32))
		Expect(m.Depth()).To(Equal(1024))
		Expect(m.AddressWidth()).To(Equal(10))
		Expect(m.Mode()).To(Equal(LowLatency))
		Expect(m.Name()).To(Equal("MemBlock"))
	})

	It("should support 64-bit words", func() {
		m, err := MakeBuilder().
			WithWordWidth(64).
			WithDepth(2).
			WithInitialContents([]uint64{^uint64(0), 0}).
			Build("MemBlock")

		Expect(err).ToNot(HaveOccurred())

		Expect(m.Tick(0, 0, false)).To(Succeed())
		Expect(m.Read()).To(Equal(^uint64(0)))
	})

	It("should reject a non-positive word width", func() {
		expectConfigurationError(MakeBuilder().WithWordWidth(0))
	})

	It("should reject a word width above 64", func() {
		expectConfigurationError(MakeBuilder().WithWordWidth(65))
	})

	It("should reject a depth below 2", func() {
		expectConfigurationError(MakeBuilder().WithDepth(1))
	})

	It("should reject initial contents shorter than the depth", func() {
		expectConfigurationError(MakeBuilder().
			WithDepth(4).
			WithInitialContents([]uint64{1, 2, 3}))
	})

	It("should reject initial contents wider than the word width", func() {
		expectConfigurationError(MakeBuilder().
			WithWordWidth(8).
			WithDepth(2).
			WithInitialContents([]uint64{0x100, 0}))
	})

	It("should copy the initial contents", func() {
		contents := []uint64{1, 2}
		m, err := MakeBuilder().
			WithWordWidth(8).
			WithDepth(2).
			WithInitialContents(contents).
			Build("MemBlock")
		Expect(err).ToNot(HaveOccurred())

		contents[0] = 99

		Expect(m.Tick(0, 0, false)).To(Succeed())
		Expect(m.Read()).To(Equal(uint64(1)))
	})
})

var _ = Describe("PerformanceModeFromString", func() {
	It("should parse the two external mode names", func() {
		mode, err := PerformanceModeFromString("LOW_LATENCY")
		Expect(err).ToNot(HaveOccurred())
		Expect(mode).To(Equal(LowLatency))

		mode, err = PerformanceModeFromString("HIGH_PERFORMANCE")
		Expect(err).ToNot(HaveOccurred())
		Expect(mode).To(Equal(HighPerformance))
	})

	It("should reject unknown mode names", func() {
		_, err := PerformanceModeFromString("MEDIUM")
		Expect(err).To(HaveOccurred())
	})
})
