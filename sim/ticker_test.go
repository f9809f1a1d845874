package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingTicker struct {
	progressLeft int
	ticks        int
}

func (t *countingTicker) Tick() bool {
	t.ticks++
	if t.progressLeft > 0 {
		t.progressLeft--
		return true
	}
	return false
}

var _ = Describe("TickScheduler", func() {
	var (
		engine    *MockEngine
		scheduler *TickScheduler
	)

	BeforeEach(func() {
		engine = NewMockEngine()
		scheduler = NewTickScheduler(nil, engine, 1*GHz)
	})

	It("should schedule a tick at the next cycle", func() {
		engine.Now = 0

		scheduler.TickLater()

		Expect(engine.ScheduledEvents).To(HaveLen(1))
		Expect(engine.ScheduledEvents[0].Time()).To(
			BeNumerically("~", 1e-9, 1e-15))
	})

	It("should not double schedule the same cycle", func() {
		engine.Now = 0

		scheduler.TickLater()
		scheduler.TickLater()

		Expect(engine.ScheduledEvents).To(HaveLen(1))
	})

	It("should schedule a tick at the current cycle with TickNow", func() {
		engine.Now = 2e-9

		scheduler.TickNow()

		Expect(engine.ScheduledEvents).To(HaveLen(1))
		Expect(engine.ScheduledEvents[0].Time()).To(
			BeNumerically("~", 2e-9, 1e-15))
	})
})

var _ = Describe("TickingComponent", func() {
	It("should keep ticking while progress is made", func() {
		engine := NewSerialEngine()
		ticker := &countingTicker{progressLeft: 3}

		NewTickingComponent("Comp", engine, 1*GHz, ticker).TickLater()

		Expect(engine.Run()).To(Succeed())

		// Three productive ticks plus the final one that made no progress.
		Expect(ticker.ticks).To(Equal(4))
	})
})
