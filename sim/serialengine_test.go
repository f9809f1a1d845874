package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHandler struct {
	handledTimes []VTimeInSec
}

func (h *recordingHandler) Handle(e Event) error {
	h.handledTimes = append(h.handledTimes, e.Time())
	return nil
}

type endRecorder struct {
	called bool
	at     VTimeInSec
}

func (r *endRecorder) Handle(now VTimeInSec) {
	r.called = true
	r.at = now
}

var _ = Describe("SerialEngine", func() {
	var (
		engine  *SerialEngine
		handler *recordingHandler
	)

	BeforeEach(func() {
		engine = NewSerialEngine()
		handler = &recordingHandler{}
	})

	It("should handle events in time order", func() {
		engine.Schedule(queueTestEvent{NewEventBase(2, handler)})
		engine.Schedule(queueTestEvent{NewEventBase(1, handler)})
		engine.Schedule(queueTestEvent{NewEventBase(3, handler)})

		Expect(engine.Run()).To(Succeed())

		Expect(handler.handledTimes).To(Equal(
			[]VTimeInSec{1, 2, 3}))
	})

	It("should advance the current time to the handled event", func() {
		engine.Schedule(queueTestEvent{NewEventBase(2.5, handler)})

		Expect(engine.Run()).To(Succeed())
		Expect(engine.CurrentTime()).To(Equal(VTimeInSec(2.5)))
	})

	It("should invoke hooks around each event", func() {
		hook := &countingHook{}
		engine.AcceptHook(hook)

		engine.Schedule(queueTestEvent{NewEventBase(1, handler)})

		Expect(engine.Run()).To(Succeed())
		Expect(hook.before).To(Equal(1))
		Expect(hook.after).To(Equal(1))
	})

	It("should call simulation end handlers on Finished", func() {
		recorder := &endRecorder{}
		engine.RegisterSimulationEndHandler(recorder)

		engine.Schedule(queueTestEvent{NewEventBase(4, handler)})
		Expect(engine.Run()).To(Succeed())

		engine.Finished()

		Expect(recorder.called).To(BeTrue())
		Expect(recorder.at).To(Equal(VTimeInSec(4)))
	})
})

type countingHook struct {
	before int
	after  int
}

func (h *countingHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosBeforeEvent:
		h.before++
	case HookPosAfterEvent:
		h.after++
	}
}
