package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type queueTestEvent struct {
	*EventBase
}

var _ = Describe("EventQueue", func() {
	var queue *EventQueueImpl

	BeforeEach(func() {
		queue = NewEventQueue()
	})

	It("should pop events in time order", func() {
		e1 := queueTestEvent{NewEventBase(3, nil)}
		e2 := queueTestEvent{NewEventBase(1, nil)}
		e3 := queueTestEvent{NewEventBase(2, nil)}

		queue.Push(e1)
		queue.Push(e2)
		queue.Push(e3)

		Expect(queue.Len()).To(Equal(3))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(1)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(2)))
		Expect(queue.Pop().Time()).To(Equal(VTimeInSec(3)))
	})

	It("should peek without removing", func() {
		e1 := queueTestEvent{NewEventBase(5, nil)}
		queue.Push(e1)

		Expect(queue.Peek().Time()).To(Equal(VTimeInSec(5)))
		Expect(queue.Len()).To(Equal(1))
	})
})
