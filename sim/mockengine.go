package sim

// MockEngine is created to simplify the unit tests of other packages. It
// records the scheduled events instead of running them.
type MockEngine struct {
	HookableBase

	Now             VTimeInSec
	ScheduledEvents []Event
}

// NewMockEngine returns a new mock engine
func NewMockEngine() *MockEngine {
	e := new(MockEngine)
	e.ScheduledEvents = make([]Event, 0)
	return e
}

// Schedule records the scheduled event.
func (e *MockEngine) Schedule(evt Event) {
	e.ScheduledEvents = append(e.ScheduledEvents, evt)
}

// PopEvent removes and returns the earliest recorded event.
func (e *MockEngine) PopEvent() Event {
	if len(e.ScheduledEvents) == 0 {
		return nil
	}

	earliest := 0
	for i, evt := range e.ScheduledEvents {
		if evt.Time() < e.ScheduledEvents[earliest].Time() {
			earliest = i
		}
	}

	evt := e.ScheduledEvents[earliest]
	e.ScheduledEvents = append(
		e.ScheduledEvents[:earliest],
		e.ScheduledEvents[earliest+1:]...)

	return evt
}

// CurrentTime returns the mock time
func (e *MockEngine) CurrentTime() VTimeInSec {
	return e.Now
}

// Run function of a MockEngine does not do anything
func (e *MockEngine) Run() error {
	return nil
}

// RegisterSimulationEndHandler function of a MockEngine does not do anything
func (e *MockEngine) RegisterSimulationEndHandler(_ SimulationEndHandler) {
}

// Finished function of a MockEngine does not do anything
func (e *MockEngine) Finished() {
}
