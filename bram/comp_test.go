package bram

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bramsim/sim"
)

type captureRecorder struct {
	tables map[string][]any
}

func newCaptureRecorder() *captureRecorder {
	return &captureRecorder{tables: make(map[string][]any)}
}

func (r *captureRecorder) CreateTable(tableName string, _ any) {
	r.tables[tableName] = []any{}
}

func (r *captureRecorder) InsertData(tableName string, entry any) {
	r.tables[tableName] = append(r.tables[tableName], entry)
}

func (r *captureRecorder) ListTables() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	return names
}

func (r *captureRecorder) Flush() {
}

var _ = Describe("Comp", func() {
	var (
		engine   *sim.SerialEngine
		recorder *captureRecorder
		comp     *Comp
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		recorder = newCaptureRecorder()

		var err error
		comp, err = MakeCompBuilder().
			WithEngine(engine).
			WithFreq(1 * sim.GHz).
			WithRecorder(recorder).
			WithWordWidth(8).
			WithDepth(4).
			WithPerformanceMode(LowLatency).
			Build("MemBlock")
		Expect(err).ToNot(HaveOccurred())
	})

	It("should create the access trace table", func() {
		Expect(recorder.ListTables()).To(ContainElement("MemBlock_access"))
	})

	It("should apply one stimulus per cycle", func() {
		comp.AppendStimulus(Stimulus{Address: 2, WriteData: 0xAB, WriteEnable: true})
		comp.AppendStimulus(Stimulus{Address: 2})
		comp.AppendStimulus(Stimulus{Address: 1, WriteData: 0x11})

		Expect(engine.Run()).To(Succeed())

		Expect(comp.TickCount()).To(Equal(uint64(3)))
		Expect(comp.LastRead()).To(Equal(uint64(0x00)))
	})

	It("should record the read-first output in the trace", func() {
		comp.AppendStimulus(Stimulus{Address: 2, WriteData: 0xAB, WriteEnable: true})
		comp.AppendStimulus(Stimulus{Address: 2})

		Expect(engine.Run()).To(Succeed())

		rows := recorder.tables["MemBlock_access"]
		Expect(rows).To(HaveLen(2))

		first := rows[0].(AccessTrace)
		Expect(first.Tick).To(Equal(uint64(1)))
		Expect(first.Address).To(Equal(uint64(2)))
		Expect(first.WriteEnable).To(BeTrue())
		Expect(first.ReadData).To(Equal(uint64(0x00)))

		second := rows[1].(AccessTrace)
		Expect(second.Tick).To(Equal(uint64(2)))
		Expect(second.WriteEnable).To(BeFalse())
		Expect(second.ReadData).To(Equal(uint64(0xAB)))
	})

	It("should go idle once the stimulus queue drains", func() {
		comp.AppendStimulus(Stimulus{Address: 0})

		Expect(engine.Run()).To(Succeed())
		Expect(comp.TickCount()).To(Equal(uint64(1)))

		// Appending more stimulus resumes ticking.
		comp.AppendStimulus(Stimulus{Address: 1})

		Expect(engine.Run()).To(Succeed())
		Expect(comp.TickCount()).To(Equal(uint64(2)))
	})

	It("should run without a recorder", func() {
		bare, err := MakeCompBuilder().
			WithEngine(engine).
			WithWordWidth(8).
			WithDepth(4).
			Build("Bare")
		Expect(err).ToNot(HaveOccurred())

		bare.AppendStimulus(Stimulus{Address: 0, WriteData: 0x12, WriteEnable: true})
		bare.AppendStimulus(Stimulus{Address: 0})

		Expect(engine.Run()).To(Succeed())
		Expect(bare.LastRead()).To(Equal(uint64(0x12)))
	})

	It("should respect the high performance latency", func() {
		hp, err := MakeCompBuilder().
			WithEngine(engine).
			WithWordWidth(8).
			WithDepth(4).
			WithPerformanceMode(HighPerformance).
			Build("HP")
		Expect(err).ToNot(HaveOccurred())

		hp.AppendStimulus(Stimulus{Address: 2, WriteData: 0xAB, WriteEnable: true})
		hp.AppendStimulus(Stimulus{Address: 2})
		hp.AppendStimulus(Stimulus{Address: 0})

		Expect(engine.Run()).To(Succeed())

		// The last sample surfaces tick 2's raw read of address 2.
		Expect(hp.LastRead()).To(Equal(uint64(0xAB)))
	})

	It("should propagate a bad block configuration", func() {
		_, err := MakeCompBuilder().
			WithEngine(engine).
			WithDepth(1).
			Build("Broken")

		Expect(err).To(HaveOccurred())
	})
})
