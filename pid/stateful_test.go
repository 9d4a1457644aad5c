package pid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rickhull/pid-controller-ng/pid"
)

var _ = Describe("StatefulController", func() {
	var ctl *pid.StatefulController

	BeforeEach(func() {
		var err error
		ctl, err = pid.NewStateful(100.0, pid.DefaultDt)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a non-positive dt", func() {
		_, err := pid.NewStateful(100.0, 0)
		Expect(err).To(HaveOccurred())

		_, err = pid.NewStateful(100.0, -0.001)
		Expect(err).To(HaveOccurred())
	})

	It("starts with zeroed error state", func() {
		Expect(ctl.Err()).To(Equal(0.0))
		Expect(ctl.LastErr()).To(Equal(0.0))
		Expect(ctl.SumErr()).To(Equal(0.0))
		Expect(ctl.Measure()).To(Equal(0.0))
	})

	It("stores the measurement and recomputes the error", func() {
		ctl.Update(40.0)
		Expect(ctl.Measure()).To(Equal(40.0))
		Expect(ctl.Err()).To(Equal(60.0))
		Expect(ctl.LastErr()).To(Equal(0.0))

		ctl.Update(90.0)
		Expect(ctl.Err()).To(Equal(10.0))
		Expect(ctl.LastErr()).To(Equal(60.0))
	})

	It("returns the value readable via Output", func() {
		out := ctl.Update(40.0)
		Expect(out).To(Equal(ctl.Output()))
		Expect(out).To(Equal(60.0))
	})

	It("accumulates error while the sign holds", func() {
		ctl.Update(40.0) // err 60
		Expect(ctl.SumErr()).To(BeNumerically("~", 0.06, 1e-12))

		ctl.Update(90.0) // err 10, same sign
		Expect(ctl.SumErr()).To(BeNumerically("~", 0.07, 1e-12))
	})

	It("resets the accumulator on a setpoint crossing", func() {
		ctl.Update(40.0)  // err 60
		ctl.Update(110.0) // err -10: crossing
		Expect(ctl.SumErr()).To(BeNumerically("~", -0.01, 1e-12))
	})

	It("does not treat a zero error as a crossing", func() {
		ctl.Update(40.0)  // err 60
		ctl.Update(100.0) // err 0: touch the setpoint
		Expect(ctl.SumErr()).To(BeNumerically("~", 0.06, 1e-12))

		ctl.Update(40.0) // err 60 again, still no reset
		Expect(ctl.SumErr()).To(BeNumerically("~", 0.12, 1e-12))
	})

	It("honors a mutated setpoint on the next update", func() {
		ctl.Setpoint = 50.0
		ctl.Update(40.0)
		Expect(ctl.Err()).To(Equal(10.0))
	})

	It("validates SetDt", func() {
		Expect(ctl.SetDt(0.01)).To(Succeed())
		Expect(ctl.Dt()).To(Equal(0.01))
		Expect(ctl.SetDt(0)).NotTo(Succeed())
		Expect(ctl.Dt()).To(Equal(0.01))
	})
})
