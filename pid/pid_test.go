package pid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rickhull/pid-controller-ng/pid"
)

var _ = Describe("PIDController", func() {
	var ctl *pid.PIDController

	BeforeEach(func() {
		var err error
		ctl, err = pid.NewPID(1000.0, pid.DefaultDt)
		Expect(err).NotTo(HaveOccurred())
	})

	It("satisfies the update contract", func() {
		var _ pid.Updatable = ctl
		var _ pid.Updatable = &ctl.StatefulController
	})

	It("rejects a non-positive dt", func() {
		_, err := pid.NewPID(1000.0, 0)
		Expect(err).To(HaveOccurred())
	})

	Describe("proportional term", func() {
		It("tracks kp * error", func() {
			ctl.Kp = 1.0

			ctl.Update(0)
			Expect(ctl.Proportion()).To(Equal(1000.0))

			ctl.Update(1)
			Expect(ctl.Proportion()).To(Equal(999.0))

			ctl.Update(1001)
			Expect(ctl.Proportion()).To(Equal(-1.0))
		})

		It("scales with the gain", func() {
			ctl.Kp = 0.5
			ctl.Update(0)
			Expect(ctl.Proportion()).To(Equal(500.0))
		})
	})

	Describe("integral term", func() {
		BeforeEach(func() {
			ctl.Ki = 1.0
		})

		It("integrates error over time", func() {
			ctl.Update(0)
			Expect(ctl.Integral()).To(BeNumerically("~", 1.0, 1e-9))

			ctl.Update(999)
			Expect(ctl.Integral()).To(BeNumerically("~", 1.001, 1e-9))
		})

		It("restarts on a sign crossing", func() {
			ctl.Update(0)
			ctl.Update(999)
			ctl.Update(1100) // error flips negative
			Expect(ctl.Integral()).To(BeNumerically("~", -0.1, 1e-9))
		})
	})

	Describe("derivative term", func() {
		It("tracks the error slope over dt", func() {
			ctl.Kd = 1.0
			ctl.Update(0) // error jumps 0 -> 1000 in one tick
			Expect(ctl.Derivative()).To(BeNumerically("~", 1e6, 1e-3))

			ctl.Update(0) // error unchanged
			Expect(ctl.Derivative()).To(Equal(0.0))
		})
	})

	Describe("clamping", func() {
		It("clamps the output into ORange", func() {
			var err error
			ctl.ORange, err = pid.NewRange(0.0, 1.0)
			Expect(err).NotTo(HaveOccurred())

			Expect(ctl.Update(0)).To(Equal(1.0))
			Expect(ctl.Update(2000)).To(Equal(0.0))
		})

		It("clamps each term independently", func() {
			ctl.Ki = 1.0
			ctl.PRange = &pid.Range{Lo: -5, Hi: 5}
			ctl.IRange = &pid.Range{Lo: -0.5, Hi: 0.5}

			ctl.Update(0)
			Expect(ctl.Proportion()).To(Equal(5.0))
			Expect(ctl.Integral()).To(Equal(0.5))
			Expect(ctl.Output()).To(Equal(5.5))
		})

		It("leaves unset ranges unclamped", func() {
			ctl.Update(0)
			Expect(ctl.Proportion()).To(Equal(1000.0))
			Expect(ctl.Output()).To(Equal(1000.0))
		})
	})

	It("returns exactly the value readable via Output", func() {
		out := ctl.Update(750)
		Expect(out).To(Equal(ctl.Output()))
	})

	It("converges on a simple integrating plant", func() {
		// the plant absorbs half the control output each tick, so the
		// error halves every update: e' = e - 0.5*Kp*e
		ctl.Setpoint = 5.0
		ctl.Kp, ctl.Ki, ctl.Kd = 1.0, 0.0, 0.0

		speed := 0.0
		for i := 0; i < 100; i++ {
			speed += ctl.Update(speed) * 0.5
		}
		Expect(speed).To(BeNumerically("~", 5.0, 1e-9))
	})

	It("has a readable string form", func() {
		ctl.Update(0)
		Expect(ctl.String()).To(ContainSubstring("kp="))
		Expect(ctl.String()).To(ContainSubstring("out="))
	})
})
