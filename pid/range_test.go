package pid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rickhull/pid-controller-ng/pid"
)

var _ = Describe("Range", func() {
	It("rejects lo > hi", func() {
		_, err := pid.NewRange(1.0, 0.0)
		Expect(err).To(HaveOccurred())
	})

	It("allows a zero-width interval", func() {
		r, err := pid.NewRange(2.0, 2.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Clamp(-10)).To(Equal(2.0))
		Expect(r.Clamp(10)).To(Equal(2.0))
	})

	It("clamps inclusively on both ends", func() {
		r, err := pid.NewRange(-1.0, 1.0)
		Expect(err).NotTo(HaveOccurred())

		Expect(r.Clamp(-2.0)).To(Equal(-1.0))
		Expect(r.Clamp(-1.0)).To(Equal(-1.0))
		Expect(r.Clamp(0.5)).To(Equal(0.5))
		Expect(r.Clamp(1.0)).To(Equal(1.0))
		Expect(r.Clamp(3.0)).To(Equal(1.0))
	})

	It("is idempotent", func() {
		r, err := pid.NewRange(0.0, 1.0)
		Expect(err).NotTo(HaveOccurred())

		for _, x := range []float64{-5, 0, 0.25, 1, 5} {
			once := r.Clamp(x)
			Expect(r.Clamp(once)).To(Equal(once))
		}
	})
})
