package pid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rickhull/pid-controller-ng/pid"
)

var _ = Describe("Tune", func() {
	const (
		ku = 10.0
		tu = 4.0
	)

	It("computes P constants", func() {
		params, err := pid.Tune(pid.TuneP, ku, tu)
		Expect(err).NotTo(HaveOccurred())
		Expect(params).To(HaveKeyWithValue("kp", 5.0))
		Expect(params).NotTo(HaveKey("ki"))
		Expect(params).NotTo(HaveKey("kd"))
		Expect(params).NotTo(HaveKey("ti"))
		Expect(params).NotTo(HaveKey("td"))
	})

	It("computes PI constants", func() {
		params, err := pid.Tune(pid.TunePI, ku, tu)
		Expect(err).NotTo(HaveOccurred())
		Expect(params).To(HaveKeyWithValue("kp", 4.5))
		Expect(params).To(HaveKeyWithValue("ti", BeNumerically("~", 4.0/1.2, 1e-12)))
		Expect(params).To(HaveKeyWithValue("ki", BeNumerically("~", 4.5/(4.0/1.2), 1e-12)))
		Expect(params).NotTo(HaveKey("kd"))
		Expect(params).NotTo(HaveKey("td"))
	})

	It("computes PID constants", func() {
		params, err := pid.Tune(pid.TunePID, ku, tu)
		Expect(err).NotTo(HaveOccurred())
		Expect(params).To(HaveKeyWithValue("kp", 6.0))
		Expect(params).To(HaveKeyWithValue("ti", 2.0))
		Expect(params).To(HaveKeyWithValue("td", 0.5))
		Expect(params).To(HaveKeyWithValue("ki", 3.0))
		Expect(params).To(HaveKeyWithValue("kd", 3.0))

		for key, val := range params {
			Expect(val).To(BeNumerically(">", 0), key)
		}
	})

	It("rejects unknown modes", func() {
		_, err := pid.Tune("PD", ku, tu)
		Expect(err).To(HaveOccurred())

		_, err = pid.Tune("pid", ku, tu)
		Expect(err).To(HaveOccurred())
	})

	It("rejects non-positive ku and tu", func() {
		_, err := pid.Tune(pid.TunePID, 0, tu)
		Expect(err).To(HaveOccurred())

		_, err = pid.Tune(pid.TunePID, ku, -1)
		Expect(err).To(HaveOccurred())
	})
})
