package kinematics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/suvat/internal/kinematics"
	"github.com/san-kum/suvat/internal/quantity"
)

var (
	dist  = quantity.NewDistance
	speed = quantity.NewSpeed
	accel = quantity.NewAcceleration
	secs  = quantity.NewTime
)

var _ = Describe("SUVAT formulas", func() {
	// u = 0, a = 2, t = 3 → v = 6, s = 9
	u, a, t := speed(0), accel(2), secs(3)
	v, s := speed(6), dist(9)

	Describe("end speed", func() {
		It("follows v = u + at", func() {
			Expect(kinematics.EndSpeedFromUAT(u, a, t).Value()).To(Equal(6.0))
		})
		It("follows v = 2s/t − u", func() {
			Expect(kinematics.EndSpeedFromSUT(s, u, t).Value()).To(Equal(6.0))
		})
		It("follows v = s/t + ½at", func() {
			Expect(kinematics.EndSpeedFromSAT(s, a, t).Value()).To(Equal(6.0))
		})
		It("follows v = √(u² + 2as)", func() {
			Expect(kinematics.EndSpeedFromSUA(s, u, a).Value()).To(Equal(6.0))
		})
	})

	Describe("start speed", func() {
		It("follows u = v − at", func() {
			Expect(kinematics.StartSpeedFromVAT(v, a, t).Value()).To(Equal(0.0))
		})
		It("follows u = 2s/t − v", func() {
			Expect(kinematics.StartSpeedFromSVT(s, v, t).Value()).To(Equal(0.0))
		})
		It("follows u = s/t − ½at", func() {
			Expect(kinematics.StartSpeedFromSAT(s, a, t).Value()).To(Equal(0.0))
		})
		It("follows u = √(v² − 2as)", func() {
			Expect(kinematics.StartSpeedFromSVA(s, v, a).Value()).To(Equal(0.0))
		})
	})

	Describe("distance", func() {
		It("agrees between the (u, a, t) and (u, v, t) derivations", func() {
			fromUAT := kinematics.DistanceFromUAT(u, a, t)
			fromUVT := kinematics.DistanceFromUVT(u, kinematics.EndSpeedFromUAT(u, a, t), t)
			Expect(fromUAT.Value()).To(Equal(9.0))
			Expect(fromUVT.Value()).To(Equal(9.0))
		})
		It("follows s = vt − ½at²", func() {
			Expect(kinematics.DistanceFromVAT(v, a, t).Value()).To(Equal(9.0))
		})
		It("follows s = (v² − u²)/2a", func() {
			Expect(kinematics.DistanceFromUVA(u, v, a).Value()).To(Equal(9.0))
		})
		It("follows s = vt at constant speed", func() {
			Expect(kinematics.DistanceFromVT(speed(4), secs(2.5)).Value()).To(Equal(10.0))
		})
	})

	Describe("acceleration", func() {
		It("follows a = (v − u)/t", func() {
			Expect(kinematics.AccelerationFromUVT(u, v, t).Value()).To(Equal(2.0))
		})
		It("follows a = (v² − u²)/2s", func() {
			Expect(kinematics.AccelerationFromSUV(s, u, v).Value()).To(Equal(2.0))
		})
		It("follows a = 2s/t² − 2u/t", func() {
			Expect(kinematics.AccelerationFromSUT(s, u, t).Value()).To(Equal(2.0))
		})
		It("follows a = 2(vt − s)/t²", func() {
			Expect(kinematics.AccelerationFromSVT(s, v, t).Value()).To(Equal(2.0))
		})
	})

	Describe("time", func() {
		It("follows t = 2s/(u + v)", func() {
			Expect(kinematics.TimeFromSVU(s, v, u).Value()).To(Equal(3.0))
		})
		It("follows t = (v − u)/a", func() {
			Expect(kinematics.TimeFromVUA(v, u, a).Value()).To(Equal(3.0))
		})
		It("follows the quadratic root from (a, s, u)", func() {
			Expect(kinematics.TimeFromASU(a, s, u).Value()).To(Equal(3.0))
		})
		It("follows the quadratic root from (v, a, s)", func() {
			Expect(kinematics.TimeFromVAS(v, a, s).Value()).To(Equal(3.0))
		})
		It("follows t = s/v at constant speed", func() {
			Expect(kinematics.TimeFromSV(dist(10), speed(4)).Value()).To(Equal(2.5))
		})
		It("follows v = s/t at constant speed", func() {
			Expect(kinematics.ConstSpeedFromST(dist(10), secs(4)).Value()).To(Equal(2.5))
		})
	})

	Describe("quadratic root selection", func() {
		// thrown up at 20 m/s under -10 m/s², the body is 15 m up at t = 1 and t = 3
		up, g, h := speed(20), accel(-10), dist(15)

		It("returns the first crossing only from (a, s, u)", func() {
			Expect(kinematics.TimeFromASU(g, h, up).Value()).To(BeNumerically("~", 1.0, 1e-12))
		})
		It("returns the root matching the rearrangement from (v, a, s)", func() {
			// v at t = 3 is -10 m/s
			Expect(kinematics.TimeFromVAS(speed(-10), g, h).Value()).To(BeNumerically("~", 3.0, 1e-12))
		})
	})
})

var _ = Describe("degenerate inputs", func() {
	It("yields +Inf for a = (v − u)/0 with v > u", func() {
		got := kinematics.AccelerationFromUVT(speed(1), speed(5), secs(0))
		Expect(got.IsInf(1)).To(BeTrue())
	})

	It("yields -Inf for a = (v − u)/0 with v < u", func() {
		got := kinematics.AccelerationFromUVT(speed(5), speed(1), secs(0))
		Expect(got.IsInf(-1)).To(BeTrue())
	})

	It("yields NaN for a = (v − u)/0 with v = u", func() {
		got := kinematics.AccelerationFromUVT(speed(3), speed(3), secs(0))
		Expect(got.IsNaN()).To(BeTrue())
	})

	It("yields ±Inf when dividing by zero acceleration", func() {
		Expect(kinematics.TimeFromVUA(speed(5), speed(1), accel(0)).IsInf(1)).To(BeTrue())
		Expect(kinematics.DistanceFromUVA(speed(5), speed(1), accel(0)).IsInf(-1)).To(BeTrue())
	})

	It("yields NaN for a negative radicand in v = √(u² + 2as)", func() {
		// 1 + 2·(-10)·5 < 0
		got := kinematics.EndSpeedFromSUA(dist(5), speed(1), accel(-10))
		Expect(got.IsNaN()).To(BeTrue())
	})

	It("yields NaN for a negative radicand in u = √(v² − 2as)", func() {
		got := kinematics.StartSpeedFromSVA(dist(5), speed(1), accel(10))
		Expect(got.IsNaN()).To(BeTrue())
	})

	It("yields NaN for a target the body never reaches", func() {
		got := kinematics.TimeFromASU(accel(-10), dist(100), speed(20))
		Expect(math.IsNaN(got.Value())).To(BeTrue())
	})

	It("does not reject negative time", func() {
		Expect(kinematics.EndSpeedFromUAT(speed(0), accel(2), secs(-1)).Value()).To(Equal(-2.0))
	})
})
