package kinematics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/suvat/internal/kinematics"
)

var _ = Describe("Variable", func() {
	DescribeTable("parsing",
		func(in string, want kinematics.Variable) {
			got, err := kinematics.ParseVariable(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("lower-case symbol", "v", kinematics.V),
		Entry("upper-case symbol", "S", kinematics.S),
		Entry("word", "time", kinematics.T),
		Entry("alias", "initial", kinematics.U),
	)

	It("rejects unknown symbols", func() {
		_, err := kinematics.ParseVariable("x")
		Expect(err).To(MatchError(kinematics.ErrUnknownVariable))
	})

	It("reports units", func() {
		Expect(kinematics.A.Unit()).To(Equal("m/s²"))
		Expect(kinematics.U.Unit()).To(Equal("m/s"))
		Expect(kinematics.T.String()).To(Equal("t"))
	})
})

var _ = Describe("Solve", func() {
	It("selects v = u + at from (u, a, t)", func() {
		sol, err := kinematics.Solve(kinematics.Knowns{kinematics.U: 0, kinematics.A: 2, kinematics.T: 3}, kinematics.V)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Value).To(Equal(6.0))
		Expect(sol.Equation.Formula).To(Equal("v = u + a·t"))
		Expect(sol.Degenerate()).To(BeFalse())
	})

	It("selects the radical form when time is unknown", func() {
		sol, err := kinematics.Solve(kinematics.Knowns{kinematics.S: 9, kinematics.U: 0, kinematics.A: 2}, kinematics.V)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Value).To(Equal(6.0))
		Expect(sol.Equation.Needs).To(ConsistOf(kinematics.S, kinematics.U, kinematics.A))
	})

	It("returns degenerate values without an error", func() {
		sol, err := kinematics.Solve(kinematics.Knowns{kinematics.U: 3, kinematics.V: 3, kinematics.T: 0}, kinematics.A)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(sol.Value)).To(BeTrue())
		Expect(sol.Degenerate()).To(BeTrue())
	})

	It("fails when too little is known", func() {
		_, err := kinematics.Solve(kinematics.Knowns{kinematics.U: 1}, kinematics.V)
		Expect(err).To(MatchError(kinematics.ErrUnderdetermined))

		var se *kinematics.SolveError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Want).To(Equal(kinematics.V))
	})

	It("refuses to solve a known variable", func() {
		_, err := kinematics.Solve(kinematics.Knowns{kinematics.V: 1}, kinematics.V)
		Expect(err).To(MatchError(kinematics.ErrAlreadyKnown))
	})

	It("refuses an invalid variable", func() {
		_, err := kinematics.Solve(kinematics.Knowns{}, kinematics.Variable('Q'))
		Expect(err).To(MatchError(kinematics.ErrUnknownVariable))
	})

	It("has exactly four equations per variable", func() {
		counts := map[kinematics.Variable]int{}
		for _, eq := range kinematics.Equations() {
			counts[eq.Solves]++
			Expect(eq.Needs).To(HaveLen(3))
			Expect(eq.Needs).NotTo(ContainElement(eq.Solves))
		}
		for _, v := range kinematics.Variables() {
			Expect(counts[v]).To(Equal(4), "variable %s", v)
		}
	})
})

var _ = Describe("Complete", func() {
	DescribeTable("fills all five from any three",
		func(k kinematics.Knowns) {
			out, solved, err := kinematics.Complete(k)
			Expect(err).NotTo(HaveOccurred())
			Expect(solved).To(HaveLen(2))
			Expect(out[kinematics.S]).To(BeNumerically("~", 9, 1e-9))
			Expect(out[kinematics.U]).To(BeNumerically("~", 0, 1e-9))
			Expect(out[kinematics.V]).To(BeNumerically("~", 6, 1e-9))
			Expect(out[kinematics.A]).To(BeNumerically("~", 2, 1e-9))
			Expect(out[kinematics.T]).To(BeNumerically("~", 3, 1e-9))
		},
		Entry("u, a, t", kinematics.Knowns{kinematics.U: 0, kinematics.A: 2, kinematics.T: 3}),
		Entry("s, u, v", kinematics.Knowns{kinematics.S: 9, kinematics.U: 0, kinematics.V: 6}),
		Entry("s, a, t", kinematics.Knowns{kinematics.S: 9, kinematics.A: 2, kinematics.T: 3}),
		Entry("v, a, s", kinematics.Knowns{kinematics.V: 6, kinematics.A: 2, kinematics.S: 9}),
		Entry("u, v, t", kinematics.Knowns{kinematics.U: 0, kinematics.V: 6, kinematics.T: 3}),
	)

	It("does not modify its input", func() {
		k := kinematics.Knowns{kinematics.U: 0, kinematics.A: 2, kinematics.T: 3}
		_, _, err := kinematics.Complete(k)
		Expect(err).NotTo(HaveOccurred())
		Expect(k).To(HaveLen(3))
	})

	It("ignores keys that are not SUVAT variables", func() {
		k := kinematics.Knowns{kinematics.U: 0, kinematics.A: 2, kinematics.Variable('Q'): 1, kinematics.Variable('R'): 1, kinematics.Variable('X'): 1}
		_, _, err := kinematics.Complete(k)
		Expect(err).To(MatchError(kinematics.ErrUnderdetermined))

		k[kinematics.T] = 3
		out, solved, err := kinematics.Complete(k)
		Expect(err).NotTo(HaveOccurred())
		Expect(solved).To(HaveLen(2))
		Expect(out).To(HaveKeyWithValue(kinematics.V, 6.0))
		Expect(out).To(HaveKeyWithValue(kinematics.S, 9.0))
	})

	It("fails with only two knowns", func() {
		_, _, err := kinematics.Complete(kinematics.Knowns{kinematics.U: 0, kinematics.A: 2})
		Expect(err).To(MatchError(kinematics.ErrUnderdetermined))
	})
})

var _ = Describe("Check", func() {
	It("finds a consistent motion consistent", func() {
		res, err := kinematics.Check(kinematics.Knowns{
			kinematics.S: 9, kinematics.U: 0, kinematics.V: 6, kinematics.A: 2, kinematics.T: 3,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveLen(len(kinematics.Equations())))
		Expect(kinematics.Consistent(res, 1e-9)).To(BeTrue())
	})

	It("ranks the worst equation first", func() {
		res, err := kinematics.Check(kinematics.Knowns{
			kinematics.S: 10, kinematics.U: 0, kinematics.V: 6, kinematics.A: 2, kinematics.T: 3,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(kinematics.Consistent(res, 1e-9)).To(BeFalse())
		Expect(res[0].Error()).To(BeNumerically(">=", res[len(res)-1].Error()))
	})

	It("treats NaN residuals as inconsistent", func() {
		res, err := kinematics.Check(kinematics.Knowns{
			kinematics.S: 0, kinematics.U: 0, kinematics.V: 0, kinematics.A: 0, kinematics.T: 0,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(res[0].Error())).To(BeTrue())
		Expect(kinematics.Consistent(res, 1)).To(BeFalse())
	})

	It("requires all five", func() {
		_, err := kinematics.Check(kinematics.Knowns{kinematics.S: 1})
		Expect(err).To(MatchError(kinematics.ErrIncomplete))
	})
})
