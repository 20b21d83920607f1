package sweep_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/madpenguin8/Compulations/formula"
	"github.com/madpenguin8/Compulations/internal/catalog"
	"github.com/madpenguin8/Compulations/internal/sweep"
)

var _ = Describe("Run", func() {
	var reg *catalog.Registry

	BeforeEach(func() {
		reg = catalog.New()
	})

	It("should space points evenly across the range", func() {
		f, _ := reg.Get("gear_speed_fpm")
		res, err := sweep.Run(f, nil, "rpm", 0, 3600, 5)

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Points).To(HaveLen(5))
		Expect(res.Points[0].X).To(Equal(0.0))
		Expect(res.Points[2].X).To(BeNumerically("~", 1800, 1e-9))
		Expect(res.Points[4].X).To(BeNumerically("~", 3600, 1e-9))
		Expect(res.Formula).To(Equal("gear_speed_fpm"))
		Expect(res.Unit).To(Equal("ft/min"))
	})

	It("should hold the other params at base values", func() {
		f, _ := reg.Get("gear_speed_fpm")
		res, err := sweep.Run(f, map[string]float64{"gear_diameter_in": 6}, "rpm", 1200, 1200, 2)

		Expect(err).NotTo(HaveOccurred())
		want := formula.GearSpeedFeetPerMinute(6, 1200)
		for _, p := range res.Points {
			Expect(p.Y).To(BeNumerically("~", want, 1e-9))
		}
	})

	It("should not modify base", func() {
		f, _ := reg.Get("gear_speed_fpm")
		base := map[string]float64{"rpm": 900}
		_, err := sweep.Run(f, base, "rpm", 0, 1, 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(base).To(Equal(map[string]float64{"rpm": 900}))
	})

	It("should coerce steps below two", func() {
		f, _ := reg.Get("gear_speed_fpm")
		for _, steps := range []int{-3, 0, 1} {
			res, err := sweep.Run(f, nil, "rpm", 10, 20, steps)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Points).To(HaveLen(2))
		}
	})

	It("should mark out of domain points invalid and continue", func() {
		f, _ := reg.Get("motor_power_kw")
		res, err := sweep.Run(f, nil, "volts", -100, 100, 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Points).To(HaveLen(3))
		Expect(res.Points[0].Valid).To(BeFalse())
		Expect(res.Points[1].Valid).To(BeFalse())
		Expect(res.Points[2].Valid).To(BeTrue())
		Expect(errors.Is(res.Points[0].Err, formula.ErrOutOfDomain)).To(BeTrue())
		Expect(res.Invalid()).To(Equal(2))
		Expect(res.Values()).To(HaveLen(1))
	})

	It("should reject unknown params", func() {
		f, _ := reg.Get("gear_speed_fpm")
		_, err := sweep.Run(f, nil, "teeth", 0, 1, 3)
		Expect(err).To(MatchError("unknown param: teeth"))
	})

	It("should abort on unknown base params", func() {
		f, _ := reg.Get("gear_speed_fpm")
		_, err := sweep.Run(f, map[string]float64{"pitch": 4}, "rpm", 0, 1, 3)
		Expect(err).To(MatchError("unknown param: pitch"))
	})
})

var _ = Describe("Result", func() {
	It("should report the range of valid points", func() {
		res := sweep.Result{Points: []sweep.Point{
			{X: 0, Y: 5, Valid: true},
			{X: 1, Valid: false},
			{X: 2, Y: -2, Valid: true},
			{X: 3, Y: 9, Valid: true},
		}}

		lo, hi, ok := res.Range()
		Expect(ok).To(BeTrue())
		Expect(lo).To(Equal(-2.0))
		Expect(hi).To(Equal(9.0))
		Expect(res.Values()).To(Equal([]float64{5, -2, 9}))
	})

	It("should report no range when nothing is valid", func() {
		res := sweep.Result{Points: []sweep.Point{{X: 0}, {X: 1}}}
		_, _, ok := res.Range()
		Expect(ok).To(BeFalse())
		Expect(res.Values()).To(BeEmpty())
	})

	It("should trend the way the physics does", func() {
		f, _ := catalog.New().Get("ambient_psia_for_altitude")
		res, err := sweep.Run(f, nil, "altitude_ft", 0, 10000, 11)
		Expect(err).NotTo(HaveOccurred())

		ys := res.Values()
		Expect(ys).To(HaveLen(11))
		for i := 1; i < len(ys); i++ {
			Expect(ys[i]).To(BeNumerically("<", ys[i-1]))
		}
	})
})
