package catalog_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/madpenguin8/Compulations/formula"
	"github.com/madpenguin8/Compulations/internal/catalog"
)

var _ = Describe("Registry", func() {
	var reg *catalog.Registry

	BeforeEach(func() {
		reg = catalog.New()
	})

	It("should list every formula in sorted order", func() {
		names := reg.List()

		Expect(names).To(HaveLen(19))
		Expect(names).To(ContainElements(
			"motor_power_kw", "oil_flooded_screw_operating_temp_f",
			"scfm_from_acfm", "acfm_from_scfm", "oil_carryover_ppm",
		))
		for i := 1; i < len(names); i++ {
			Expect(names[i-1] < names[i]).To(BeTrue())
		}
	})

	It("should reject unknown formulas", func() {
		_, err := reg.Get("flux_capacitor")

		Expect(err).To(MatchError("unknown formula: flux_capacitor"))
	})

	It("should evaluate every formula at its defaults", func() {
		for _, f := range reg.Formulas() {
			v, err := f.Evaluate(nil)

			Expect(err).ToNot(HaveOccurred(), f.Name)
			Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeFalse(), f.Name)
			if f.Name != "altitude_feet_from_psia" {
				Expect(v).ToNot(BeZero(), f.Name)
			}
		}
	})

	Context("when evaluating a formula", func() {
		var f *catalog.Formula

		BeforeEach(func() {
			var err error
			f, err = reg.Get("motor_power_kw")
			Expect(err).ToNot(HaveOccurred())
		})

		It("should match the library function", func() {
			v, err := f.Evaluate(map[string]float64{"volts": 480, "amps": 50, "power_factor": 0.85})

			Expect(err).ToNot(HaveOccurred())
			expected, _ := formula.MotorPowerKW(480, 50, 0.85)
			Expect(v).To(Equal(expected))
		})

		It("should fill missing params from defaults", func() {
			v, err := f.Evaluate(map[string]float64{"amps": 50})

			Expect(err).ToNot(HaveOccurred())
			expected, _ := formula.MotorPowerKW(460, 50, 0.85)
			Expect(v).To(BeNumerically("~", expected, 1e-12))
		})

		It("should reject unknown params", func() {
			_, err := f.Evaluate(map[string]float64{"amps": 50, "horsepower": 10})

			Expect(err).To(MatchError("unknown param: horsepower"))
		})

		It("should pass domain errors through", func() {
			v, err := f.Evaluate(map[string]float64{"amps": 0})

			Expect(v).To(BeZero())
			Expect(err).To(MatchError(formula.ErrOutOfDomain))
		})

		It("should describe its params", func() {
			Expect(f.ParamNames()).To(Equal([]string{"volts", "amps", "power_factor"}))
			Expect(f.HasParam("amps")).To(BeTrue())
			Expect(f.HasParam("ambient_psia")).To(BeFalse())
			Expect(f.Defaults()).To(HaveKeyWithValue("power_factor", 0.85))
		})
	})

	It("should route condition params into the flow conversion", func() {
		f, err := reg.Get("acfm_from_scfm")
		Expect(err).ToNot(HaveOccurred())

		params := map[string]float64{
			"scfm": 250, "site_psia": 12.1, "site_temp_f": 95, "site_rh": 0.6, "inlet_psia": 11.9,
		}
		v, err := f.Evaluate(params)
		Expect(err).ToNot(HaveOccurred())

		c := formula.StandardConditions()
		c.SitePSIA, c.SiteTempF, c.SiteRH, c.InletPSIA = 12.1, 95, 0.6, 11.9
		expected, _ := c.ACFMFromSCFM(250)
		Expect(v).To(BeNumerically("~", expected, 1e-9))
	})

	It("should round trip the two flow conversions", func() {
		toActual, _ := reg.Get("acfm_from_scfm")
		toStandard, _ := reg.Get("scfm_from_acfm")
		site := map[string]float64{"site_psia": 12.5, "site_temp_f": 80, "site_rh": 0.4, "inlet_psia": 12.3}

		actual, err := toActual.Evaluate(merge(site, "scfm", 500))
		Expect(err).ToNot(HaveOccurred())
		standard, err := toStandard.Evaluate(merge(site, "acfm", actual))
		Expect(err).ToNot(HaveOccurred())
		Expect(standard).To(BeNumerically("~", 500, 1e-9))
	})
})

func merge(base map[string]float64, name string, v float64) map[string]float64 {
	out := map[string]float64{name: v}
	for k, val := range base {
		out[k] = val
	}
	return out
}

var _ = Describe("Convert", func() {
	var reg *catalog.Registry

	BeforeEach(func() {
		reg = catalog.New()
	})

	DescribeTable("converting between units",
		func(v float64, from, to string, expected float64) {
			got, err := reg.Convert(v, from, to)

			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(BeNumerically("~", expected, 1e-6*math.Max(1, math.Abs(expected))))
		},
		Entry("boiling point", 212.0, "F", "C", 100.0),
		Entry("absolute zero", 0.0, "K", "R", 0.0),
		Entry("rankine to kelvin", 491.67, "R", "K", 273.15),
		Entry("psig alias", 14.6959488, "psig", "kPa", 101.325),
		Entry("bar to psi", 1.0, "bar", "psi", 14.5037738),
		Entry("atmosphere in mmHg", 14.6959488, "psi", "mmHg", 760.0),
		Entry("mm to inches", 25.4, "mm", "in", 1.0),
		Entry("meters to feet", 1.0, "m", "ft", 3.2808399),
		Entry("gallons to cubic feet", 7.48051948, "gallons", "ft3", 1.0),
		Entry("liters to gallons", 3.78541178, "L", "gal", 1.0),
		Entry("horsepower", 1.0, "hp", "kW", 0.745699872),
		Entry("peak volts", 120.0, "vrms", "vpeak", 120*math.Sqrt2),
		Entry("wye delta amps", 100.0, "wyedelta", "fla", 100*math.Sqrt(3)),
		Entry("metric flow", 1.0, "m3/min", "cfm", 35.3146667),
		Entry("force", 1.0, "lbf", "N", 4.44822162825),
		Entry("identity", 42.0, "psi", "psia", 42.0),
	)

	It("should reject unknown units", func() {
		_, err := reg.Convert(1, "furlong", "ft")

		Expect(err).To(MatchError("unknown unit: furlong"))
	})

	It("should reject conversions across dimensions", func() {
		_, err := reg.Convert(1, "psi", "ft")

		Expect(err).To(MatchError("no conversion from psi to ft"))
	})

	It("should group units by dimension", func() {
		all := reg.Units()

		Expect(all).To(ContainElements("f", "psi", "gal", "m3min", "n"))
		dim, ok := reg.Dimension("degF")
		Expect(ok).To(BeTrue())
		Expect(dim).To(Equal("temperature"))
	})
})
