package e2e

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/llm-d/llm-d-quantity-canon/api/v1alpha1"
	"github.com/llm-d/llm-d-quantity-canon/internal/collector"
	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/unit"
)

func spec(s string) quantityspec.Spec {
	GinkgoHelper()
	q, err := table.ParseSpec(s)
	Expect(err).NotTo(HaveOccurred(), "parsing quantity %q", s)
	return q
}

func parseUnit(s string) unit.Unit {
	GinkgoHelper()
	u, err := table.ParseUnit(s)
	Expect(err).NotTo(HaveOccurred(), "parsing unit %q", s)
	return u
}

func factor(from, to string) magnitude.Magnitude {
	GinkgoHelper()
	f, err := table.ConversionFactor(parseUnit(from), parseUnit(to))
	Expect(err).NotTo(HaveOccurred(), "converting %s to %s", from, to)
	return f
}

var _ = Describe("ISQ/SI catalog", Ordered, func() {
	Context("Build status", func() {
		It("should report every declaration", func() {
			Expect(catalog.Status.ObservedGeneration).To(Equal(catalog.Generation))
			Expect(catalog.Status.Counts).To(Equal(v1alpha1.DeclarationCounts{
				Dimensions: 4,
				Constants:  1,
				Quantities: 36,
				Prefixes:   8,
				Units:      45,
			}))
			cond := meta.FindStatusCondition(catalog.Status.Conditions, v1alpha1.TypeBuilt)
			Expect(cond).NotTo(BeNil())
			Expect(cond.Status).To(Equal(metav1.ConditionTrue))
			Expect(cond.Reason).To(Equal(v1alpha1.ReasonBuildSucceeded))
		})

		It("should export declaration metrics", func() {
			Expect(testutil.ToFloat64(metrics.Declarations.WithLabelValues(string(collector.KindUnit)))).To(Equal(45.0))
			Expect(testutil.ToFloat64(metrics.Declarations.WithLabelValues(string(collector.KindQuantity)))).To(Equal(36.0))
			n, err := testutil.GatherAndCount(registry, "quantity_canon_build_duration_seconds")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})
	})

	Context("Quantity convertibility", func() {
		It("should keep vector velocity and speed in separate kinds", func() {
			Expect(table.Convertible(spec("vector_velocity"), spec("speed"))).To(Equal(quantityspec.No))
			Expect(table.Convertible(spec("speed"), spec("vector_velocity"))).To(Equal(quantityspec.No))
		})

		It("should keep frequency and activity apart", func() {
			Expect(table.Convertible(spec("frequency"), spec("activity"))).To(Equal(quantityspec.No))
			Expect(table.Convertible(spec("activity"), spec("frequency"))).To(Equal(quantityspec.No))
		})

		It("should require an explicit conversion down the hierarchy", func() {
			Expect(table.Convertible(spec("scalar_energy_like"), spec("vector_energy_like"))).To(Equal(quantityspec.Explicit))
			Expect(table.Convertible(spec("vector_energy_like"), spec("scalar_energy_like"))).To(Equal(quantityspec.Yes))
		})

		It("should reduce dimensionless ratios from the source side only", func() {
			Expect(table.Convertible(spec("frequency*time"), spec("dimensionless"))).To(Equal(quantityspec.Yes))
			Expect(table.Convertible(spec("height/width"), spec("dimensionless"))).To(Equal(quantityspec.Yes))
			Expect(table.Convertible(spec("dimensionless"), spec("height/width"))).To(Equal(quantityspec.Explicit))
		})

		It("should match derived expressions to their named quantities", func() {
			Expect(table.Convertible(spec("length^2"), spec("area"))).To(Equal(quantityspec.Yes))
			Expect(table.Convertible(spec("area"), spec("length^2"))).To(Equal(quantityspec.Yes))
			Expect(table.Convertible(spec("area^(1/2)"), spec("length"))).To(Equal(quantityspec.Yes))
		})

		It("should find the closest common quantity", func() {
			q, err := table.CommonQuantitySpec(spec("radius"), spec("thickness"))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.String()).To(Equal("width"))
		})
	})

	Context("Units", func() {
		It("should distinguish equality from convertibility", func() {
			Expect(unit.Equal(parseUnit("m"), parseUnit("m"))).To(BeTrue())
			Expect(unit.Equal(parseUnit("m"), parseUnit("km"))).To(BeFalse())
			Expect(table.ConvertibleUnits(parseUnit("m"), parseUnit("km"))).To(BeTrue())

			Expect(unit.Equal(parseUnit("Hz"), parseUnit("Bq"))).To(BeTrue())
			Expect(table.ConvertibleUnits(parseUnit("Hz"), parseUnit("Bq"))).To(BeFalse())
		})

		It("should name both quantities when a conversion is refused", func() {
			_, err := table.ConversionFactor(parseUnit("Hz"), parseUnit("Bq"))
			Expect(err).To(MatchError(unit.ErrNotConvertible))
			Expect(err).To(MatchError(quantityspec.ErrNotConvertible))
			Expect(err.Error()).To(ContainSubstring("frequency"))
			Expect(err.Error()).To(ContainSubstring("activity"))
		})

		DescribeTable("conversion factors",
			func(from, to string, num, den int64) {
				Expect(factor(from, to).Equal(magnitude.OfRatio(num, den))).To(BeTrue(), "%s -> %s", from, to)
			},
			Entry("speed", "km/h", "m/s", int64(5), int64(18)),
			Entry("imperial length", "mi", "km", int64(25146), int64(15625)),
			Entry("volume", "l", "m^3", int64(1), int64(1000)),
			Entry("dimensionless", "‰", "%", int64(1), int64(10)),
			Entry("duration", "d", "s", int64(86400), int64(1)),
		)

		It("should decompose magnitudes for display", func() {
			d, err := table.Decompose(parseUnit("d"))
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Exp10).To(Equal(int64(2)))
			Expect(d.Numerator).To(Equal(uint64(864)))
			Expect(d.Denominator).To(Equal(uint64(1)))
			Expect(unit.Same(d.Reference, parseUnit("s"))).To(BeTrue())

			pi, ok := table.Constant("pi")
			Expect(ok).To(BeTrue())
			d, err = table.Decompose(parseUnit("deg"))
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Exp10).To(Equal(int64(-1)))
			Expect(d.Numerator).To(Equal(uint64(1)))
			Expect(d.Denominator).To(Equal(uint64(18)))
			Expect(d.Irrational.Equal(pi)).To(BeTrue())
		})

		It("should find a common unit both operands convert to in whole steps", func() {
			km, mi := parseUnit("km"), parseUnit("mi")
			c, err := table.CommonUnit(km, mi)
			Expect(err).NotTo(HaveOccurred())
			for _, u := range []unit.Unit{km, mi} {
				f, err := table.ConversionFactor(u, c)
				Expect(err).NotTo(HaveOccurred())
				Expect(f.IsIntegral()).To(BeTrue(), "%s -> %s is %s", u, c, f)
			}
			Expect(factor("km", "m").Equal(magnitude.Of(1000))).To(BeTrue())
		})
	})
})
