package core

import (
	"context"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-quantity-canon/internal/expr"
	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/unit"
)

var _ = Describe("Table", func() {
	var t *Table

	BeforeEach(func() {
		var err error
		t, err = Build(context.Background(), newCatalog(), WithCacheSize(64))
		Expect(err).NotTo(HaveOccurred())
	})

	spec := func(s string) quantityspec.Spec {
		GinkgoHelper()
		q, err := t.ParseSpec(s)
		Expect(err).NotTo(HaveOccurred())
		return q
	}
	u := func(s string) unit.Unit {
		GinkgoHelper()
		v, err := t.ParseUnit(s)
		Expect(err).NotTo(HaveOccurred())
		return v
	}

	Describe("ParseSpec", func() {
		It("normalizes expressions", func() {
			Expect(spec("length*length").String()).To(Equal("length^2"))
			Expect(spec("1/time").String()).To(Equal("1/time"))
			Expect(spec("dimensionless")).To(BeIdenticalTo(quantityspec.Dimensionless))
			Expect(spec("kind_of<length>").String()).To(Equal("kind_of<length>"))
		})

		It("rejects bad expressions", func() {
			_, err := t.ParseSpec("furlong")
			Expect(err).To(MatchError(errUnknown))
			_, err = t.ParseSpec("2*length")
			Expect(err).To(MatchError(errNumberInSpec))
			_, err = t.ParseSpec("length^")
			Expect(err).To(MatchError(expr.ErrSyntax))
			_, err = t.ParseSpec("kind_of<width>")
			Expect(err).To(MatchError(errNotAKindRoot))
		})
	})

	Describe("ParseUnit", func() {
		It("orders constant units first", func() {
			Expect(u("Hz*[g]").String()).To(Equal("[g]*Hz"))
			Expect(u("km/h").String()).To(Equal("km/h"))
		})

		It("rejects unknown units", func() {
			_, err := t.ParseUnit("furlong")
			Expect(err).To(MatchError(errUnknown))
		})
	})

	Describe("ParseMagnitude", func() {
		It("resolves numbers and constants", func() {
			m, err := t.ParseMagnitude("10^-3")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Equal(magnitude.OfRatio(1, 1000))).To(BeTrue())

			pi, _ := t.Constant("pi")
			m, err = t.ParseMagnitude("pi/180")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Equal(pi.Div(magnitude.Of(180)))).To(BeTrue())
		})
	})

	DescribeTable("Convertible",
		func(from, to string, want quantityspec.Convertibility) {
			Expect(t.Convertible(spec(from), spec(to))).To(Equal(want), "%s -> %s", from, to)
		},
		Entry(nil, "length*length", "area", quantityspec.Yes),
		Entry(nil, "1/period_duration", "frequency", quantityspec.Yes),
		Entry(nil, "velocity", "speed", quantityspec.Yes),
		Entry(nil, "kind_of<length>", "width", quantityspec.Yes),
		Entry(nil, "angular_measure", "dimensionless", quantityspec.Yes),
		Entry(nil, "1/time", "frequency", quantityspec.Explicit),
		Entry(nil, "speed", "velocity", quantityspec.Explicit),
		Entry(nil, "height", "width", quantityspec.Cast),
		Entry(nil, "frequency", "activity", quantityspec.No),
		Entry(nil, "length", "time", quantityspec.No),
	)

	It("memoises convertibility", func() {
		t.Convertible(spec("height"), spec("width"))
		t.Convertible(spec("height"), spec("width"))
		t.Convertible(spec("width"), spec("height"))
		Expect(t.memo.Len()).To(Equal(2))
		c, ok := t.memo.Get(specPair{from: "height", to: "width"})
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(quantityspec.Cast))
	})

	It("is safe for concurrent queries", func() {
		from, to := spec("speed"), spec("velocity")
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(t.Convertible(from, to)).To(Equal(quantityspec.Explicit))
			}()
		}
		wg.Wait()
	})

	Describe("unit queries", func() {
		It("converts between units", func() {
			f, err := t.ConversionFactor(u("km/h"), u("m/s"))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Equal(magnitude.OfRatio(5, 18))).To(BeTrue())

			f, err = t.ConversionFactor(u("ft"), u("m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Equal(magnitude.OfRatio(381, 1250))).To(BeTrue())

			f, err = t.ConversionFactor(u("[g]"), u("m/s^2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Equal(magnitude.OfRatio(980665, 100000))).To(BeTrue())
		})

		It("keeps units of different kinds apart", func() {
			Expect(t.ConvertibleUnits(u("Hz"), u("1/s"))).To(BeTrue())
			Expect(t.ConvertibleUnits(u("Hz"), u("Bq"))).To(BeFalse())

			_, err := t.ConversionFactor(u("Hz"), u("Bq"))
			Expect(err).To(MatchError(unit.ErrNotConvertible))
			Expect(errors.Is(err, quantityspec.ErrNotConvertible)).To(BeTrue())
		})

		It("finds common units", func() {
			got, err := t.CommonUnit(u("km"), u("ft"), u("m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(unit.Same(got, unit.Scale(magnitude.OfRatio(1, 1250), u("m")))).To(BeTrue(), "got %s", got)

			got, err = t.CommonUnit(u("deg"), u("rad"))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeAssignableToTypeOf(unit.Unresolved{}))

			_, err = t.CommonUnit(u("m"), u("s"))
			Expect(err).To(MatchError(unit.ErrNotConvertible))
		})

		It("decomposes units", func() {
			d, err := t.Decompose(u("deg"))
			Expect(err).NotTo(HaveOccurred())
			pi, _ := t.Constant("pi")
			Expect(d.Exp10).To(Equal(int64(-1)))
			Expect(d.Numerator).To(Equal(uint64(1)))
			Expect(d.Denominator).To(Equal(uint64(18)))
			Expect(d.Irrational.Equal(pi)).To(BeTrue())
			Expect(unit.Same(d.Reference, u("rad"))).To(BeTrue())
		})
	})

	Describe("CommonQuantitySpec", func() {
		It("finds the closest common spec", func() {
			q, err := t.CommonQuantitySpec(spec("radius"), spec("width"))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.String()).To(Equal("width"))

			q, err = t.CommonQuantitySpec(spec("width"), spec("height"))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.String()).To(Equal("length"))
		})

		It("fails for unrelated kinds", func() {
			_, err := t.CommonQuantitySpec(spec("frequency"), spec("activity"))
			Expect(err).To(MatchError(quantityspec.ErrNoCommonQuantitySpec))
		})
	})
})
