package quantityspec_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

var _ = Describe("Spec algebra", func() {
	It("normalizes products", func() {
		Expect(quantityspec.Mul(length, length).String()).To(Equal("length^2"))
		Expect(quantityspec.Div(quantityspec.Mul(mass, sq(length)), sq(isqTime)).String()).To(Equal("length^2*mass/time^2"))
		Expect(quantityspec.Inverse(isqTime).String()).To(Equal("1/time"))
		Expect(quantityspec.Inverse(quantityspec.Mul(length, mass)).String()).To(Equal("1/(length*mass)"))
		Expect(quantityspec.Sqrt(area).String()).To(Equal("area^(1/2)"))
	})

	It("collapses to named specs and dimensionless", func() {
		Expect(quantityspec.Equal(quantityspec.Pow(quantityspec.Sqrt(area), ratio.Int(2)), area)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.Div(quantityspec.Mul(length, isqTime), isqTime), length)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.Mul(speed, quantityspec.Inverse(speed)), quantityspec.Dimensionless)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.Pow(speed, ratio.Zero), quantityspec.Dimensionless)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.Pow(quantityspec.Dimensionless, ratio.Int(3)), quantityspec.Dimensionless)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.Pow(speed, ratio.One), speed)).To(BeTrue())
	})

	It("multiplies any number of specs", func() {
		Expect(quantityspec.Equal(quantityspec.Product(), quantityspec.Dimensionless)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.Product(width), width)).To(BeTrue())
		Expect(quantityspec.Product(length, length, length).String()).To(Equal("length^3"))
		Expect(quantityspec.Equal(quantityspec.Cbrt(quantityspec.Product(length, length, length)), length)).To(BeTrue())
	})

	It("tracks dimensions", func() {
		Expect(energy.Dimension().String()).To(Equal("L^2*M*T^-2"))
		Expect(frequency.Dimension().String()).To(Equal("T^-1"))
		Expect(quantityspec.Sqrt(area).Dimension()).To(Equal(quantityspec.BaseDimension("L")))
		Expect(angularMeasure.Dimension().IsOne()).To(BeTrue())
	})

	It("keeps kinds only when every operand is a kind", func() {
		k := quantityspec.Mul(quantityspec.KindOf(length), quantityspec.KindOf(length))
		Expect(k).To(BeAssignableToTypeOf(quantityspec.Kind{}))
		Expect(k.String()).To(Equal("kind_of<length^2>"))
		Expect(quantityspec.Mul(quantityspec.KindOf(length), width)).To(BeAssignableToTypeOf(quantityspec.Derived{}))
		Expect(quantityspec.Pow(quantityspec.KindOf(isqTime), ratio.Int(-1)).String()).To(Equal("kind_of<1/time>"))
	})

	It("only wraps kind-tree roots as kinds", func() {
		Expect(func() { quantityspec.KindOf(width) }).To(Panic())
		Expect(func() { quantityspec.KindOf(angularMeasure) }).NotTo(Panic())
		Expect(quantityspec.KindOf(quantityspec.KindOf(length))).To(Equal(quantityspec.KindOf(length)))
	})

	DescribeTable("complexity",
		func(q quantityspec.Spec, want int) {
			Expect(q.Complexity()).To(Equal(want))
		},
		Entry("base quantity", length, 1),
		Entry("child of a base quantity", width, 1),
		Entry("area", area, 2),
		Entry("speed", speed, 3),
		Entry("velocity", velocity, 3),
		Entry("acceleration", acceleration, 5),
		Entry("force", force, 7),
		Entry("moment of force", momentOfForce, 9),
		Entry("torque inherits its parent equation", torque, 9),
		Entry("force*length", quantityspec.Mul(force, length), 8),
	)

	DescribeTable("character",
		func(q quantityspec.Spec, want quantityspec.Character) {
			Expect(q.Character()).To(Equal(want))
		},
		Entry("length", length, quantityspec.Scalar),
		Entry("displacement", displacement, quantityspec.Vector),
		Entry("velocity from its equation", velocity, quantityspec.Vector),
		Entry("acceleration", acceleration, quantityspec.Vector),
		Entry("force", force, quantityspec.Vector),
		Entry("torque override", torque, quantityspec.Scalar),
		Entry("speed", speed, quantityspec.Scalar),
		Entry("vector over vector", quantityspec.Div(displacement, positionVector), quantityspec.Scalar),
	)
})

var _ = Describe("Hierarchy", func() {
	It("measures paths to the root", func() {
		Expect(quantityspec.PathLength(length)).To(Equal(1))
		Expect(quantityspec.PathLength(radius)).To(Equal(3))
		Expect(quantityspec.PathLength(quantityspec.Mul(length, length))).To(Equal(1))
	})

	It("finds common bases", func() {
		Expect(quantityspec.Equal(quantityspec.CommonBase(height, radius), length)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.CommonBase(radius, width), width)).To(BeTrue())
		Expect(quantityspec.CommonBase(length, isqTime)).To(BeNil())
		Expect(quantityspec.HaveCommonBase(potentialEnergy, kineticEnergy)).To(BeTrue())
		Expect(quantityspec.HaveCommonBase(frequency, activity)).To(BeFalse())
	})

	It("relates children to ancestors", func() {
		Expect(quantityspec.IsChildOf(radius, length)).To(BeTrue())
		Expect(quantityspec.IsChildOf(radius, radius)).To(BeTrue())
		Expect(quantityspec.IsChildOf(length, radius)).To(BeFalse())
		Expect(quantityspec.IsChildOf(height, width)).To(BeFalse())
	})

	It("finds kind-tree roots", func() {
		Expect(quantityspec.Equal(quantityspec.KindTreeRoot(radius), length)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.KindTreeRoot(angularMeasure), angularMeasure)).To(BeTrue())
		Expect(quantityspec.Equal(quantityspec.KindTreeRoot(quantityspec.KindOf(speed)), speed)).To(BeTrue())
		Expect(quantityspec.KindTreeRoot(quantityspec.Div(width, periodDuration)).String()).To(Equal("length/time"))
		Expect(quantityspec.GetKind(velocity)).To(Equal(quantityspec.KindOf(speed)))
	})

	It("knows which quantities introduce an equation", func() {
		Expect(quantityspec.DefinesEquation(velocity)).To(BeTrue())
		Expect(quantityspec.DefinesEquation(area)).To(BeTrue())
		Expect(quantityspec.DefinesEquation(torque)).To(BeFalse())
		Expect(quantityspec.DefinesEquation(length)).To(BeFalse())
		Expect(quantityspec.Equal(torque.Equation(), momentOfForce.Equation())).To(BeTrue())
	})
})

var _ = Describe("Declarations", func() {
	It("rejects empty names", func() {
		_, err := quantityspec.NewBase("", quantityspec.BaseDimension("L"))
		Expect(errors.Is(err, quantityspec.ErrEmptyName)).To(BeTrue())
	})

	It("rejects an equation on a base quantity", func() {
		_, err := quantityspec.NewBase("bogus", quantityspec.BaseDimension("L"), quantityspec.WithEquation(area))
		Expect(errors.Is(err, quantityspec.ErrUnexpectedEquation)).To(BeTrue())
	})

	It("requires a derived equation for a root", func() {
		_, err := quantityspec.NewDerived("bogus", length)
		Expect(errors.Is(err, quantityspec.ErrNamedEquation)).To(BeTrue())
		_, err = quantityspec.NewDerived("bogus", nil)
		Expect(errors.Is(err, quantityspec.ErrNilEquation)).To(BeTrue())
	})

	It("requires a parent for a child", func() {
		_, err := quantityspec.NewChild("orphan", nil)
		Expect(errors.Is(err, quantityspec.ErrNilParent)).To(BeTrue())
	})

	It("rejects a child equation of another dimension", func() {
		_, err := quantityspec.NewChild("bogus", speed, quantityspec.WithEquation(length))
		Expect(errors.Is(err, quantityspec.ErrDimensionMismatch)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("speed"))
	})

	It("rejects a child equation that cannot convert to its parent", func() {
		_, err := quantityspec.NewChild("bogus", frequency, quantityspec.WithEquation(activity))
		Expect(errors.Is(err, quantityspec.ErrEquationNotConvertible)).To(BeTrue())
	})

	It("panics from Must on error", func() {
		Expect(func() { quantityspec.Must(quantityspec.NewBase("", quantityspec.DimensionOne)) }).To(Panic())
	})
})
