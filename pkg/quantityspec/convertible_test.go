package quantityspec_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

var _ = Describe("Convertible", func() {
	DescribeTable("classifies conversions",
		func(from, to quantityspec.Spec, want quantityspec.Convertibility) {
			Expect(quantityspec.Convertible(from, to)).To(Equal(want), "%s -> %s", from, to)
		},
		Entry("length*length to area", quantityspec.Mul(length, length), area, quantityspec.Yes),
		Entry("area to length*length", area, quantityspec.Mul(length, length), quantityspec.Yes),
		Entry("sqrt(area) to length", quantityspec.Sqrt(area), length, quantityspec.Yes),
		Entry("length to sqrt(area)", length, quantityspec.Sqrt(area), quantityspec.Yes),
		Entry("1/period_duration to frequency", quantityspec.Inverse(periodDuration), frequency, quantityspec.Yes),
		Entry("velocity to speed", velocity, speed, quantityspec.Yes),
		Entry("rate_of_climb to speed", rateOfClimb, speed, quantityspec.Yes),
		Entry("length/time to speed", quantityspec.Div(length, isqTime), speed, quantityspec.Yes),
		Entry("speed to length/time", speed, quantityspec.Div(length, isqTime), quantityspec.Yes),
		Entry("width to length", width, length, quantityspec.Yes),
		Entry("radius to length", radius, length, quantityspec.Yes),
		Entry("mass*length^2/time^2 to energy", quantityspec.Div(quantityspec.Mul(mass, sq(length)), sq(isqTime)), energy, quantityspec.Yes),
		Entry("mass*speed^2 to kinetic_energy", quantityspec.Mul(mass, sq(speed)), kineticEnergy, quantityspec.Yes),
		Entry("kind_of<length> to width", quantityspec.KindOf(length), width, quantityspec.Yes),
		Entry("dimensionless to angular_measure", quantityspec.Dimensionless, angularMeasure, quantityspec.Yes),
		Entry("angular_measure to dimensionless", angularMeasure, quantityspec.Dimensionless, quantityspec.Yes),
		Entry("frequency*time to dimensionless", quantityspec.Mul(frequency, isqTime), quantityspec.Dimensionless, quantityspec.Yes),
		Entry("height/width to dimensionless", quantityspec.Div(height, width), quantityspec.Dimensionless, quantityspec.Yes),
		Entry("length/radius to angular_measure", quantityspec.Div(length, radius), angularMeasure, quantityspec.Yes),

		Entry("1/time to frequency", quantityspec.Inverse(isqTime), frequency, quantityspec.Explicit),
		Entry("length to width", length, width, quantityspec.Explicit),
		Entry("speed to velocity", speed, velocity, quantityspec.Explicit),
		Entry("length/time to velocity", quantityspec.Div(length, isqTime), velocity, quantityspec.Explicit),
		Entry("force*length to torque", quantityspec.Mul(force, length), torque, quantityspec.Explicit),
		Entry("energy to kinetic_energy", energy, kineticEnergy, quantityspec.Explicit),
		Entry("dimensionless to height/width", quantityspec.Dimensionless, quantityspec.Div(height, width), quantityspec.Explicit),
		Entry("dimensionless to frequency*time", quantityspec.Dimensionless, quantityspec.Mul(frequency, isqTime), quantityspec.Explicit),

		Entry("height to width", height, width, quantityspec.Cast),
		Entry("width to height", width, height, quantityspec.Cast),
		Entry("height/time to velocity", quantityspec.Div(height, isqTime), velocity, quantityspec.Cast),
		Entry("potential_energy to kinetic_energy", potentialEnergy, kineticEnergy, quantityspec.Cast),

		Entry("frequency to activity", frequency, activity, quantityspec.No),
		Entry("activity to frequency", activity, frequency, quantityspec.No),
		Entry("frequency to kind_of<activity>", frequency, quantityspec.KindOf(activity), quantityspec.No),
		Entry("length to time", length, isqTime, quantityspec.No),
		Entry("speed to frequency", speed, frequency, quantityspec.No),
	)

	It("never mixes different dimensions", func() {
		for _, q := range []quantityspec.Spec{length, area, speed, energy, frequency} {
			Expect(quantityspec.Convertible(q, mass)).To(Equal(quantityspec.No))
		}
	})

	It("is reflexive", func() {
		for _, q := range []quantityspec.Spec{length, width, speed, velocity, torque, quantityspec.Div(length, isqTime), quantityspec.KindOf(length)} {
			Expect(quantityspec.Convertible(q, q)).To(Equal(quantityspec.Yes))
		}
	})

	Context("with worked scenarios", func() {
		It("keeps a scalar speed and an independently defined vector velocity apart", func() {
			vectorVelocity := quantityspec.Must(quantityspec.NewDerived("vector_velocity", quantityspec.Div(positionVector, periodDuration)))
			Expect(quantityspec.Convertible(speed, vectorVelocity)).To(Equal(quantityspec.No))
			Expect(quantityspec.Convertible(vectorVelocity, speed)).To(Equal(quantityspec.No))
		})

		It("keeps frequency and activity apart", func() {
			Expect(quantityspec.Castable(frequency, activity)).To(BeFalse())
			Expect(quantityspec.Interconvertible(frequency, activity)).To(BeFalse())
		})

		It("requires an explicit conversion into a character-forced refinement", func() {
			x := quantityspec.Must(quantityspec.NewDerived("x", quantityspec.Div(quantityspec.Mul(mass, sq(length)), sq(isqTime))))
			y := quantityspec.Must(quantityspec.NewChild("y", x, quantityspec.WithCharacter(quantityspec.Vector)))
			Expect(quantityspec.Convertible(x, y)).To(Equal(quantityspec.Explicit))
			Expect(quantityspec.Convertible(y, x)).To(Equal(quantityspec.Yes))
		})

		It("matches pow<2>(length) against area", func() {
			Expect(quantityspec.Interconvertible(quantityspec.Pow(length, ratio.Int(2)), area)).To(BeTrue())
			Expect(quantityspec.ImplicitlyConvertible(quantityspec.Sqrt(area), length)).To(BeTrue())
		})
	})

	Context("predicates", func() {
		It("orders the results", func() {
			Expect(quantityspec.ImplicitlyConvertible(length, width)).To(BeFalse())
			Expect(quantityspec.ExplicitlyConvertible(length, width)).To(BeTrue())
			Expect(quantityspec.ExplicitlyConvertible(height, width)).To(BeFalse())
			Expect(quantityspec.Castable(height, width)).To(BeTrue())
			Expect(quantityspec.Interconvertible(quantityspec.Mul(length, length), area)).To(BeTrue())
		})
	})
})

var _ = Describe("CommonQuantitySpec", func() {
	DescribeTable("finds the common spec",
		func(want quantityspec.Spec, qs ...quantityspec.Spec) {
			got, err := quantityspec.CommonQuantitySpec(qs...)
			Expect(err).NotTo(HaveOccurred())
			Expect(quantityspec.Equal(got, want)).To(BeTrue(), "got %s, want %s", got, want)
		},
		Entry("identical specs", width, width, width),
		Entry("siblings share their parent", length, width, height),
		Entry("child and parent", width, radius, width),
		Entry("a kind gives way to a concrete spec", width, quantityspec.KindOf(length), width),
		Entry("a derived spec gives way to the named spec it converts to", area, quantityspec.Mul(length, length), area),
		Entry("a nested kind is kept", angularMeasure, quantityspec.Dimensionless, angularMeasure),
		Entry("three operands fold left", length, radius, height, width),
	)

	It("fails for unrelated kinds", func() {
		_, err := quantityspec.CommonQuantitySpec(frequency, activity)
		Expect(errors.Is(err, quantityspec.ErrNoCommonQuantitySpec)).To(BeTrue())
	})

	It("needs an operand", func() {
		_, err := quantityspec.CommonQuantitySpec()
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Check", func() {
	It("accepts conversions at least as strong as required", func() {
		Expect(quantityspec.Check(width, length, quantityspec.Yes)).To(Succeed())
		Expect(quantityspec.Check(length, width, quantityspec.Explicit)).To(Succeed())
		Expect(quantityspec.Check(height, width, quantityspec.Cast)).To(Succeed())
	})

	It("names both specs when rejecting", func() {
		err := quantityspec.Check(frequency, activity, quantityspec.Cast)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, quantityspec.ErrNotConvertible)).To(BeTrue())

		var convErr *quantityspec.ConversionError
		Expect(errors.As(err, &convErr)).To(BeTrue())
		Expect(convErr.Got).To(Equal(quantityspec.No))
		Expect(err.Error()).To(ContainSubstring("frequency"))
		Expect(err.Error()).To(ContainSubstring("activity"))
		Expect(err.Error()).To(ContainSubstring("T^-1"))
	})

	It("reports a dimension mismatch", func() {
		err := quantityspec.Check(length, isqTime, quantityspec.Yes)
		Expect(err).To(MatchError(ContainSubstring("dimensions differ")))
	})
})
