package quantityspec_test

import (
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/ratio"
)

func sq(q quantityspec.Spec) quantityspec.Spec { return quantityspec.Pow(q, ratio.Int(2)) }

// A slice of the ISQ hierarchy, enough to exercise every convertibility rule.
var (
	length  = quantityspec.Must(quantityspec.NewBase("length", quantityspec.BaseDimension("L")))
	mass    = quantityspec.Must(quantityspec.NewBase("mass", quantityspec.BaseDimension("M")))
	isqTime = quantityspec.Must(quantityspec.NewBase("time", quantityspec.BaseDimension("T")))

	width            = quantityspec.Must(quantityspec.NewChild("width", length))
	height           = quantityspec.Must(quantityspec.NewChild("height", length))
	radius           = quantityspec.Must(quantityspec.NewChild("radius", width))
	arcLength        = quantityspec.Must(quantityspec.NewChild("arc_length", length))
	positionVector   = quantityspec.Must(quantityspec.NewChild("position_vector", length, quantityspec.WithCharacter(quantityspec.Vector)))
	displacement     = quantityspec.Must(quantityspec.NewChild("displacement", length, quantityspec.WithCharacter(quantityspec.Vector)))
	periodDuration   = quantityspec.Must(quantityspec.NewChild("period_duration", isqTime))
	frequency        = quantityspec.Must(quantityspec.NewDerived("frequency", quantityspec.Inverse(periodDuration)))
	activity         = quantityspec.Must(quantityspec.NewDerived("activity", quantityspec.Inverse(isqTime)))
	area             = quantityspec.Must(quantityspec.NewDerived("area", sq(length)))
	speed            = quantityspec.Must(quantityspec.NewDerived("speed", quantityspec.Div(length, isqTime)))
	velocity         = quantityspec.Must(quantityspec.NewChild("velocity", speed, quantityspec.WithEquation(quantityspec.Div(displacement, isqTime))))
	rateOfClimb      = quantityspec.Must(quantityspec.NewChild("rate_of_climb", speed, quantityspec.WithEquation(quantityspec.Div(height, isqTime))))
	acceleration     = quantityspec.Must(quantityspec.NewDerived("acceleration", quantityspec.Div(velocity, isqTime)))
	force            = quantityspec.Must(quantityspec.NewDerived("force", quantityspec.Mul(mass, acceleration)))
	momentOfForce    = quantityspec.Must(quantityspec.NewDerived("moment_of_force", quantityspec.Mul(positionVector, force)))
	torque           = quantityspec.Must(quantityspec.NewChild("torque", momentOfForce, quantityspec.WithCharacter(quantityspec.Scalar)))
	energy           = quantityspec.Must(quantityspec.NewDerived("energy", quantityspec.Div(quantityspec.Mul(mass, sq(length)), sq(isqTime))))
	mechanicalEnergy = quantityspec.Must(quantityspec.NewChild("mechanical_energy", energy))
	potentialEnergy  = quantityspec.Must(quantityspec.NewChild("potential_energy", mechanicalEnergy))
	kineticEnergy    = quantityspec.Must(quantityspec.NewChild("kinetic_energy", mechanicalEnergy, quantityspec.WithEquation(quantityspec.Mul(mass, sq(speed)))))
	angularMeasure   = quantityspec.Must(quantityspec.NewChild("angular_measure", quantityspec.Dimensionless, quantityspec.WithEquation(quantityspec.Div(arcLength, radius)), quantityspec.AsKind()))
)
