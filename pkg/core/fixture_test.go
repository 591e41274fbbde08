package core

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/llm-d/llm-d-quantity-canon/api/v1alpha1"
)

// newCatalog returns a slice of the ISQ and SI. Dependents are declared
// before their dependencies on purpose.
func newCatalog() *v1alpha1.QuantityCatalog {
	return &v1alpha1.QuantityCatalog{
		ObjectMeta: metav1.ObjectMeta{Name: "isq-si", Generation: 2},
		Spec: v1alpha1.QuantityCatalogSpec{
			Dimensions: []v1alpha1.DimensionDecl{
				{Name: "length", Symbol: "L"},
				{Name: "mass", Symbol: "M"},
				{Name: "time", Symbol: "T"},
			},
			Constants: []v1alpha1.ConstantDecl{
				{Name: "pi", Symbol: "π", Value: "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899"},
			},
			Quantities: []v1alpha1.QuantityDecl{
				{Name: "velocity", Parent: "speed", Equation: "displacement/time"},
				{Name: "speed", Equation: "length/time"},
				{Name: "length", Dimension: "L"},
				{Name: "mass", Dimension: "M"},
				{Name: "time", Dimension: "T"},
				{Name: "width", Parent: "length"},
				{Name: "height", Parent: "length"},
				{Name: "radius", Parent: "width"},
				{Name: "arc_length", Parent: "length"},
				{Name: "position_vector", Parent: "length", Character: "vector"},
				{Name: "displacement", Parent: "length", Character: "vector"},
				{Name: "period_duration", Parent: "time"},
				{Name: "frequency", Equation: "1/period_duration"},
				{Name: "activity", Equation: "1/time"},
				{Name: "area", Equation: "length^2"},
				{Name: "angular_measure", Parent: "dimensionless", Equation: "arc_length/radius", Kind: true},
			},
			Prefixes: []v1alpha1.PrefixDecl{
				{Symbol: "k", Factor: "10^3"},
				{Symbol: "c", Factor: "10^-2"},
				{Symbol: "m", Factor: "10^-3"},
			},
			Units: []v1alpha1.UnitDecl{
				{Symbol: "h", Definition: "60*min"},
				{Symbol: "min", Definition: "60*s"},
				{Symbol: "s", Quantity: "time", Prefixes: []string{"m"}},
				{Symbol: "m", Quantity: "length", Prefixes: []string{"k", "c", "m"}},
				{Symbol: "g", Quantity: "mass", Prefixes: []string{"k"}},
				{Symbol: "Hz", Quantity: "frequency", Definition: "1/s"},
				{Symbol: "Bq", Quantity: "activity", Definition: "1/s"},
				{Symbol: "rad", Quantity: "angular_measure"},
				{Symbol: "deg", Definition: "pi/180*rad"},
				{Symbol: "ft", Definition: "12*in"},
				{Symbol: "in", Definition: "254/10000*m"},
				{Symbol: "[g]", Definition: "980665/100000*m/s^2", Constant: true},
			},
		},
	}
}
