package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// QuantityCatalogSpec lists the declarations a table is built from. Order
// inside each list does not matter: quantities and units may refer to
// entries declared further down.
type QuantityCatalogSpec struct {
	// Dimensions are the base dimensions, such as L for length.
	// +optional
	Dimensions []DimensionDecl `json:"dimensions,omitempty"`

	// Constants are irrational magnitudes, such as π, usable in prefix
	// factors and unit definitions.
	// +optional
	Constants []ConstantDecl `json:"constants,omitempty"`

	// Quantities are the quantity specs.
	// +optional
	Quantities []QuantityDecl `json:"quantities,omitempty"`

	// Prefixes scale the units that list them, such as k for 10^3.
	// +optional
	Prefixes []PrefixDecl `json:"prefixes,omitempty"`

	// Units are the named units.
	// +optional
	Units []UnitDecl `json:"units,omitempty"`
}

// DimensionDecl declares a base dimension.
type DimensionDecl struct {
	// Name is the name of the dimension, e.g. "length".
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// Symbol is the symbol used in dimension formulas, e.g. "L".
	// +kubebuilder:validation:MinLength=1
	Symbol string `json:"symbol"`
}

// ConstantDecl declares an irrational magnitude constant.
type ConstantDecl struct {
	// Name is the atom used in expressions, e.g. "pi".
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// Symbol is the display symbol, e.g. "π". Defaults to Name.
	// +optional
	Symbol string `json:"symbol,omitempty"`

	// Value is a positive decimal literal of the constant.
	// +kubebuilder:validation:Pattern=`^\d+(\.\d+)?$`
	Value string `json:"value"`
}

// QuantityDecl declares a quantity spec. Exactly one of the following shapes
// is accepted:
//   - a base quantity: Dimension is set.
//   - a derived root: Equation is set, Parent is not.
//   - a child: Parent is set, Equation optionally refines the parent's.
type QuantityDecl struct {
	// Name is the unique name of the quantity, e.g. "speed".
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// Dimension is the symbol of the base dimension of a base quantity.
	// +optional
	Dimension string `json:"dimension,omitempty"`

	// Parent is the name of the quantity this one specializes.
	// +optional
	Parent string `json:"parent,omitempty"`

	// Equation is a product of powers of quantity names, e.g.
	// "length/time" or "1/period_duration".
	// +optional
	Equation string `json:"equation,omitempty"`

	// Character overrides the inherited or derived character.
	// +kubebuilder:validation:Enum=scalar;vector;tensor
	// +optional
	Character string `json:"character,omitempty"`

	// Kind makes the quantity the root of its own kind tree.
	// +optional
	Kind bool `json:"kind,omitempty"`
}

// PrefixDecl declares a unit prefix.
type PrefixDecl struct {
	// Symbol is prepended to the unit symbol, e.g. "k".
	// +kubebuilder:validation:MinLength=1
	Symbol string `json:"symbol"`

	// Factor is a product of powers of integers and constants, e.g. "10^3"
	// or "2^10".
	// +kubebuilder:validation:MinLength=1
	Factor string `json:"factor"`
}

// UnitDecl declares a named unit.
type UnitDecl struct {
	// Symbol is the unique symbol of the unit, e.g. "m".
	// +kubebuilder:validation:MinLength=1
	Symbol string `json:"symbol"`

	// Quantity is the quantity spec expression the unit measures. A kind
	// root is used as its kind. Units with a definition and no quantity
	// measure whatever their definition measures.
	// +optional
	Quantity string `json:"quantity,omitempty"`

	// Definition is a product of powers of units, constants and integers,
	// e.g. "1000*m", "1/s" or "pi/180*rad". Without a definition the unit
	// is a reference unit.
	// +optional
	Definition string `json:"definition,omitempty"`

	// Constant marks a named physical constant used as a unit, e.g. "[g]".
	// +optional
	Constant bool `json:"constant,omitempty"`

	// Prefixes lists the prefix symbols to generate prefixed units for.
	// +optional
	Prefixes []string `json:"prefixes,omitempty"`
}

// QuantityCatalogStatus records the result of the last build.
type QuantityCatalogStatus struct {
	// ObservedGeneration is the catalog generation the status describes.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Counts holds the number of built declarations per kind.
	// +optional
	Counts DeclarationCounts `json:"counts,omitempty"`

	// Conditions represent the latest available observations of the catalog's state
	// +kubebuilder:validation:Optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
}

// DeclarationCounts counts built declarations. Prefixed units count as units.
type DeclarationCounts struct {
	Dimensions int32 `json:"dimensions"`
	Constants  int32 `json:"constants"`
	Quantities int32 `json:"quantities"`
	Prefixes   int32 `json:"prefixes"`
	Units      int32 `json:"units"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=qc
// +kubebuilder:printcolumn:name="Quantities",type=integer,JSONPath=".status.counts.quantities"
// +kubebuilder:printcolumn:name="Units",type=integer,JSONPath=".status.counts.units"
// +kubebuilder:printcolumn:name="Built",type=string,JSONPath=".status.conditions[?(@.type=='Built')].status"
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=".metadata.creationTimestamp"

// QuantityCatalog is the Schema for the quantitycatalogs API.
type QuantityCatalog struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Spec lists the declarations.
	Spec QuantityCatalogSpec `json:"spec,omitempty"`

	// Status records the result of the last build.
	Status QuantityCatalogStatus `json:"status,omitempty"`
}

// QuantityCatalogList contains a list of QuantityCatalog resources.
// +kubebuilder:object:root=true
type QuantityCatalogList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	// Items is the list of QuantityCatalog resources.
	Items []QuantityCatalog `json:"items"`
}

func init() {
	SchemeBuilder.Register(&QuantityCatalog{}, &QuantityCatalogList{})
}

// Condition Types for QuantityCatalog
const (
	// TypeBuilt indicates whether the catalog was built into a table
	TypeBuilt = "Built"
)

// Condition Reasons for Built
const (
	// ReasonBuildSucceeded indicates every declaration was built
	ReasonBuildSucceeded = "BuildSucceeded"
	// ReasonInvalidDeclaration indicates a declaration was rejected
	ReasonInvalidDeclaration = "InvalidDeclaration"
)
