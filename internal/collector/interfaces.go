/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package collector

import (
	"time"
)

// DeclarationKind labels the declarations counted by a build.
type DeclarationKind string

const (
	// KindDimension counts base dimensions.
	KindDimension DeclarationKind = "dimension"

	// KindConstant counts named irrational constants used in magnitudes.
	KindConstant DeclarationKind = "constant"

	// KindQuantity counts quantity specs: base, derived and child quantities.
	KindQuantity DeclarationKind = "quantity"

	// KindPrefix counts unit prefixes.
	KindPrefix DeclarationKind = "prefix"

	// KindUnit counts named units, prefixed units included.
	KindUnit DeclarationKind = "unit"
)

// Query labels the table operations whose outcomes are counted.
type Query string

const (
	QueryConvertible        Query = "convertible"
	QueryConvertibleUnits   Query = "convertible_units"
	QueryConversionFactor   Query = "conversion_factor"
	QueryCommonUnit         Query = "common_unit"
	QueryCommonQuantitySpec Query = "common_quantity_spec"
	QueryDecompose          Query = "decompose"
)

// Recorder receives build and query events. The build pass and the table
// only depend on this interface; Metrics implements it with Prometheus and
// Noop discards everything.
type Recorder interface {
	// ObserveBuild records the duration and outcome of one build pass.
	ObserveBuild(d time.Duration, err error)

	// CountDeclaration records one successfully built declaration.
	CountDeclaration(kind DeclarationKind)

	// CountQuery records one query and its outcome, such as a
	// convertibility result or "error".
	CountQuery(q Query, outcome string)

	// CountCache records a memo cache lookup.
	CountCache(hit bool)
}

// Noop is a Recorder that records nothing.
type Noop struct{}

func (Noop) ObserveBuild(time.Duration, error) {}
func (Noop) CountDeclaration(DeclarationKind) {}
func (Noop) CountQuery(Query, string) {}
func (Noop) CountCache(bool) {}
