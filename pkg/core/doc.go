// Package core builds a QuantityCatalog into an immutable Table and answers
// queries against it.
//
// The build pass turns declarations into the symbolic values of the lower
// packages:
//
//   - Dimensions: base dimensions used by base quantities
//   - Constants: irrational magnitudes such as π
//   - Quantities: quantity specs, resolved in dependency order
//   - Prefixes: magnitudes prepended to unit symbols
//   - Units: named units, resolved in dependency order, plus their prefixed forms
//
// Any malformed declaration fails the whole build with a *DeclarationError
// naming it. There is no partial table.
//
// A Table never changes once built and is safe for concurrent use. Spec
// convertibility results are memoised in an LRU cache.
//
// Example usage:
//
//	catalog, err := v1alpha1.ParseCatalog(manifest)
//	if err != nil {
//		return err
//	}
//	table, err := core.Build(ctx, catalog, core.WithCacheSize(1024))
//	if err != nil {
//		return err
//	}
//
//	// Classify a conversion between quantity specs
//	from, _ := table.ParseSpec("position_vector/period_duration")
//	to, _ := table.ParseSpec("speed")
//	c := table.Convertible(from, to) // quantityspec.Explicit
//
//	// Convert between units
//	kmh, _ := table.ParseUnit("km/h")
//	ms, _ := table.ParseUnit("m/s")
//	f, err := table.ConversionFactor(kmh, ms) // 5/18
package core
