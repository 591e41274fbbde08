package core

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-quantity-canon/api/v1alpha1"
	"github.com/llm-d/llm-d-quantity-canon/internal/cache"
	"github.com/llm-d/llm-d-quantity-canon/internal/collector"
	"github.com/llm-d/llm-d-quantity-canon/internal/logging"
	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/unit"
)

// Build turns catalog into a Table. Declarations may refer to each other in
// any order; cycles and unknown references fail the build.
func Build(ctx context.Context, catalog *v1alpha1.QuantityCatalog, opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("invalid settings: %w", o.err)
	}
	logger := ctrl.LoggerFrom(ctx)
	if o.logger != nil {
		logger = *o.logger
	}

	start := time.Now()
	t, err := build(ctx, logger, catalog, o)
	o.recorder.ObserveBuild(time.Since(start), err)
	if err != nil {
		logger.Error(err, "Failed to build quantity catalog")
		return nil, err
	}
	logger.Info("Built quantity catalog",
		"catalog", catalog.Name,
		"quantities", t.counts.Quantities,
		"units", t.counts.Units,
		"duration", time.Since(start))
	return t, nil
}

type unitRef struct {
	decl   *v1alpha1.UnitDecl
	prefix string
}

type builder struct {
	logger   logr.Logger
	recorder collector.Recorder
	t        *Table

	quantities map[string]*v1alpha1.QuantityDecl
	units      map[string]unitRef

	visitingQuantity map[string]bool
	visitingUnit     map[string]bool
}

func build(ctx context.Context, logger logr.Logger, catalog *v1alpha1.QuantityCatalog, o options) (*Table, error) {
	if catalog == nil {
		return nil, errNilCatalog
	}
	memo, err := cache.New[specPair, quantityspec.Convertibility](o.cacheSize)
	if err != nil {
		return nil, err
	}
	b := &builder{
		logger:           logger.WithValues("catalog", catalog.Name),
		recorder:         o.recorder,
		t:                newTable(o.factorizer, memo, o.recorder),
		quantities:       make(map[string]*v1alpha1.QuantityDecl),
		units:            make(map[string]unitRef),
		visitingQuantity: make(map[string]bool),
		visitingUnit:     make(map[string]bool),
	}
	spec := &catalog.Spec
	steps := []struct {
		name string
		run  func(*v1alpha1.QuantityCatalogSpec) error
	}{
		{"dimensions", b.buildDimensions},
		{"constants", b.buildConstants},
		{"quantities", b.buildQuantities},
		{"prefixes", b.buildPrefixes},
		{"units", b.buildUnits},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.run(spec); err != nil {
			return nil, err
		}
		b.logger.V(logging.DEBUG).Info("Built declarations", "step", step.name)
	}
	return b.t, nil
}

func (b *builder) built(kind collector.DeclarationKind, name string) {
	b.recorder.CountDeclaration(kind)
	b.logger.V(logging.TRACE).Info("Built declaration", "kind", kind, "name", name)
}

func (b *builder) buildDimensions(spec *v1alpha1.QuantityCatalogSpec) error {
	names := make(map[string]bool, len(spec.Dimensions))
	for _, d := range spec.Dimensions {
		switch {
		case d.Name == "" || d.Symbol == "":
			return declError(collector.KindDimension, d.Name, errMissingField)
		case names[d.Name]:
			return declError(collector.KindDimension, d.Name, errDuplicate)
		}
		if _, ok := b.t.dimensions[d.Symbol]; ok {
			return declError(collector.KindDimension, d.Name, fmt.Errorf("symbol %q %w", d.Symbol, errDuplicate))
		}
		names[d.Name] = true
		b.t.dimensions[d.Symbol] = quantityspec.BaseDimension(d.Symbol)
		b.t.counts.Dimensions++
		b.built(collector.KindDimension, d.Name)
	}
	return nil
}

func (b *builder) buildConstants(spec *v1alpha1.QuantityCatalogSpec) error {
	for _, c := range spec.Constants {
		if c.Name == "" {
			return declError(collector.KindConstant, c.Name, errMissingField)
		}
		if _, ok := b.t.constants[c.Name]; ok {
			return declError(collector.KindConstant, c.Name, errDuplicate)
		}
		symbol := c.Symbol
		if symbol == "" {
			symbol = c.Name
		}
		m, err := magnitude.Constant(symbol, c.Value)
		if err != nil {
			return declError(collector.KindConstant, c.Name, err)
		}
		b.t.constants[c.Name] = m
		b.t.counts.Constants++
		b.built(collector.KindConstant, c.Name)
	}
	return nil
}

func (b *builder) buildQuantities(spec *v1alpha1.QuantityCatalogSpec) error {
	for i := range spec.Quantities {
		d := &spec.Quantities[i]
		switch {
		case d.Name == "":
			return declError(collector.KindQuantity, d.Name, errMissingField)
		case d.Name == quantityspec.Dimensionless.Name():
			return declError(collector.KindQuantity, d.Name, errReserved)
		case b.quantities[d.Name] != nil:
			return declError(collector.KindQuantity, d.Name, errDuplicate)
		}
		b.quantities[d.Name] = d
	}
	for _, d := range spec.Quantities {
		if _, err := b.quantity(d.Name); err != nil {
			return err
		}
	}
	return nil
}

// quantity returns the named spec, building it and its dependencies first.
func (b *builder) quantity(name string) (quantityspec.Spec, error) {
	if name == quantityspec.Dimensionless.Name() {
		return quantityspec.Dimensionless, nil
	}
	if id, ok := b.t.specIDs[name]; ok {
		return b.t.specs[id], nil
	}
	d, ok := b.quantities[name]
	if !ok {
		return nil, fmt.Errorf("quantity %q %w", name, errUnknown)
	}
	if b.visitingQuantity[name] {
		return nil, &DeclarationError{Kind: collector.KindQuantity, Name: name, Err: errCycle}
	}
	b.visitingQuantity[name] = true
	defer delete(b.visitingQuantity, name)

	q, err := b.newQuantity(d)
	if err != nil {
		return nil, declError(collector.KindQuantity, name, err)
	}
	b.t.addSpec(q)
	b.t.counts.Quantities++
	b.built(collector.KindQuantity, name)
	return q, nil
}

func (b *builder) newQuantity(d *v1alpha1.QuantityDecl) (*quantityspec.Named, error) {
	var opts []quantityspec.Option
	if d.Character != "" {
		c, err := quantityspec.ParseCharacter(d.Character)
		if err != nil {
			return nil, err
		}
		opts = append(opts, quantityspec.WithCharacter(c))
	}
	if d.Kind {
		opts = append(opts, quantityspec.AsKind())
	}

	switch {
	case d.Dimension != "" && d.Parent == "" && d.Equation == "":
		dim, ok := b.t.dimensions[d.Dimension]
		if !ok {
			return nil, fmt.Errorf("dimension %q %w", d.Dimension, errUnknown)
		}
		return quantityspec.NewBase(d.Name, dim, opts...)
	case d.Parent != "" && d.Dimension == "":
		parent, err := b.quantity(d.Parent)
		if err != nil {
			return nil, err
		}
		named, ok := parent.(*quantityspec.Named)
		if !ok {
			return nil, fmt.Errorf("parent %q %w", d.Parent, errUnknown)
		}
		if d.Equation != "" {
			eq, err := resolveSpec(d.Equation, b.quantity)
			if err != nil {
				return nil, err
			}
			opts = append(opts, quantityspec.WithEquation(eq))
		}
		return quantityspec.NewChild(d.Name, named, opts...)
	case d.Equation != "" && d.Dimension == "":
		eq, err := resolveSpec(d.Equation, b.quantity)
		if err != nil {
			return nil, err
		}
		return quantityspec.NewDerived(d.Name, eq, opts...)
	}
	return nil, errShape
}

func (b *builder) buildPrefixes(spec *v1alpha1.QuantityCatalogSpec) error {
	for _, p := range spec.Prefixes {
		if p.Symbol == "" || p.Factor == "" {
			return declError(collector.KindPrefix, p.Symbol, errMissingField)
		}
		if _, ok := b.t.prefixes[p.Symbol]; ok {
			return declError(collector.KindPrefix, p.Symbol, errDuplicate)
		}
		m, err := b.t.ParseMagnitude(p.Factor)
		if err != nil {
			return declError(collector.KindPrefix, p.Symbol, err)
		}
		b.t.prefixes[p.Symbol] = unit.Prefix{Symbol: p.Symbol, Magnitude: m}
		b.t.counts.Prefixes++
		b.built(collector.KindPrefix, p.Symbol)
	}
	return nil
}

func (b *builder) buildUnits(spec *v1alpha1.QuantityCatalogSpec) error {
	claim := func(symbol string, ref unitRef) error {
		if _, ok := b.t.constants[symbol]; ok {
			return fmt.Errorf("symbol %q is a constant and %w", symbol, errDuplicate)
		}
		if _, ok := b.units[symbol]; ok {
			return fmt.Errorf("symbol %q %w", symbol, errDuplicate)
		}
		b.units[symbol] = ref
		return nil
	}
	for i := range spec.Units {
		d := &spec.Units[i]
		if d.Symbol == "" {
			return declError(collector.KindUnit, d.Symbol, errMissingField)
		}
		if err := claim(d.Symbol, unitRef{decl: d}); err != nil {
			return declError(collector.KindUnit, d.Symbol, err)
		}
		for _, p := range d.Prefixes {
			if _, ok := b.t.prefixes[p]; !ok {
				return declError(collector.KindUnit, d.Symbol, fmt.Errorf("prefix %q %w", p, errUnknown))
			}
			if err := claim(p+d.Symbol, unitRef{decl: d, prefix: p}); err != nil {
				return declError(collector.KindUnit, d.Symbol, err)
			}
		}
	}
	for _, d := range spec.Units {
		if _, err := b.unit(d.Symbol); err != nil {
			return err
		}
		for _, p := range d.Prefixes {
			if _, err := b.unit(p + d.Symbol); err != nil {
				return err
			}
		}
	}
	return nil
}

// unit returns the unit with the given symbol, building it and its
// dependencies first.
func (b *builder) unit(symbol string) (unit.Unit, error) {
	if id, ok := b.t.unitIDs[symbol]; ok {
		return b.t.units[id], nil
	}
	ref, ok := b.units[symbol]
	if !ok {
		return nil, fmt.Errorf("unit %q %w", symbol, errUnknown)
	}
	if b.visitingUnit[symbol] {
		return nil, &DeclarationError{Kind: collector.KindUnit, Name: symbol, Err: errCycle}
	}
	b.visitingUnit[symbol] = true
	defer delete(b.visitingUnit, symbol)

	var (
		u   *unit.Named
		err error
	)
	if ref.prefix == "" {
		u, err = b.newUnit(ref.decl)
	} else {
		var base unit.Unit
		if base, err = b.unit(ref.decl.Symbol); err == nil {
			u, err = b.t.prefixes[ref.prefix].Apply(base.(*unit.Named))
		}
	}
	if err != nil {
		return nil, declError(collector.KindUnit, symbol, err)
	}
	b.t.addUnit(u)
	b.t.counts.Units++
	b.built(collector.KindUnit, symbol)
	return u, nil
}

func (b *builder) newUnit(d *v1alpha1.UnitDecl) (*unit.Named, error) {
	var opts []unit.Option
	if d.Quantity != "" {
		q, err := resolveSpec(d.Quantity, b.t.lookupSpec)
		if err != nil {
			return nil, err
		}
		if quantityspec.Equal(quantityspec.KindTreeRoot(q), q) {
			q = quantityspec.KindOf(q)
		}
		opts = append(opts, unit.WithSpec(q))
	}
	if d.Definition != "" {
		alias, err := b.t.resolveUnit(d.Definition, b.unit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, unit.WithAlias(alias))
	}
	if d.Constant {
		opts = append(opts, unit.AsConstant())
	}
	return unit.NewNamed(d.Symbol, opts...)
}
