package core

import (
	"github.com/llm-d/llm-d-quantity-canon/internal/collector"
	"github.com/llm-d/llm-d-quantity-canon/pkg/magnitude"
	"github.com/llm-d/llm-d-quantity-canon/pkg/quantityspec"
	"github.com/llm-d/llm-d-quantity-canon/pkg/unit"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
	outcomeNo    = "no"
	outcomeYes   = "yes"
)

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}

// Convertible classifies the conversion from one spec to another. Specs must
// come from this table; results are memoised by their normalized names.
func (t *Table) Convertible(from, to quantityspec.Spec) quantityspec.Convertibility {
	key := specPair{from: from.String(), to: to.String()}
	c, hit := t.memo.Get(key)
	t.recorder.CountCache(hit)
	if !hit {
		c = quantityspec.Convertible(from, to)
		t.memo.Add(key, c)
	}
	t.recorder.CountQuery(collector.QueryConvertible, c.String())
	return c
}

// ConvertibleUnits reports whether values in from can be expressed in to.
func (t *Table) ConvertibleUnits(from, to unit.Unit) bool {
	ok := unit.Convertible(from, to)
	result := outcomeNo
	if ok {
		result = outcomeYes
	}
	t.recorder.CountQuery(collector.QueryConvertibleUnits, result)
	return ok
}

// ConversionFactor returns the magnitude a value in from is multiplied by to
// express it in to.
func (t *Table) ConversionFactor(from, to unit.Unit) (magnitude.Magnitude, error) {
	m, err := unit.ConversionFactor(from, to)
	t.recorder.CountQuery(collector.QueryConversionFactor, outcome(err))
	return m, err
}

// CommonUnit returns the unit every operand converts to without loss.
func (t *Table) CommonUnit(us ...unit.Unit) (unit.Unit, error) {
	u, err := unit.CommonUnit(us...)
	t.recorder.CountQuery(collector.QueryCommonUnit, outcome(err))
	return u, err
}

// CommonQuantitySpec returns the most specific spec every operand converts
// to implicitly.
func (t *Table) CommonQuantitySpec(qs ...quantityspec.Spec) (quantityspec.Spec, error) {
	q, err := quantityspec.CommonQuantitySpec(qs...)
	t.recorder.CountQuery(collector.QueryCommonQuantitySpec, outcome(err))
	return q, err
}

// Decompose splits the canonical magnitude of u for display.
func (t *Table) Decompose(u unit.Unit) (unit.Decomposition, error) {
	d, err := unit.Decompose(u)
	t.recorder.CountQuery(collector.QueryDecompose, outcome(err))
	return d, err
}
