package v1alpha1

import (
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Kind is the kind of a QuantityCatalog manifest.
const Kind = "QuantityCatalog"

var (
	errWrongType  = errors.New("manifest is not a QuantityCatalog")
	errBoolSymbol = errors.New("symbol decoded from a YAML boolean, quote it")
)

// ParseCatalog decodes a YAML or JSON QuantityCatalog manifest. Unknown
// fields are rejected. apiVersion and kind may be omitted; when present they
// must name this group-version and kind.
//
// YAML is read with YAML 1.1 rules, so the plain scalars y, Y, n, N, yes, no,
// on and off are booleans. Symbols such as N (newton) or n (nano) must be
// quoted; a symbol that decodes to "true" or "false" is rejected.
func ParseCatalog(data []byte) (*QuantityCatalog, error) {
	var c QuantityCatalog
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if c.APIVersion != "" && c.APIVersion != GroupVersion.String() {
		return nil, fmt.Errorf("%w: apiVersion %q", errWrongType, c.APIVersion)
	}
	if c.Kind != "" && c.Kind != Kind {
		return nil, fmt.Errorf("%w: kind %q", errWrongType, c.Kind)
	}
	if err := checkSymbols(&c.Spec); err != nil {
		return nil, err
	}
	c.APIVersion = GroupVersion.String()
	c.Kind = Kind
	return &c, nil
}

func checkSymbols(spec *QuantityCatalogSpec) error {
	check := func(what, s string) error {
		if s == "true" || s == "false" {
			return fmt.Errorf("%s %q: %w", what, s, errBoolSymbol)
		}
		return nil
	}
	for _, d := range spec.Dimensions {
		if err := check("dimension "+d.Name, d.Symbol); err != nil {
			return err
		}
	}
	for _, p := range spec.Prefixes {
		if err := check("prefix", p.Symbol); err != nil {
			return err
		}
	}
	for _, u := range spec.Units {
		if err := check("unit", u.Symbol); err != nil {
			return err
		}
		for _, p := range u.Prefixes {
			if err := check("prefix of unit "+u.Symbol, p); err != nil {
				return err
			}
		}
	}
	return nil
}
