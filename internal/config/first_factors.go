package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d/llm-d-quantity-canon/internal/logging"
	"github.com/llm-d/llm-d-quantity-canon/internal/prime"
)

// DefaultFirstFactorsConfigMapName is the default name of the ConfigMap that
// stores known first factors of large integers used in magnitudes.
const DefaultFirstFactorsConfigMapName = "quantity-canon-first-factors"

// FirstFactorOverride records the smallest prime factor of N, for integers
// whose factor lies beyond a practical search.
type FirstFactorOverride struct {
	N      uint64 `yaml:"n" json:"n"`
	Factor uint64 `yaml:"factor" json:"factor"`
}

// FirstFactorConfigData holds the overrides read from a ConfigMap, keyed by
// N. Every ConfigMap entry is a YAML list of overrides.
type FirstFactorConfigData map[uint64]FirstFactorOverride

// Validate checks for invalid override values. The factor itself is trusted.
func (o *FirstFactorOverride) Validate() error {
	if o.N < 2 {
		return fmt.Errorf("n must be >= 2, got %d", o.N)
	}
	if o.Factor < 2 || o.Factor > o.N {
		return fmt.Errorf("factor must be between 2 and n (%d), got %d", o.N, o.Factor)
	}
	if o.N%o.Factor != 0 {
		return fmt.Errorf("factor %d does not divide %d", o.Factor, o.N)
	}
	return nil
}

// ParseFirstFactorConfigMap parses first-factor overrides from a ConfigMap's
// data. Entries are read in sorted key order; malformed entries and invalid
// overrides are logged and skipped, and the first key declaring an N wins.
func ParseFirstFactorConfigMap(data map[string]string) FirstFactorConfigData {
	out := make(FirstFactorConfigData)
	if data == nil {
		return out
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	origin := make(map[uint64]string)
	for _, key := range keys {
		var overrides []FirstFactorOverride
		if err := yaml.Unmarshal([]byte(data[key]), &overrides); err != nil {
			ctrl.Log.Info("Failed to parse first factor entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		for _, o := range overrides {
			if err := o.Validate(); err != nil {
				ctrl.Log.Info("Invalid first factor override, skipping",
					"key", key,
					"n", o.N,
					"error", err)
				continue
			}
			if winner, exists := origin[o.N]; exists {
				ctrl.Log.Info("Duplicate first factor override - first key wins",
					"n", o.N,
					"winningKey", winner,
					"duplicateKey", key)
				continue
			}
			origin[o.N] = key
			out[o.N] = o
		}
	}

	ctrl.Log.V(logging.DEBUG).Info("Parsed first factor overrides",
		"count", len(out))

	return out
}

// Sorted returns the overrides in ascending order of N.
func (data FirstFactorConfigData) Sorted() []FirstFactorOverride {
	out := make([]FirstFactorOverride, 0, len(data))
	for _, o := range data {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].N < out[j].N })
	return out
}

// Apply registers every override with the prime package. It must run before
// any magnitude is built.
func (data FirstFactorConfigData) Apply() {
	for _, o := range data.Sorted() {
		prime.RegisterFirstFactor(o.N, o.Factor)
	}
}
