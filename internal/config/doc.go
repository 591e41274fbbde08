// Package config provides the settings of the build pass and the query layer.
//
// Settings are read from several sources, by decreasing priority:
//
//  1. Command-line flags registered with BindFlags
//  2. CANON_* environment variables (CANON_CACHE_SIZE, CANON_FACTORIZER, ...)
//  3. An optional YAML settings file
//  4. Default values
//
// Example usage:
//
//	fs := pflag.NewFlagSet("canon", pflag.ExitOnError)
//	config.BindFlags(fs)
//	_ = fs.Parse(os.Args[1:])
//
//	settings, err := config.LoadSettings(fs, os.Getenv("CANON_SETTINGS"))
//	if err != nil {
//	    log.Error(err, "failed to load settings")
//	    return err
//	}
//
//	table, err := core.Build(ctx, catalog, core.WithSettings(settings))
//
// Settings Validation:
//
// Settings are validated on load:
//   - cache-size must not be negative; zero disables the convertibility memo
//   - factorizer must name a known strategy
//   - log-level must be info, debug or trace
//
// First-factor overrides for integers too large to factor by trial division
// are kept next to the settings, so every factorizer built from them agrees.
package config
