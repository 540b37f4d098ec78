// Where: internal/infra/config/env.go
// What: Kong resolver for CPPGEN_* environment variables.
// Why: Environment values must override config files, which kong's env tags cannot do.
package config

import (
	"github.com/alecthomas/kong"
	"github.com/poruru/cppgen/internal/infra/envutil"
)

// EnvTag is the struct tag naming a flag's CPPGEN_* suffix, e.g. envvar:"TREE".
const EnvTag = "envvar"

// EnvResolver resolves tagged flags from the environment. Register it after
// the config file loaders; blank values count as unset.
func EnvResolver() kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		suffix := flag.Tag.Get(EnvTag)
		if suffix == "" {
			return nil, nil
		}
		if value := envutil.GetHostEnv(suffix); value != "" {
			return value, nil
		}
		return nil, nil
	})
}
