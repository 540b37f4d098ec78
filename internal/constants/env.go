// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Suffixes combined with meta.EnvPrefix by envutil.HostEnvKey.
const (
	HostSuffixConfig     = "CONFIG"
	HostSuffixConfigHome = "CONFIG_HOME"
)

// Unprefixed variables honoured by the CLI.
const (
	EnvNoColor = "NO_COLOR"
	EnvCLICmd  = "CLI_CMD"
)
