// Where: internal/infra/config/paths.go
// What: Config file discovery for flag defaults.
// Why: Let projects and users pin --create-class / --create-template defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/poruru/cppgen/internal/constants"
	"github.com/poruru/cppgen/internal/infra/envutil"
	"github.com/poruru/cppgen/internal/meta"
)

// Format names the loader that reads a config file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Candidate is one config file to try.
type Candidate struct {
	Path   string
	Format Format
}

var configNames = []string{meta.ConfigJSON, meta.ConfigTOML, meta.ConfigYML, meta.ConfigYAML}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	if override := envutil.GetHostEnv(constants.HostSuffixConfigHome); override != "" {
		return override, nil
	}
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, meta.AppName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, meta.AppName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", meta.AppName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// CandidatePaths lists config files from lowest to highest precedence: the
// user config directory, the working directory, then the explicit path
// (relative to workDir).
// Kong keeps the last value any resolver returns, so they must be registered
// in this order. Missing files are fine; kong skips them.
func CandidatePaths(explicit, workDir string) []Candidate {
	var out []Candidate
	if dir, err := DefaultConfigDir(); err == nil {
		for _, name := range configNames {
			out = append(out, candidate(filepath.Join(dir, strings.TrimPrefix(name, "."))))
		}
	}
	if workDir != "" {
		for _, name := range configNames {
			out = append(out, candidate(filepath.Join(workDir, name)))
		}
	}
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if !filepath.IsAbs(explicit) && workDir != "" {
			explicit = filepath.Join(workDir, explicit)
		}
		out = append(out, candidate(explicit))
	}
	return out
}

// FormatOf picks the loader for path by extension; unknown extensions are JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

func candidate(path string) Candidate {
	return Candidate{Path: path, Format: FormatOf(path)}
}

// ExplicitPath scans raw arguments for --config, falling back to CPPGEN_CONFIG.
// It runs before kong parsing because the loaders must be registered up front.
func ExplicitPath(args []string) string {
	if value, ok := ScanFlag(args, "--config"); ok {
		return value
	}
	return envutil.GetHostEnv(constants.HostSuffixConfig)
}

// ScanFlag returns the value of a long flag given as "--name value" or "--name=value".
func ScanFlag(args []string, name string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"="), true
		}
		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}
