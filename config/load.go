package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a kernel-expression file with ENV interpolation.
func Load(path string, getenv func(string) string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, getenv)
}

// Parse decodes a kernel-expression document over Defaults and validates it.
// A nil getenv disables interpolation defaults lookup (all variables empty).
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateBasic(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} and ${VAR:-default} with environment values.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}

// validateBasic checks ranges and uniqueness, reporting every problem at once.
func validateBasic(cfg *Config) error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be json or text)", cfg.Logging.Format))
	}

	r := cfg.Random
	if r.Count < 0 {
		errs = append(errs, fmt.Sprintf("random.count: %d must be ≥ 0", r.Count))
	}
	if r.Count > 0 {
		if r.Operands < 1 {
			errs = append(errs, fmt.Sprintf("random.operands: %d must be ≥ 1", r.Operands))
		}
		if r.Dims < 1 {
			errs = append(errs, fmt.Sprintf("random.dims: %d must be ≥ 1", r.Dims))
		}
		if r.MaxArity < 2 {
			errs = append(errs, fmt.Sprintf("random.max_arity: %d must be ≥ 2", r.MaxArity))
		}
		if r.ProductProbability < 0 || r.ProductProbability > 1 {
			errs = append(errs, fmt.Sprintf("random.product_probability: %g must be in [0,1]", r.ProductProbability))
		}
	}

	seen := make(map[string]bool, len(cfg.Expressions))
	for i, e := range cfg.Expressions {
		switch {
		case e.Name == "":
			errs = append(errs, fmt.Sprintf("expressions[%d]: name is required", i))
		case seen[e.Name]:
			errs = append(errs, fmt.Sprintf("expressions[%d]: duplicate name %q", i, e.Name))
		}
		seen[e.Name] = true
		if e.Expr.IsLeaf() && e.Expr.Label == "" {
			errs = append(errs, fmt.Sprintf("expressions[%d]: expr is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(errs, "; "), ErrInvalidConfig)
	}
	return nil
}
