package config

import "github.com/katalvlaran/kernelexpr/builder"

// Config represents a complete kernel-expression file
type Config struct {
	Logging     LoggingConfig `yaml:"logging"`
	Random      RandomConfig  `yaml:"random"`
	Expressions []Expression  `yaml:"expressions"`
}

// LoggingConfig holds logging settings for the CLI
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// RandomConfig describes randomly generated expressions
type RandomConfig struct {
	Count              int     `yaml:"count"`    // number of expressions; 0 disables
	Operands           int     `yaml:"operands"` // leaves per expression
	Dims               int     `yaml:"dims"`     // input dimensions leaves are drawn from
	Seed               int64   `yaml:"seed"`
	MaxArity           int     `yaml:"max_arity"`
	ProductProbability float64 `yaml:"product_probability"`
}

// Expression is a named kernel expression
type Expression struct {
	Name string `yaml:"name"`
	Expr Node   `yaml:"expr"`
}

// Defaults returns a Config with sensible defaults
func Defaults() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Random: RandomConfig{
			Count:              0,
			Operands:           4,
			Dims:               1,
			Seed:               1,
			MaxArity:           builder.MinArity,
			ProductProbability: builder.DefaultProductProbability,
		},
	}
}

// Options translates the random settings into builder options.
func (r RandomConfig) Options() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(r.Seed),
		builder.WithDims(r.Dims),
		builder.WithMaxArity(r.MaxArity),
		builder.WithProductProbability(r.ProductProbability),
	}
}
