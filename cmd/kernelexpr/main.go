// Command kernelexpr encodes kernel expressions and prints every stage of
// the encoding: infix tokens, postfix tokens, the rendered binary tree and,
// optionally, a Graphviz DOT graph or the YAML form of the decoded tree.
//
// Usage:
//
//	kernelexpr -f kernels.yaml [-dot] [-yaml]
//	kernelexpr -n 6 -dims 2 -seed 7 [-dot] [-yaml]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kernelexpr/builder"
	"github.com/katalvlaran/kernelexpr/config"
	"github.com/katalvlaran/kernelexpr/encoding"
	"github.com/katalvlaran/kernelexpr/kernel"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// named pairs an expression with its display name.
type named struct {
	name string
	expr kernel.Expr
}

// run is main without process globals; it returns the exit code.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs := flag.NewFlagSet("kernelexpr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		file      = fs.String("f", "", "YAML file with expressions")
		operands  = fs.Int("n", 4, "operands of a random expression (without -f)")
		dims      = fs.Int("dims", 1, "input dimensions of a random expression (without -f)")
		seed      = fs.Int64("seed", 1, "seed of a random expression (without -f)")
		dot       = fs.Bool("dot", false, "print a Graphviz DOT graph per expression")
		emitYAML  = fs.Bool("yaml", false, "print the decoded tree as YAML")
		verbosity = fs.String("log", "", "log level override: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Defaults()
	if *file != "" {
		loaded, err := config.Load(*file, getenv)
		if err != nil {
			newLogger(stderr, cfg.Logging).Error("load failed", slog.String("file", *file), slog.Any("error", err))
			return 1
		}
		cfg = loaded
	} else {
		if *operands < builder.MinOperands || *dims < builder.MinDims {
			fmt.Fprintln(stderr, "kernelexpr: -n and -dims must be ≥ 1")
			return 2
		}
		cfg.Random = config.RandomConfig{
			Count:              1,
			Operands:           *operands,
			Dims:               *dims,
			Seed:               *seed,
			MaxArity:           builder.MinArity,
			ProductProbability: builder.DefaultProductProbability,
		}
	}
	if *verbosity != "" {
		cfg.Logging.Level = *verbosity
	}
	logger := newLogger(stderr, cfg.Logging)

	reg := kernel.DefaultRegistry()
	exprs, err := collect(cfg, reg)
	if err != nil {
		logger.Error("building expressions failed", slog.Any("error", err))
		return 1
	}
	logger.Debug("expressions ready", slog.Int("count", len(exprs)))

	for _, e := range exprs {
		if err := report(stdout, e, reg, *dot, *emitYAML); err != nil {
			logger.Error("encoding failed", slog.String("name", e.name), slog.Any("error", err))
			return 1
		}
	}
	return 0
}

// collect builds the file's named expressions followed by the random ones.
func collect(cfg *config.Config, reg *kernel.Registry) ([]named, error) {
	out := make([]named, 0, len(cfg.Expressions)+cfg.Random.Count)
	for _, e := range cfg.Expressions {
		expr, err := e.Expr.Build(reg)
		if err != nil {
			return nil, fmt.Errorf("expression %q: %w", e.Name, err)
		}
		out = append(out, named{name: e.Name, expr: expr})
	}

	if cfg.Random.Count > 0 {
		base := builder.NewRand(cfg.Random.Seed)
		for i := 0; i < cfg.Random.Count; i++ {
			opts := append(cfg.Random.Options(),
				builder.WithRegistry(reg),
				builder.WithRand(builder.DeriveRNG(base, uint64(i))))
			expr, err := builder.Random(cfg.Random.Operands, opts...)
			if err != nil {
				return nil, fmt.Errorf("random[%d]: %w", i, err)
			}
			out = append(out, named{name: fmt.Sprintf("random-%d", i), expr: expr})
		}
	}

	if len(out) == 0 {
		return nil, errors.New("no expressions to encode")
	}
	return out, nil
}

// report prints every encoding stage of e.
func report(w io.Writer, e named, reg *kernel.Registry, dot, emitYAML bool) error {
	infix, err := encoding.FlattenToInfix(e.expr)
	if err != nil {
		return err
	}
	postfix, err := encoding.InfixToPostfix(infix)
	if err != nil {
		return err
	}
	tree, err := encoding.BuildTree(postfix, encoding.WithRegistry(reg))
	if err != nil {
		return err
	}
	in, err := encoding.TokensString(infix, reg)
	if err != nil {
		return err
	}
	post, err := encoding.TokensString(postfix, reg)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "name:    %s\n", e.name)
	fmt.Fprintf(&sb, "infix:   %s\n", in)
	fmt.Fprintf(&sb, "postfix: %s\n", post)
	fmt.Fprintf(&sb, "tree:    %s\n", tree.Infix())
	fmt.Fprintf(&sb, "nodes:   %d\n", tree.Len())
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	if emitYAML {
		decoded, err := tree.Expr()
		if err != nil {
			return err
		}
		node, err := config.FromExpr(decoded, reg)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	if dot {
		if err := tree.WriteDOT(w); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n")
	return err
}
