// Package config reads kernel-expression files: named kernel expressions
// written as nested YAML, settings for randomly generated expressions, and
// logging settings for the command-line tool.
//
// File layout:
//
//	logging:
//	  level: info          # debug, info, warn, error
//	  format: text         # text or json
//	random:
//	  count: 2
//	  operands: 5
//	  dims: 2
//	  seed: ${SEED:-7}
//	  max_arity: 3
//	  product_probability: 0.5
//	expressions:
//	  - name: trend
//	    expr:
//	      sum:
//	        - SE0
//	        - product: [PER0, LIN0]
//
// Leaves are "<code><dim>" labels resolved against a kernel.Registry;
// combinators are single-key mappings "sum" or "product" over a list.
// ${VAR} and ${VAR:-default} are replaced from the environment before parsing.
package config
