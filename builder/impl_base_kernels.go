// SPDX-License-Identifier: MIT
// Package: kernelexpr/builder
//
// impl_base_kernels.go - implementation of BaseKernels(nDims).
//
// Contract:
//   - nDims ≥ 1 (else ErrTooFewDims).
//   - Codes resolved via cfg (registry order by default).
//   - Emission order: for each code, dims 0..nDims-1.

package builder

import "github.com/katalvlaran/kernelexpr/kernel"

func baseKernels(cfg builderConfig, nDims int) ([]kernel.Kernel, error) {
	// 1) Validate parameters early.
	if err := validateMin(MethodBaseKernels, nDims, MinDims, ErrTooFewDims); err != nil {
		return nil, err
	}
	codes, err := cfg.resolveCodes(MethodBaseKernels)
	if err != nil {
		return nil, err
	}

	// 2) One kernel per (code, dim) pair in stable order.
	out := make([]kernel.Kernel, 0, len(codes)*nDims)
	for _, code := range codes {
		for d := 0; d < nDims; d++ {
			k, err := cfg.reg.New(code, d)
			if err != nil {
				return nil, builderErrorf(MethodBaseKernels, "New(%s, %d): %w", code, d, err)
			}
			out = append(out, k)
		}
	}

	return out, nil
}
