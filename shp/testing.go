// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckPartitionOfUnity checks that weights sum to one and weight gradients
// sum to the zero vector @ position x
func CheckPartitionOfUnity(tst *testing.T, kern *Kernel, x, xmin []float64, h float64, npts []int, tol float64, verbose bool) {

	// allocate results
	ndim := len(x)
	nn := kern.Npts(ndim)
	S := make([]float64, nn)
	G := allocMat(nn, ndim)
	nids := make([]int, nn)

	// evaluate
	n, err := kern.Calc(S, G, nids, x, xmin, h, npts)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}

	// sums
	sumS := 0.0
	sumG := make([]float64, ndim)
	for k := 0; k < n; k++ {
		sumS += S[k]
		for j := 0; j < ndim; j++ {
			sumG[j] += G[k][j]
		}
	}
	if verbose {
		io.Pf("%s @ %v : ΣS = %.17f  ΣG = %v\n", kern.Type, x, sumS, sumG)
	}

	// check
	if math.Abs(sumS-1.0) > tol {
		tst.Errorf("%s failed: ΣS = %.17f must be 1 @ x = %v\n", kern.Type, sumS, x)
		return
	}
	for j := 0; j < ndim; j++ {
		if math.Abs(sumG[j]) > tol {
			tst.Errorf("%s failed: ΣG[%d] = %g must be 0 @ x = %v\n", kern.Type, j, sumG[j], x)
			return
		}
	}
}

// CheckGradS compares weight gradients against central differences @ position x
func CheckGradS(tst *testing.T, kern *Kernel, x, xmin []float64, h float64, npts []int, tol float64, verbose bool) {

	// allocate results
	ndim := len(x)
	nn := kern.Npts(ndim)
	S := make([]float64, nn)
	G := allocMat(nn, ndim)
	nids := make([]int, nn)

	// analytical
	n, err := kern.Calc(S, G, nids, x, xmin, h, npts)
	if err != nil {
		tst.Errorf("Calc failed:\n%v", err)
		return
	}

	// numerical
	xtmp := make([]float64, ndim)
	Stmp := make([]float64, nn)
	Gtmp := allocMat(nn, ndim)
	itmp := make([]int, nn)
	for k := 0; k < n; k++ {
		nid := nids[k]
		for j := 0; j < ndim; j++ {
			dSdxj, _ := num.DerivCen5(x[j], h/10.0, func(t float64) (Sk float64, e error) {
				copy(xtmp, x)
				xtmp[j] = t
				var m int
				m, e = kern.Calc(Stmp, Gtmp, itmp, xtmp, xmin, h, npts)
				if e != nil {
					return
				}
				for i := 0; i < m; i++ {
					if itmp[i] == nid {
						Sk = Stmp[i]
					}
				}
				return
			})
			if verbose {
				io.Pfgrey2("  dS%ddx%d @ %v = %v (num: %v)\n", k, j, x, G[k][j], dSdxj)
			}
			if math.Abs(G[k][j]-dSdxj) > tol {
				tst.Errorf("%s dS%ddx%d failed with err = %g\n", kern.Type, k, j, math.Abs(G[k][j]-dSdxj))
				return
			}
		}
	}
}

// allocMat allocates a matrix
func allocMat(m, n int) (mat [][]float64) {
	mat = make([][]float64, m)
	for i := 0; i < m; i++ {
		mat[i] = make([]float64, n)
	}
	return
}
