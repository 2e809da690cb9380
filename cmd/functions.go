/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"math"

	"github.com/saber00001/chebfun/chebtech"
	"github.com/saber00001/chebfun/utils"
)

// BuiltinFunctions are the named targets the approx command can construct.
var BuiltinFunctions = map[string]chebtech.Fn{
	"one":     ScalarFn(func(x float64) float64 { return 1 }),
	"cos10pi": ScalarFn(func(x float64) float64 { return math.Cos(10 * math.Pi * x) }),
	"runge":   ScalarFn(func(x float64) float64 { return 1 / (1 + 25*x*x) }),
	"abs":     ScalarFn(math.Abs),
	"sign": ScalarFn(func(x float64) float64 {
		if x < 0 {
			return -1
		}
		if x > 0 {
			return 1
		}
		return 0
	}),
	"invx": ScalarFn(func(x float64) float64 { return 1 / x }),
	"sinsq": ColumnsFn(
		math.Sin,
		func(x float64) float64 { return x * x },
	),
}

// ScalarFn lifts a pointwise function to the batch interface.
func ScalarFn(g func(float64) float64) chebtech.Fn {
	return func(x []float64) (utils.Matrix, error) {
		R := utils.NewMatrix(len(x), 1)
		for i, xi := range x {
			R.M.Set(i, 0, g(xi))
		}
		return R, nil
	}
}

// ColumnsFn builds a multi-column target from pointwise functions, one per
// output column.
func ColumnsFn(gs ...func(float64) float64) chebtech.Fn {
	return func(x []float64) (utils.Matrix, error) {
		R := utils.NewMatrix(len(x), len(gs))
		for j, g := range gs {
			for i, xi := range x {
				R.M.Set(i, j, g(xi))
			}
		}
		return R, nil
	}
}
