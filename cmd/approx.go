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
	"fmt"
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/saber00001/chebfun/InputParameters"
	"github.com/saber00001/chebfun/chebtech"
	"github.com/saber00001/chebfun/utils"
)

type ApproxModel struct {
	FunctionName string
	Tol          float64
	MaxDegree    int
	Refinement   string
	Parallel     bool
	Extrapolate  bool
	ParamsFile   string
	SampleTest   *bool
	HScale       float64
}

// ApproxCmd represents the approx command
var ApproxCmd = &cobra.Command{
	Use:   "approx",
	Short: "Constructs a Chebyshev representation of a builtin target function",
	Long: `
Runs the adaptive construction engine on one of the builtin target
functions and prints the resulting degree, scales and leading coefficients,

chebfun approx -f cos10pi --tol 1e-14`,
	Run: func(cmd *cobra.Command, args []string) {
		am := &ApproxModel{}
		am.FunctionName, _ = cmd.Flags().GetString("function")
		am.Tol, _ = cmd.Flags().GetFloat64("tol")
		am.MaxDegree, _ = cmd.Flags().GetInt("maxDegree")
		am.Refinement, _ = cmd.Flags().GetString("refinement")
		am.Parallel, _ = cmd.Flags().GetBool("parallel")
		am.Extrapolate, _ = cmd.Flags().GetBool("extrapolate")
		am.ParamsFile, _ = cmd.Flags().GetString("paramsFile")
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		RunApprox(am)
	},
}

func init() {
	rootCmd.AddCommand(ApproxCmd)
	ApproxCmd.Flags().StringP("function", "f", "cos10pi", "builtin target: one, cos10pi, sinsq, runge, abs, sign, invx")
	ApproxCmd.Flags().Float64P("tol", "t", 0, "target relative accuracy (default machine epsilon)")
	ApproxCmd.Flags().IntP("maxDegree", "m", 0, "give-up degree limit (default 65536)")
	ApproxCmd.Flags().StringP("refinement", "r", "nested", "refinement mode: nested, resampling, compose")
	ApproxCmd.Flags().BoolP("parallel", "p", false, "evaluate new sample points in parallel")
	ApproxCmd.Flags().Bool("extrapolate", false, "extrapolate endpoint values")
	ApproxCmd.Flags().StringP("paramsFile", "I", "", "YAML parameters file overriding the flags")
}

func RunApprox(am *ApproxModel) {
	if len(am.ParamsFile) != 0 {
		data, err := os.ReadFile(am.ParamsFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ap := &InputParameters.ApproxParameters{}
		if err = ap.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ap.Print()
		applyParams(am, ap)
	}
	f, ok := BuiltinFunctions[am.FunctionName]
	if !ok {
		fmt.Printf("error: unknown function %q\n", am.FunctionName)
		os.Exit(1)
	}
	cfg := chebtech.DefaultConfig()
	if am.Tol > 0 {
		cfg.Tolerance = am.Tol
	}
	if am.MaxDegree > 0 {
		cfg.MaxDegree = am.MaxDegree
	}
	cfg.Refinement = parseRefinement(am.Refinement)
	cfg.Parallel = am.Parallel
	cfg.Extrapolate = am.Extrapolate
	if am.SampleTest != nil {
		cfg.SampleTest = *am.SampleTest
	}
	if am.HScale > 0 {
		cfg.Hscale = am.HScale
	}

	t, err := chebtech.Construct(f, cfg)
	if err != nil {
		fmt.Printf("construction failed: %s\n", err.Error())
		os.Exit(1)
	}
	printResult(am.FunctionName, f, t)
}

func applyParams(am *ApproxModel, ap *InputParameters.ApproxParameters) {
	if len(ap.Function) != 0 {
		am.FunctionName = ap.Function
	}
	if ap.Tolerance > 0 {
		am.Tol = ap.Tolerance
	}
	if ap.MaxDegree > 0 {
		am.MaxDegree = ap.MaxDegree
	}
	if len(ap.Refinement) != 0 {
		am.Refinement = ap.Refinement
	}
	am.Parallel = am.Parallel || ap.Parallel
	am.Extrapolate = am.Extrapolate || ap.Extrapolate
	am.SampleTest = ap.SampleTest
	if ap.HScale > 0 {
		am.HScale = ap.HScale
	}
}

func parseRefinement(name string) chebtech.RefinementMode {
	switch name {
	case "resampling":
		return chebtech.Resampling
	case "compose":
		return chebtech.Compose
	default:
		return chebtech.Nested
	}
}

func printResult(name string, f chebtech.Fn, t *chebtech.Chebtech) {
	fmt.Printf("function: %s\n", name)
	fmt.Printf("degree = %d, columns = %d, happy = %v\n", t.Degree(), t.Columns(), t.IsHappy)
	for j := 0; j < t.Columns(); j++ {
		fmt.Printf("column %d: vscale = %.6g, epslevel = %.3g\n",
			j, t.Vscale.AtVec(j), t.Epslevel.AtVec(j))
	}
	nShow := t.Degree() + 1
	if nShow > 8 {
		nShow = 8
	}
	for k := 0; k < nShow; k++ {
		fmt.Printf("c[%d] = %v\n", k, t.Coeffs.Row(k))
	}
	fmt.Printf("max error over 1000 points = %.3g\n", maxError(f, t))
}

// maxError compares the representation against fresh function samples on a
// uniform probe grid, skipping non-finite targets.
func maxError(f chebtech.Fn, t *chebtech.Chebtech) (max float64) {
	const probes = 1000
	x := make([]float64, probes)
	for i := range x {
		x[i] = -1 + 2*float64(i)/float64(probes-1)
	}
	want, err := f(x)
	if err != nil {
		return math.NaN()
	}
	got := t.Eval(x)
	for j := 0; j < t.Columns(); j++ {
		for i := 0; i < probes; i++ {
			w := want.At(i, j)
			if !utils.IsFinite(w) {
				continue
			}
			if d := math.Abs(got.At(i, j) - w); d > max {
				max = d
			}
		}
	}
	return
}
