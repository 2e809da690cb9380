package chebtech

import (
	"math"

	"github.com/saber00001/chebfun/utils"
)

// Fn evaluates the target function on a batch of points in [-1,1]. It must
// return one row per point; the column count is fixed by the first call.
type Fn func(x []float64) (utils.Matrix, error)

// Config controls one construction run. The zero value of the numeric
// fields is replaced by defaults; use DefaultConfig for the canonical
// settings (which also enable the sample-point cross check).
type Config struct {
	Tolerance     float64        // target relative accuracy
	MaxDegree     int            // give-up degree limit
	MinSamples    int            // points in the first adaptive grid, 2^k+1
	Refinement    RefinementMode // Nested, Resampling or Compose
	SampleTest    bool           // held-out point cross check on acceptance
	Extrapolate   bool           // force endpoint extrapolation
	Parallel      bool           // parallel batch evaluation of new points
	InitialVscale float64        // floor for the vertical scale
	Hscale        float64        // horizontal scale, constant for the run
	InitialLength int            // Compose refinement's starting length
}

func DefaultConfig() (cfg Config) {
	cfg = Config{
		Tolerance:  utils.Eps,
		MaxDegree:  1 << 16,
		MinSamples: 17,
		Refinement: Nested,
		SampleTest: true,
		Hscale:     1,
	}
	return
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.MaxDegree <= 0 {
		cfg.MaxDegree = def.MaxDegree
	}
	if cfg.MinSamples < 2 {
		cfg.MinSamples = def.MinSamples
	}
	if cfg.Hscale <= 0 {
		cfg.Hscale = def.Hscale
	}
	return cfg
}

// Chebtech is a finished polynomial representation. Coeffs row j holds the
// degree-j Chebyshev coefficient per column; Values holds the samples on
// the matching grid. The two stay consistent under the transform pair.
type Chebtech struct {
	Coeffs   utils.Matrix
	Values   utils.Matrix
	IsHappy  bool
	Epslevel utils.Vector
	Vscale   utils.Vector
	Hscale   float64
}

func (t *Chebtech) Degree() (n int) {
	nr, _ := t.Coeffs.Dims()
	return nr - 1
}

func (t *Chebtech) Columns() (nc int) {
	_, nc = t.Coeffs.Dims()
	return
}

// Eval evaluates the representation at arbitrary points in [-1,1].
func (t *Chebtech) Eval(x []float64) utils.Matrix {
	return EvalCoeffs(t.Coeffs, x)
}

// Construct adaptively builds a Chebtech for f: refine, rescale,
// extrapolate, transform and check happiness until the tail is negligible
// or the degree limit is reached. Degree exhaustion is soft and returns the
// best-effort representation with IsHappy false; evaluation failures and
// all-non-finite columns abort with no result.
func Construct(f Fn, cfg Config) (t *Chebtech, err error) {
	cfg = cfg.withDefaults()
	var (
		ref       = &refiner{f: f, cfg: cfg}
		values    utils.Matrix
		lastClean utils.Matrix
		coeffs    utils.Matrix
		vscale    utils.Vector
		res       HappinessResult
		happy     bool
	)
	for {
		newValues, giveUp, errN := ref.next(values)
		if errN != nil {
			return nil, errN
		}
		if giveUp {
			break
		}
		values = newValues
		vscale = UpdateVscale(vscale, values)
		if cfg.InitialVscale > 0 {
			vscale.Apply(func(v float64) float64 { return math.Max(v, cfg.InitialVscale) })
		}
		clean, _, _, errX := Extrapolate(values, cfg.Extrapolate)
		if errX != nil {
			return nil, errX
		}
		lastClean = clean
		coeffs = ValsToCoeffs(clean)
		res = ClassicCheck(coeffs, vscale, cfg.Tolerance)
		if res.Happy && cfg.SampleTest {
			ok, errS := sampleTest(f, coeffs, vscale, cfg.Tolerance)
			if errS != nil {
				return nil, errS
			}
			res.Happy = ok
		}
		if res.Happy {
			coeffs = Alias(coeffs, res.Cutoff+1)
			happy = true
			break
		}
		// Loop back to refinement with the raw sampled values: values was
		// never overwritten by clean, so any non-finite markers survive and
		// the refiner sees the true function output.
	}
	t = &Chebtech{
		Coeffs:   coeffs,
		IsHappy:  happy,
		Epslevel: res.Epslevel,
		Vscale:   vscale,
		Hscale:   cfg.Hscale,
	}
	if happy {
		t.Values = CoeffsToVals(coeffs)
		t.Simplify()
	} else {
		t.Values = lastClean
	}
	return
}

// FromValues is the non-adaptive entry point: the supplied samples are
// taken as exact. Extrapolation and the transform still run, but the result
// is unconditionally happy with epslevel at machine epsilon, computed from
// the observed scale rather than a coefficient tail.
func FromValues(values utils.Matrix, cfg Config) (t *Chebtech, err error) {
	cfg = cfg.withDefaults()
	vr, vc := values.Dims()
	if vr == 0 || vc == 0 {
		return nil, &DimensionMismatchError{ValRows: vr, ValCols: vc}
	}
	clean, _, _, errX := Extrapolate(values, cfg.Extrapolate)
	if errX != nil {
		return nil, errX
	}
	vscale := UpdateVscale(utils.Vector{}, values)
	if cfg.InitialVscale > 0 {
		vscale.Apply(func(v float64) float64 { return math.Max(v, cfg.InitialVscale) })
	}
	t = &Chebtech{
		Coeffs:   ValsToCoeffs(clean),
		Values:   clean,
		IsHappy:  true,
		Epslevel: utils.NewVectorConst(vc, utils.Eps),
		Vscale:   vscale,
		Hscale:   cfg.Hscale,
	}
	return
}

// FromValuesCoeffs injects a pre-computed values/coefficients pair without
// re-deriving either. The shapes must agree.
func FromValuesCoeffs(values, coeffs utils.Matrix, cfg Config) (t *Chebtech, err error) {
	cfg = cfg.withDefaults()
	var (
		vr, vc = values.Dims()
		cr, cc = coeffs.Dims()
	)
	if vr != cr || vc != cc || vr == 0 {
		return nil, &DimensionMismatchError{ValRows: vr, ValCols: vc, CoeffRows: cr, CoeffCols: cc}
	}
	vscale := UpdateVscale(utils.Vector{}, values)
	if cfg.InitialVscale > 0 {
		vscale.Apply(func(v float64) float64 { return math.Max(v, cfg.InitialVscale) })
	}
	t = &Chebtech{
		Coeffs:   coeffs.Copy(),
		Values:   values.Copy(),
		IsHappy:  true,
		Epslevel: utils.NewVectorConst(vc, utils.Eps),
		Vscale:   vscale,
		Hscale:   cfg.Hscale,
	}
	return
}
