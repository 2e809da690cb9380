package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	// Full document
	{
		var (
			data = []byte(`
Title: "Runge function"
Function: runge
Tolerance: 1.e-12
MaxDegree: 4096
Refinement: resampling
SampleTest: false
Extrapolate: true
Parallel: true
HScale: 2.0
`)
			ap ApproxParameters
		)
		require.NoError(t, ap.Parse(data))
		assert.Equal(t, "Runge function", ap.Title)
		assert.Equal(t, "runge", ap.Function)
		assert.Equal(t, 1.e-12, ap.Tolerance)
		assert.Equal(t, 4096, ap.MaxDegree)
		assert.Equal(t, "resampling", ap.Refinement)
		require.NotNil(t, ap.SampleTest)
		assert.False(t, *ap.SampleTest)
		assert.True(t, ap.Extrapolate)
		assert.True(t, ap.Parallel)
		assert.Equal(t, 2.0, ap.HScale)
	}
	// Omitted fields stay at their zero values so callers can tell
	// "unset" from "set to false"
	{
		var (
			data = []byte(`
Title: "Minimal"
Function: cos10pi
`)
			ap ApproxParameters
		)
		require.NoError(t, ap.Parse(data))
		assert.Equal(t, "cos10pi", ap.Function)
		assert.Nil(t, ap.SampleTest)
		assert.Zero(t, ap.Tolerance)
		assert.Zero(t, ap.MaxDegree)
	}
	// Malformed input is an error, not a partial parse
	{
		var ap ApproxParameters
		assert.Error(t, ap.Parse([]byte("Title: [unclosed")))
	}
}
