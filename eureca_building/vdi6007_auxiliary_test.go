package eureca_building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpedenceParallel_SinglePairIdentity(t *testing.T) {
	r, c := impedence_parallel([]float64{0.05}, []float64{2.0e6}, 0)
	assert.Equal(t, 0.05, r)
	assert.Equal(t, 2.0e6, c)
}

func TestImpedenceParallel_EqualPairs(t *testing.T) {
	// two identical surfaces combine like two identical impedances in
	// parallel: half the resistance, twice the capacity, at any frequency
	r, c := impedence_parallel([]float64{0.04, 0.04}, []float64{1.5e6, 1.5e6}, 7)
	assert.InDelta(t, 0.02, r, 1e-12)
	assert.InDelta(t, 3.0e6, c, 1e-3)
}

func TestImpedenceParallel_MasslessPairs(t *testing.T) {
	r, c := impedence_parallel([]float64{0.2, 0.3}, []float64{0, 0}, 0)
	assert.InDelta(t, 0.12, r, 1e-12)
	assert.Equal(t, 0.0, c)
}

func TestImpedenceParallel_BoundsAndOrder(t *testing.T) {
	r1 := []float64{0.03, 0.08, 0.12}
	c1 := []float64{2.5e6, 8.0e5, 4.0e5}

	r, c := impedence_parallel(r1, c1, 7)
	assert.Greater(t, r, 0.0)
	assert.Less(t, r, 0.03, "the combination beats the smallest branch resistance")
	assert.Greater(t, c, 2.5e6, "capacities accumulate")
	assert.Less(t, c, 2.5e6+8.0e5+4.0e5+1)
}

func TestTri2Star(t *testing.T) {
	s1, s2, s3 := tri2star(6.0, 3.0, 2.0)
	assert.InDelta(t, 3.0*2.0/11.0, s1, 1e-12)
	assert.InDelta(t, 6.0*2.0/11.0, s2, 1e-12)
	assert.InDelta(t, 6.0*3.0/11.0, s3, 1e-12)

	// symmetric triangle degenerates to three equal star branches of R/3
	s1, s2, s3 = tri2star(9.0, 9.0, 9.0)
	assert.InDelta(t, 3.0, s1, 1e-12)
	assert.Equal(t, s1, s2)
	assert.Equal(t, s2, s3)
}

func TestLongWaveRadiation(t *testing.T) {
	theta_atm, theta_erd := long_wave_radiation(10.0)

	// grey ground emission maps straight back to the air temperature
	require.InDelta(t, 10.0, theta_erd, 1e-9)
	// clear-sky atmosphere radiates well below the air temperature
	assert.Less(t, theta_atm, 10.0)
	assert.Greater(t, theta_atm, -40.0)

	colder_atm, _ := long_wave_radiation(-5.0)
	assert.Less(t, colder_atm, theta_atm)
}
