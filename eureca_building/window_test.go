package eureca_building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleWindow(t *testing.T) {
	w, err := NewSimpleWindow("double glazing", 2.8, 0.6, 0.8, 0.2, 0.95, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 2.8, w.UValue())
	assert.Equal(t, 0.2, w.FrameFactor())
	assert.InDelta(t, 1.0/2.8-0.13-0.04, w.RlW(), 1e-12)
	assert.Equal(t, 0.13, w.RiW())

	// incidence profile: nominal at normal incidence, zero at grazing
	assert.InDelta(t, 0.6, w.SolarHeatGainCoef(0), 1e-12)
	assert.InDelta(t, 0.0, w.SolarHeatGainCoef(90), 1e-12)
	assert.InDelta(t, 0.6*0.72, w.SolarHeatGainCoefDiffuse(), 1e-12)
	// interpolated between the 40 and 50 degree grid points
	mid := w.SolarHeatGainCoef(45)
	assert.Greater(t, mid, 0.6*0.92)
	assert.Less(t, mid, 0.6*0.96)
}

func TestSimpleWindow_Bounds(t *testing.T) {
	var bounds *PropertyOutsideBoundariesError

	_, err := NewSimpleWindow("bad u", -1.0, 0.6, 0.8, 0.2, 0.95, 1.0)
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, "U_value", bounds.Property)

	_, err = NewSimpleWindow("bad shgc", 2.8, 1.5, 0.8, 0.2, 0.95, 1.0)
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, "solar_heat_gain_coef", bounds.Property)
}

func TestSimpleWindow_GlassResistanceFloor(t *testing.T) {
	// 1/U below the film resistances: the glass-only term is floored
	w, err := NewSimpleWindow("poor glazing", 6.5, 0.8, 0.8, 0.1, 1.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1e-4, w.RlW())
}
