package eureca_building

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcSolarPosition(t *testing.T) {
	cfg := hourly_config(t)
	pos := CalcSolarPosition(radians(45.0), radians(15.0), 1, cfg)

	require.Len(t, pos.HSun, cfg.NumberOfTimeStepsYear)
	require.Len(t, pos.ASun, cfg.NumberOfTimeStepsYear)

	for _, h := range pos.HSun {
		assert.GreaterOrEqual(t, h, -math.Pi/2)
		assert.LessOrEqual(t, h, math.Pi/2)
	}

	// June 21st (day 172) at 45 N, on the reference meridian
	day := 171 * 24
	assert.Less(t, pos.HSun[day], 0.0, "midnight sun below the horizon")
	noon := pos.HSun[day+12]
	assert.InDelta(t, radians(90.0-45.0+23.44), noon, radians(3.0), "summer solstice noon elevation")
	assert.InDelta(t, 0.0, pos.ASun[day+12], radians(10.0), "sun near south at noon")
	// morning sun east (negative azimuth), afternoon west (positive)
	assert.Less(t, pos.ASun[day+8], 0.0)
	assert.Greater(t, pos.ASun[day+16], 0.0)

	// December 21st (day 355) noon elevation
	winter_noon := pos.HSun[354*24+12]
	assert.InDelta(t, radians(90.0-45.0-23.44), winter_noon, radians(3.0))
	assert.Greater(t, noon, winter_noon)
}

func TestCalcPlaneIrradiance_Horizontal(t *testing.T) {
	cfg := hourly_config(t)
	pos := CalcSolarPosition(radians(45.0), radians(15.0), 1, cfg)

	n := cfg.NumberOfTimeStepsYear
	ghi := constant_values(300, n)
	dni := constant_values(400, n)
	dhi := constant_values(100, n)

	horizontal := CalcPlaneIrradiance(pos, ghi, dni, dhi, 0, 0)
	for i := 0; i < 48; i++ {
		h := pos.HSun[i]
		if h <= 0 {
			assert.Equal(t, 0.0, horizontal.Direct[i], "no beam below the horizon")
			assert.InDelta(t, 100.0, horizontal.Global[i], 1e-9, "sky diffuse only at night")
			continue
		}
		// horizontal: cos(aoi) is the elevation sine, no ground reflection
		assert.InDelta(t, 400.0*math.Sin(h), horizontal.Direct[i], 1e-9)
		assert.InDelta(t, horizontal.Direct[i]+100.0, horizontal.Global[i], 1e-9)
	}
}

func TestCalcPlaneIrradiance_VerticalOrientations(t *testing.T) {
	cfg := hourly_config(t)
	pos := CalcSolarPosition(radians(45.0), radians(15.0), 1, cfg)

	n := cfg.NumberOfTimeStepsYear
	ghi := constant_values(300, n)
	dni := constant_values(400, n)
	dhi := constant_values(100, n)

	south := CalcPlaneIrradiance(pos, ghi, dni, dhi, 0, 90)
	north := CalcPlaneIrradiance(pos, ghi, dni, dhi, -180, 90)

	// winter noon: the south face sees the beam, the north face does not
	noon := 10*24 + 12
	require.Greater(t, pos.HSun[noon], 0.0)
	assert.Greater(t, south.Direct[noon], 200.0)
	assert.Equal(t, 0.0, north.Direct[noon])
	assert.Equal(t, 90.0, north.AOI[noon], "sun behind the plane clamps at 90 deg")

	// vertical planes see half the sky and half the ground
	assert.InDelta(t, north.Direct[noon]+100.0*0.5+300.0*ground_reflectance*0.5, north.Global[noon], 1e-9)

	yearly := func(p *PlaneIrradiance) float64 {
		total := 0.0
		for _, v := range p.Global {
			total += v
		}
		return total
	}
	assert.Greater(t, yearly(south), yearly(north), "southern exposure dominates at 45 N")
}
