package eureca_building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people_schedule(t *testing.T, cfg *Config) *Schedule {
	t.Helper()
	values := constant_values(0.1, cfg.NumberOfTimeStepsYear)
	values[1], values[2], values[3] = 0.2, 0.3, 0.5
	s, err := NewSchedule("occupancy", ScheduleTypePercent, values, nil, nil, cfg)
	require.NoError(t, err)
	return s
}

func TestPeople_SpecificLoadSplit(t *testing.T) {
	cfg := hourly_config(t)
	people, err := NewPeople("people", 10.0, HeatGainUnitWPerM2,
		people_schedule(t, cfg), 0.45, 0.3, 0.7, 0.0)
	require.NoError(t, err)

	area := 2.0
	convective, err := people.ConvectiveLoad(&area)
	require.NoError(t, err)
	radiant, err := people.RadiantLoad(&area)
	require.NoError(t, err)
	latent, err := people.LatentLoad(&area)
	require.NoError(t, err)

	// nominal 10 W/m2 over 2 m2, sensible fraction 0.55
	for i, want := range []float64{0.77, 1.54, 2.31, 3.85} {
		assert.InDelta(t, want, convective[i], 1e-9, "convective, step %d", i)
	}
	for i, want := range []float64{0.33, 0.66, 0.99, 1.65} {
		assert.InDelta(t, want, radiant[i], 1e-9, "radiant, step %d", i)
	}
	// latent: 10 * 2 * 0.45 W over the evaporation heat
	assert.InDelta(t, 10.0*2.0*0.45*0.1/get_l_wtr(), latent[0], 1e-15)
	assert.Len(t, convective, cfg.NumberOfTimeStepsYear)
}

func TestPeople_HeadcountUnits(t *testing.T) {
	cfg := hourly_config(t)

	// 2 px at the default metabolic rate of 110 W/px
	people, err := NewPeople("people px", 2.0, HeatGainUnitPx,
		people_schedule(t, cfg), 0.0, 0.5, 0.5, 0.0)
	require.NoError(t, err)
	convective, err := people.ConvectiveLoad(nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0*110.0*0.5*0.1, convective[0], 1e-9)

	// explicit metabolic rate
	people, err = NewPeople("people px", 2.0, HeatGainUnitPx,
		people_schedule(t, cfg), 0.0, 0.5, 0.5, 80.0)
	require.NoError(t, err)
	convective, err = people.ConvectiveLoad(nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0*80.0*0.5*0.1, convective[0], 1e-9)
}

func TestPeople_AreaRequiredForSpecificUnits(t *testing.T) {
	cfg := hourly_config(t)
	people, err := NewPeople("people", 10.0, HeatGainUnitWPerM2,
		people_schedule(t, cfg), 0.45, 0.3, 0.7, 0.0)
	require.NoError(t, err)

	_, err = people.ConvectiveLoad(nil)
	var noarea *AreaNotProvidedError
	require.ErrorAs(t, err, &noarea)
}

func TestPeople_FractionValidation(t *testing.T) {
	cfg := hourly_config(t)
	sched := people_schedule(t, cfg)

	_, err := NewPeople("bad split", 10.0, HeatGainUnitW, sched, 0.45, 0.3, 0.6, 0.0)
	var split *ConvectiveRadiantFractionError
	require.ErrorAs(t, err, &split)

	_, err = NewPeople("bad fraction", 10.0, HeatGainUnitW, sched, 1.45, 0.3, 0.7, 0.0)
	var bounds *PropertyOutsideBoundariesError
	require.ErrorAs(t, err, &bounds)
}

func TestElectricLoad(t *testing.T) {
	cfg := hourly_config(t)
	sched := people_schedule(t, cfg)

	load, err := NewElectricLoad("appliances", 100.0, HeatGainUnitW, sched, 0.3, 0.7)
	require.NoError(t, err)

	convective, err := load.ConvectiveLoad(nil)
	require.NoError(t, err)
	radiant, err := load.RadiantLoad(nil)
	require.NoError(t, err)
	latent, err := load.LatentLoad(nil)
	require.NoError(t, err)

	assert.InDelta(t, 100.0*0.7*0.1, convective[0], 1e-9)
	assert.InDelta(t, 100.0*0.3*0.1, radiant[0], 1e-9)
	assert.Equal(t, 0.0, latent[0], "electric loads carry no latent part")

	// headcount units are for occupancy only
	_, err = NewElectricLoad("bad unit", 2.0, HeatGainUnitPx, sched, 0.3, 0.7)
	var unit *InvalidHeatGainUnitError
	require.ErrorAs(t, err, &unit)
}

func TestLights_Preset(t *testing.T) {
	cfg := hourly_config(t)
	sched := people_schedule(t, cfg)

	lights, err := NewLights("lights", 200.0, HeatGainUnitW, sched)
	require.NoError(t, err)

	radiant, err := lights.RadiantLoad(nil)
	require.NoError(t, err)
	convective, err := lights.ConvectiveLoad(nil)
	require.NoError(t, err)
	assert.InDelta(t, 200.0*0.7*0.1, radiant[0], 1e-9)
	assert.InDelta(t, 200.0*0.3*0.1, convective[0], 1e-9)
}
