package eureca_building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
box_zone builds a 10 x 8 x 3 m single zone: four external walls (south one
30% glazed), roof, ground floor and an internal mass partition.
*/
func box_zone(t *testing.T, cfg *Config) *ThermalZone {
	t.Helper()

	wall := reference_wall(t)

	concrete, err := NewMaterial("concrete", 0.2, 1.0, 1000, 1800)
	require.NoError(t, err)
	insulation, err := NewMaterial("roof insulation", 0.08, 0.03, 1000, 30)
	require.NoError(t, err)
	roof_c, err := NewConstruction("insulated roof", ConstructionRoof, []Layer{insulation, concrete})
	require.NoError(t, err)
	ground_c, err := NewConstruction("slab on ground", ConstructionGroundFloor, []Layer{concrete})
	require.NoError(t, err)

	plaster, err := NewMaterial("plaster", 0.01, 1.0, 800, 2000)
	require.NoError(t, err)
	brick, err := NewMaterial("partition brick", 0.08, 0.8, 800, 1200)
	require.NoError(t, err)
	partition_c, err := NewConstruction("partition", ConstructionIntWall, []Layer{plaster, brick, plaster})
	require.NoError(t, err)

	window, err := NewSimpleWindow("double glazing", 2.8, 0.6, 0.8, 0.2, 0.95, 1.0)
	require.NoError(t, err)

	south, err := NewSurface("south", []Vertex{
		{0, 0, 0}, {10, 0, 0}, {10, 0, 3}, {0, 0, 3},
	}, 0.3, nil, "", wall, window)
	require.NoError(t, err)
	east, err := NewSurface("east", []Vertex{
		{10, 8, 3}, {10, 0, 3}, {10, 0, 0}, {10, 8, 0},
	}, 0.0, nil, "", wall, nil)
	require.NoError(t, err)
	north, err := NewSurface("north", []Vertex{
		{10, 8, 0}, {0, 8, 0}, {0, 8, 3}, {10, 8, 3},
	}, 0.1, nil, "", wall, window)
	require.NoError(t, err)
	west, err := NewSurface("west", []Vertex{
		{0, 0, 3}, {0, 8, 3}, {0, 8, 0}, {0, 0, 0},
	}, 0.0, nil, "", wall, nil)
	require.NoError(t, err)
	roof, err := NewSurface("roof", []Vertex{
		{0, 0, 3}, {10, 0, 3}, {10, 8, 3}, {0, 8, 3},
	}, 0.0, nil, "", roof_c, nil)
	require.NoError(t, err)
	floor, err := NewSurface("floor", []Vertex{
		{0, 8, 0}, {10, 8, 0}, {10, 0, 0}, {0, 0, 0},
	}, 0.0, nil, "", ground_c, nil)
	require.NoError(t, err)
	partition, err := NewSurfaceInternalMass("partitions", 60.0, SurfaceTypeIntWall, partition_c)
	require.NoError(t, err)

	volume := 240.0
	return NewThermalZone("office", []ZoneSurface{south, east, north, west, roof, floor, partition}, nil, &volume, cfg)
}

func TestNewThermalZone_Defaults(t *testing.T) {
	cfg := hourly_config(t)

	zone := box_zone(t, cfg)
	assert.InDelta(t, 80.0, zone.NetFloorArea(), 1e-9, "the footprint falls back to the ground floor area")
	assert.Equal(t, 240.0, zone.Volume())
	assert.InDelta(t, 240.0*get_rho_a()*get_c_a(), zone.AirThermalCapacity(), 1e-6)

	empty := NewThermalZone("empty", nil, nil, nil, cfg)
	assert.Equal(t, 1e-5, empty.Volume())
	assert.Equal(t, 1e-5, empty.NetFloorArea())

	negative_volume := -240.0
	abs := NewThermalZone("negative", nil, nil, &negative_volume, cfg)
	assert.Equal(t, 240.0, abs.Volume(), "negative aggregates continue with the absolute value")
}

func TestCalculateISO13790Params(t *testing.T) {
	cfg := hourly_config(t)
	zone := box_zone(t, cfg)

	assert.Equal(t, ZoneUnconfigured, zone.ISOState())
	require.NoError(t, zone.CalculateISO13790Params())
	assert.Equal(t, ZoneParametersBuilt, zone.ISOState())

	// all seven surfaces contribute to Atot, both faces of the partition once
	assert.InDelta(t, 30+24+30+24+80+80+60, zone.Atot, 1e-9)
	assert.Greater(t, zone.Cm, 0.0)
	assert.InDelta(t, zone.Cm*zone.Cm/zone.DenAm, zone.Am, 1e-9)
	assert.InDelta(t, 9.1*zone.Am, zone.Htr_ms, 1e-9)
	assert.InDelta(t, 3.45*zone.Atot, zone.Htr_is, 1e-9)
	assert.InDelta(t, 1/(1/zone.Htr_op-1/zone.Htr_ms), zone.Htr_em, 1e-9)

	// glazed: 9 m2 south + 3 m2 north at U 2.8
	assert.InDelta(t, (9.0+3.0)*2.8, zone.Htr_w, 1e-9)
	assert.InDelta(t, zone.Htr_op+zone.Htr_w, zone.UA_tot, 1e-12)
	// the 5R1C mass surface stays within its physical bracket
	assert.Less(t, zone.Am, zone.Atot)
}

func TestCalculateISO13790Params_MissingConstruction(t *testing.T) {
	cfg := hourly_config(t)
	bare, err := NewSurfaceInternalMass("bare", 10.0, SurfaceTypeIntWall, nil)
	require.NoError(t, err)
	volume := 100.0
	zone := NewThermalZone("broken", []ZoneSurface{bare}, nil, &volume, cfg)

	var missing *MissingPropertyError
	require.ErrorAs(t, zone.CalculateISO13790Params(), &missing)
	assert.Equal(t, "construction", missing.Property)
	assert.Equal(t, ZoneUnconfigured, zone.ISOState())
}

func TestCalculateVDI6007Params(t *testing.T) {
	cfg := hourly_config(t)
	zone := box_zone(t, cfg)

	require.NoError(t, zone.CalculateVDI6007Params())
	assert.Equal(t, ZoneParametersBuilt, zone.VDIState())

	assert.Greater(t, zone.R1AW, 0.0)
	assert.Greater(t, zone.C1AW, 0.0)
	assert.Greater(t, zone.R1IW, 0.0)
	assert.Greater(t, zone.C1IW, 0.0)
	assert.Greater(t, zone.RrestAW, 0.0)
	assert.Greater(t, zone.RalphaStarIL, 0.0)
	assert.Greater(t, zone.RalphaStarAW, 0.0)
	assert.Greater(t, zone.RalphaStarIW, 0.0)

	assert.InDelta(t, 1.0/zone.UA_tot, zone.RgesAW, 1e-12)
	assert.InDelta(t, 30+24+30+24+80+80+60, zone.Araum, 1e-9)
	assert.InDelta(t, 30+24+30+24+80+80, zone.Aaw, 1e-9)

	// the transmission chain cannot exceed the total resistance
	assert.Less(t, zone.R1AW+zone.RrestAW, zone.RgesAW+1e-12)
}

func TestCalculateVDI6007Params_ConsistentWithISO(t *testing.T) {
	cfg := hourly_config(t)
	zone := box_zone(t, cfg)

	require.NoError(t, zone.CalculateISO13790Params())
	iso_ua, iso_op, iso_w := zone.UA_tot, zone.Htr_op, zone.Htr_w

	require.NoError(t, zone.CalculateVDI6007Params())
	assert.InDelta(t, iso_ua, zone.UA_tot, 1e-9, "both models share the transmission aggregates")
	assert.InDelta(t, iso_op, zone.Htr_op, 1e-9)
	assert.InDelta(t, iso_w, zone.Htr_w, 1e-9)
}

func TestCalculateVDI6007Params_RequiresBothSurfaceSets(t *testing.T) {
	cfg := hourly_config(t)

	brick, err := NewMaterial("brick", 0.15, 1.4, 800, 2000)
	require.NoError(t, err)
	wall_c, err := NewConstruction("wall", ConstructionExtWall, []Layer{brick})
	require.NoError(t, err)
	wall, err := NewSurface("wall", []Vertex{
		{0, 0, 0}, {10, 0, 0}, {10, 0, 3}, {0, 0, 3},
	}, 0.0, nil, "", wall_c, nil)
	require.NoError(t, err)

	volume := 100.0
	zone := NewThermalZone("outer only", []ZoneSurface{wall}, nil, &volume, cfg)
	var missing *MissingPropertyError
	require.ErrorAs(t, zone.CalculateVDI6007Params(), &missing)
}

func TestZone_LoadStaging(t *testing.T) {
	cfg := hourly_config(t)
	zone := box_zone(t, cfg)
	weather := test_weather(t, cfg, 10.0)

	// loads before parameters is out of order
	var notready *ZoneNotReadyError
	require.ErrorAs(t, zone.CalculateZoneLoadsISO13790(weather), &notready)
	assert.Equal(t, "CalculateZoneLoadsISO13790", notready.Operation)
	require.ErrorAs(t, zone.CalculateZoneLoadsVDI6007(weather), &notready)

	// solving before the loads is, too
	_, err := SolveISO13790(zone, weather, 1e4, 1e4)
	require.ErrorAs(t, err, &notready)
	_, err = SolveVDI6007(zone, weather, 1e4, 1e4)
	require.ErrorAs(t, err, &notready)

	require.NoError(t, zone.CalculateISO13790Params())
	require.NoError(t, zone.CalculateZoneLoadsISO13790(weather))
	assert.Equal(t, ZoneReady, zone.ISOState())

	_, err = SolveVDI6007(zone, weather, 1e4, 1e4)
	require.ErrorAs(t, err, &notready, "the two models are staged independently")
	require.NoError(t, zone.CalculateVDI6007Params())
	require.NoError(t, zone.CalculateZoneLoadsVDI6007(weather))
	assert.Equal(t, ZoneReady, zone.VDIState())
}

func TestZone_NodeLoadSplit(t *testing.T) {
	cfg := hourly_config(t)
	zone := box_zone(t, cfg)
	weather := test_weather(t, cfg, 10.0)

	sched, err := NewSchedule("always on", ScheduleTypePercent,
		constant_values(1.0, cfg.NumberOfTimeStepsYear), nil, nil, cfg)
	require.NoError(t, err)
	load, err := NewElectricLoad("appliances", 1000.0, HeatGainUnitW, sched, 0.5, 0.5)
	require.NoError(t, err)
	zone.AddInternalLoad(load)

	require.NoError(t, zone.CalculateISO13790Params())
	require.NoError(t, zone.CalculateZoneLoadsISO13790(weather))

	// the convective half goes straight to the air node
	assert.InDelta(t, 500.0, zone.phi_ia[0], 1e-9)

	// the surface/mass split keeps the Am/Atot weights at every step
	st_weight := 1 - zone.Am/zone.Atot - zone.Htr_w/(9.1*zone.Atot)
	m_weight := zone.Am / zone.Atot
	for _, ts := range []int{0, 12, 5000} {
		total := zone.phi_st[ts]/st_weight - zone.phi_m[ts]/m_weight
		assert.InDelta(t, 0.0, total, 1e-6, "step %d", ts)
	}
}

func TestZone_ExtractLoadsAndVentilation(t *testing.T) {
	cfg := hourly_config(t)
	zone := box_zone(t, cfg)
	weather := test_weather(t, cfg, 10.0)

	sched, err := NewSchedule("always on", ScheduleTypePercent,
		constant_values(1.0, cfg.NumberOfTimeStepsYear), nil, nil, cfg)
	require.NoError(t, err)

	people, err := NewPeople("people", 5.0, HeatGainUnitWPerM2, sched, 0.45, 0.3, 0.7, 0.0)
	require.NoError(t, err)
	zone.AddInternalLoad(people)

	convective, radiant, latent, err := zone.ExtractConvectiveRadiativeLatentLoad()
	require.NoError(t, err)
	// 5 W/m2 over the 80 m2 footprint
	assert.InDelta(t, 5.0*80.0*0.55*0.7, convective[0], 1e-9)
	assert.InDelta(t, 5.0*80.0*0.55*0.3, radiant[0], 1e-9)
	assert.InDelta(t, 5.0*80.0*0.45/get_l_wtr(), latent[0], 1e-12)

	vent, err := NewNaturalVentilation("infiltration", 0.3, VentilationUnitVolPerH, sched)
	require.NoError(t, err)
	zone.AddNaturalVentilation(vent)

	air, vapour, err := zone.ExtractNaturalVentilation(weather)
	require.NoError(t, err)
	assert.InDelta(t, 0.3*240.0*get_rho_a()/3600.0, air[0], 1e-9)
	assert.InDelta(t, air[0]*weather.SpecificHumidity()[0], vapour[0], 1e-12)
}

func TestZone_SetpointValidation(t *testing.T) {
	cfg := hourly_config(t)
	zone := box_zone(t, cfg)

	heating, err := NewSchedule("heating", ScheduleTypeTemperature,
		constant_values(20.0, cfg.NumberOfTimeStepsYear), nil, nil, cfg)
	require.NoError(t, err)
	cooling, err := NewSchedule("cooling", ScheduleTypeTemperature,
		constant_values(26.0, cfg.NumberOfTimeStepsYear), nil, nil, cfg)
	require.NoError(t, err)
	band, err := NewSetpointDualBand("thermostat", SetpointTypeTemperature, heating, cooling)
	require.NoError(t, err)

	require.Error(t, zone.AddTemperatureSetpoint(band, "floor"))
	require.NoError(t, zone.AddTemperatureSetpoint(band, SetpointModeOperative))
	sp, mode := zone.TemperatureSetpoint()
	assert.Same(t, band, sp)
	assert.Equal(t, SetpointModeOperative, mode)

	require.Error(t, zone.AddHumiditySetpoint(band), "a temperature band is not a humidity band")
}
