package main

import (
	"flag"
	"log"
	"path/filepath"

	eb "github.com/BETALAB-team/eureca-building/eureca_building"
)

/*
Demo driver: builds a single-zone office box, runs the yearly simulation
with both zone models (ISO 13790 and VDI 6007) and writes the result series
to CSV.
*/

func main() {
	config_path := flag.String("config", "", "path of the simulation config JSON (optional, default 1 time step per hour)")
	weather_path := flag.String("weather", "", "path of the hourly weather CSV (required)")
	output_dir := flag.String("o", "output", "output directory")
	latitude := flag.Float64("lat", 45.41, "site latitude, deg")
	longitude := flag.Float64("lon", 11.88, "site longitude, deg")
	timezone := flag.Float64("tz", 1, "UTC offset of the weather data, hours")
	flag.Parse()

	if *weather_path == "" {
		log.Fatal("a weather CSV is required: -weather path/to/weather.csv")
	}

	var cfg *eb.Config
	var err error
	if *config_path != "" {
		cfg, err = eb.LoadConfig(*config_path)
	} else {
		cfg, err = eb.NewConfig(1)
	}
	if err != nil {
		log.Fatal(err)
	}

	weather, err := eb.NewWeatherFile(*weather_path, *latitude, *longitude, *timezone, cfg, 8, 3, true)
	if err != nil {
		log.Fatal(err)
	}

	zone, err := build_office_zone(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := zone.CalculateISO13790Params(); err != nil {
		log.Fatal(err)
	}
	if err := zone.CalculateVDI6007Params(); err != nil {
		log.Fatal(err)
	}
	if err := zone.CalculateZoneLoadsISO13790(weather); err != nil {
		log.Fatal(err)
	}
	if err := zone.CalculateZoneLoadsVDI6007(weather); err != nil {
		log.Fatal(err)
	}

	iso_results, err := eb.SolveISO13790(zone, weather, 20000, 20000)
	if err != nil {
		log.Fatal(err)
	}
	vdi_results, err := eb.SolveVDI6007(zone, weather, 20000, 20000)
	if err != nil {
		log.Fatal(err)
	}

	recorder := eb.NewZoneResultsRecorder()
	recorder.AddZoneResults(zone.Name, "ISO13790", iso_results)
	recorder.AddZoneResults(zone.Name, "VDI6007", vdi_results)
	out := filepath.Join(*output_dir, "zone_results.csv")
	if err := recorder.Save(out); err != nil {
		log.Fatal(err)
	}
	log.Printf("results written to %s", out)
}

// build_office_zone assembles a 10 x 8 x 3 m office box with a glazed south
// wall, internal mass, typical office loads, infiltration and a dual band
// air temperature setpoint.
func build_office_zone(cfg *eb.Config) (*eb.ThermalZone, error) {
	plaster, err := eb.NewMaterial("plaster", 0.01, 1.0, 800, 2000)
	if err != nil {
		return nil, err
	}
	brick, err := eb.NewMaterial("hollow brick", 0.15, 1.4, 800, 2000)
	if err != nil {
		return nil, err
	}
	air_gap, err := eb.NewAirGapMaterial("air gap", 0.02, 0.5)
	if err != nil {
		return nil, err
	}
	insulation, err := eb.NewMaterial("insulation", 0.01, 0.03, 1000, 30)
	if err != nil {
		return nil, err
	}
	screed, err := eb.NewMaterial("screed", 0.05, 1.4, 1000, 2000)
	if err != nil {
		return nil, err
	}
	concrete, err := eb.NewMaterial("concrete slab", 0.20, 1.9, 880, 2300)
	if err != nil {
		return nil, err
	}

	ext_wall, err := eb.NewConstruction("external wall", eb.ConstructionExtWall,
		[]eb.Layer{plaster, brick, air_gap, insulation, plaster})
	if err != nil {
		return nil, err
	}
	roof, err := eb.NewConstruction("roof", eb.ConstructionRoof,
		[]eb.Layer{screed, insulation, concrete, plaster})
	if err != nil {
		return nil, err
	}
	ground, err := eb.NewConstruction("ground floor", eb.ConstructionGroundFloor,
		[]eb.Layer{concrete, insulation, screed})
	if err != nil {
		return nil, err
	}
	int_wall, err := eb.NewConstruction("internal partition", eb.ConstructionIntWall,
		[]eb.Layer{plaster, brick, plaster})
	if err != nil {
		return nil, err
	}

	window, err := eb.NewSimpleWindow("double glazing", 2.8, 0.6, 0.8, 0.2, 0.95, 1.0)
	if err != nil {
		return nil, err
	}

	const lx, ly, h = 10.0, 8.0, 3.0
	make_surface := func(name string, vertices []eb.Vertex, wwr float64, win *eb.SimpleWindow) (*eb.Surface, error) {
		return eb.NewSurface(name, vertices, wwr, nil, "", ext_wall, win)
	}

	south, err := make_surface("south wall", []eb.Vertex{
		{0, 0, 0}, {lx, 0, 0}, {lx, 0, h}, {0, 0, h},
	}, 0.3, window)
	if err != nil {
		return nil, err
	}
	north, err := make_surface("north wall", []eb.Vertex{
		{lx, ly, 0}, {0, ly, 0}, {0, ly, h}, {lx, ly, h},
	}, 0.1, window)
	if err != nil {
		return nil, err
	}
	east, err := make_surface("east wall", []eb.Vertex{
		{lx, 0, 0}, {lx, ly, 0}, {lx, ly, h}, {lx, 0, h},
	}, 0, nil)
	if err != nil {
		return nil, err
	}
	west, err := make_surface("west wall", []eb.Vertex{
		{0, ly, 0}, {0, 0, 0}, {0, 0, h}, {0, ly, h},
	}, 0, nil)
	if err != nil {
		return nil, err
	}
	roof_s, err := eb.NewSurface("roof", []eb.Vertex{
		{0, 0, h}, {lx, 0, h}, {lx, ly, h}, {0, ly, h},
	}, 0, nil, "", roof, nil)
	if err != nil {
		return nil, err
	}
	floor_s, err := eb.NewSurface("ground floor", []eb.Vertex{
		{0, ly, 0}, {lx, ly, 0}, {lx, 0, 0}, {0, 0, 0},
	}, 0, nil, "", ground, nil)
	if err != nil {
		return nil, err
	}
	partitions, err := eb.NewSurfaceInternalMass("partitions", 2*lx*h, eb.SurfaceTypeIntWall, int_wall)
	if err != nil {
		return nil, err
	}

	volume := lx * ly * h
	area := lx * ly
	zone := eb.NewThermalZone("office", []eb.ZoneSurface{
		south, north, east, west, roof_s, floor_s, partitions,
	}, &area, &volume, cfg)

	occupancy, err := eb.NewSchedule("office occupancy", eb.ScheduleTypePercent,
		yearly_day_profile(cfg, office_hours(1.0, 0.1)), nil, nil, cfg)
	if err != nil {
		return nil, err
	}

	people, err := eb.NewPeople("occupants", 6, eb.HeatGainUnitWPerM2, occupancy, 0.45, 0.3, 0.7, 0)
	if err != nil {
		return nil, err
	}
	lights, err := eb.NewLights("lights", 5, eb.HeatGainUnitWPerM2, occupancy)
	if err != nil {
		return nil, err
	}
	appliances, err := eb.NewElectricLoad("appliances", 8, eb.HeatGainUnitWPerM2, occupancy, 0.3, 0.7)
	if err != nil {
		return nil, err
	}
	zone.AddInternalLoad(people, lights, appliances)

	infiltration_schedule, err := eb.NewSchedule("infiltration", eb.ScheduleTypeDimensionless,
		constant_profile(cfg, 1.0), nil, nil, cfg)
	if err != nil {
		return nil, err
	}
	infiltration, err := eb.NewNaturalVentilation("infiltration", 0.3, eb.VentilationUnitVolPerH, infiltration_schedule)
	if err != nil {
		return nil, err
	}
	zone.AddNaturalVentilation(infiltration)

	heating, err := eb.NewSchedule("heating setpoint", eb.ScheduleTypeTemperature,
		yearly_day_profile(cfg, office_hours(20, 17)), nil, nil, cfg)
	if err != nil {
		return nil, err
	}
	cooling, err := eb.NewSchedule("cooling setpoint", eb.ScheduleTypeTemperature,
		yearly_day_profile(cfg, office_hours(26, 28)), nil, nil, cfg)
	if err != nil {
		return nil, err
	}
	setpoint, err := eb.NewSetpointDualBand("office setpoint", eb.SetpointTypeTemperature, heating, cooling)
	if err != nil {
		return nil, err
	}
	if err := zone.AddTemperatureSetpoint(setpoint, eb.SetpointModeAir); err != nil {
		return nil, err
	}

	return zone, nil
}

// office_hours builds a 24-value day profile: the day value from 8 to 18,
// the night value elsewhere.
func office_hours(day, night float64) [24]float64 {
	var profile [24]float64
	for h := 0; h < 24; h++ {
		if h >= 8 && h < 18 {
			profile[h] = day
		} else {
			profile[h] = night
		}
	}
	return profile
}

// yearly_day_profile repeats a 24-hour profile over the simulation year at
// the configured time step.
func yearly_day_profile(cfg *eb.Config, day [24]float64) []float64 {
	out := make([]float64, cfg.NumberOfTimeStepsYear)
	for i := range out {
		hour := (i / cfg.TimeStepsPerHour) % 24
		out[i] = day[hour]
	}
	return out
}

func constant_profile(cfg *eb.Config, value float64) []float64 {
	out := make([]float64, cfg.NumberOfTimeStepsYear)
	for i := range out {
		out[i] = value
	}
	return out
}
