package eureca_building

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// Hourly rows of the weather CSV, one per hour of the year (8760).
type WeatherDataRow struct {
	TempAir             float64 `csv:"temp_air"`             // dry bulb temperature, degree C
	RelativeHumidity    float64 `csv:"relative_humidity"`    // %
	AtmosphericPressure float64 `csv:"atmospheric_pressure"` // Pa
	WindSpeed           float64 `csv:"wind_speed"`           // m/s
	TempDew             float64 `csv:"temp_dew"`             // dew point temperature, degree C
	OpaqueSkyCover      float64 `csv:"opaque_sky_cover"`     // tenths, [0, 10]
	GHI                 float64 `csv:"ghi"`                  // global horizontal irradiance, W/m2
	DNI                 float64 `csv:"dni"`                  // direct normal irradiance, W/m2
	DHI                 float64 `csv:"dhi"`                  // diffuse horizontal irradiance, W/m2
}

/*
WeatherFile loads a yearly hourly weather CSV and preprocesses it for the
simulation: sub-hourly interpolation to the configured time step, outdoor
specific humidity, the yearly average air/sky temperature difference (Martin
Berdahl apparent sky temperature), the solar position and the irradiance on
every sky bucket of the surface discretization.

All yearly arrays have length cfg.NumberOfTimeStepsYear after interpolation.
*/
type WeatherFile struct {
	Name string

	Latitude  float64 // rad
	Longitude float64 // rad
	Timezone  float64 // UTC offset, hours

	_ext_temp          []float64 // degree C, [n]
	_rel_humidity      []float64 // %, [n]
	_pressure          []float64 // Pa, [n]
	_wind_speed        []float64 // m/s, [n]
	_dew_point_temp    []float64 // degree C, [n]
	_opaque_sky_cover  []float64 // tenths, [n]
	_ghi               []float64 // W/m2, [n]
	_dni               []float64 // W/m2, [n]
	_dhi               []float64 // W/m2, [n]
	_specific_humidity []float64 // kg/kg(DA), [n]

	_average_dt_air_sky float64 // degree C

	_solar_position *SolarPosition
	_irradiances    map[[2]int]*PlaneIrradiance

	_azimuth_subdivisions int
	_height_subdivisions  int

	cfg *Config
}

/*
NewWeatherFile reads the weather CSV and runs the preprocessing.

Args:

	file_path: path of the hourly CSV (8760 rows)
	latitude, longitude: site coordinates, deg
	timezone: UTC offset of the data, hours
	cfg: simulation configuration
	azimuth_subdivisions, height_subdivisions: sky bucket discretization;
	    must match the surfaces that will look irradiances up
	irradiances_calculation: skip the per-bucket irradiance table when false

Returns:

	the preprocessed weather, or an error on a missing file, a malformed CSV
	or a wrong row count.
*/
func NewWeatherFile(
	file_path string,
	latitude float64,
	longitude float64,
	timezone float64,
	cfg *Config,
	azimuth_subdivisions int,
	height_subdivisions int,
	irradiances_calculation bool,
) (*WeatherFile, error) {

	file, err := os.Open(file_path)
	if err != nil {
		return nil, fmt.Errorf("weather file %s: %w", file_path, err)
	}
	defer file.Close()

	var rows []*WeatherDataRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("weather file %s: %w", file_path, err)
	}
	if len(rows) != 8760 {
		return nil, fmt.Errorf("weather file %s: row length should be 8760: %d", file_path, len(rows))
	}

	if azimuth_subdivisions > 10 {
		log.Printf("WeatherFile %s: azimuth_subdivisions higher than 10", file_path)
	}
	if height_subdivisions > 4 {
		log.Printf("WeatherFile %s: height_subdivisions higher than 4", file_path)
	}

	column := func(getc func(row *WeatherDataRow) float64) []float64 {
		ret := make([]float64, len(rows))
		for i := range rows {
			ret[i] = getc(rows[i])
		}
		return ret
	}

	temp_hourly := column(func(r *WeatherDataRow) float64 { return r.TempAir })
	dew_hourly := column(func(r *WeatherDataRow) float64 { return r.TempDew })
	pressure_hourly := column(func(r *WeatherDataRow) float64 { return r.AtmosphericPressure })
	sky_cover_hourly := column(func(r *WeatherDataRow) float64 { return r.OpaqueSkyCover })

	check_weather_range(file_path, "temp_air", temp_hourly, -60, 60)
	check_weather_range(file_path, "relative_humidity", column(func(r *WeatherDataRow) float64 { return r.RelativeHumidity }), 0, 100)
	check_weather_range(file_path, "opaque_sky_cover", sky_cover_hourly, 0, 10)

	w := &WeatherFile{
		Name:                  file_path,
		Latitude:              radians(latitude),
		Longitude:             radians(longitude),
		Timezone:              timezone,
		_azimuth_subdivisions: azimuth_subdivisions,
		_height_subdivisions:  height_subdivisions,
		cfg:                   cfg,
	}

	w._ext_temp = interpolate_hourly(temp_hourly, cfg)
	w._rel_humidity = interpolate_hourly(column(func(r *WeatherDataRow) float64 { return r.RelativeHumidity }), cfg)
	w._pressure = interpolate_hourly(pressure_hourly, cfg)
	w._wind_speed = interpolate_hourly(column(func(r *WeatherDataRow) float64 { return r.WindSpeed }), cfg)
	w._dew_point_temp = interpolate_hourly(dew_hourly, cfg)
	w._opaque_sky_cover = interpolate_hourly(sky_cover_hourly, cfg)
	w._ghi = interpolate_hourly(column(func(r *WeatherDataRow) float64 { return r.GHI }), cfg)
	w._dni = interpolate_hourly(column(func(r *WeatherDataRow) float64 { return r.DNI }), cfg)
	w._dhi = interpolate_hourly(column(func(r *WeatherDataRow) float64 { return r.DHI }), cfg)

	// outdoor specific humidity from the saturation pressure at dry bulb
	w._specific_humidity = make([]float64, len(w._ext_temp))
	for i := range w._ext_temp {
		p_v := get_p_vs(w._ext_temp[i]) * w._rel_humidity[i] / 100.0
		w._specific_humidity[i] = get_x(p_v, w._pressure[i])
	}

	w._average_dt_air_sky = average_dt_air_sky(temp_hourly, dew_hourly, pressure_hourly, sky_cover_hourly)

	w._solar_position = CalcSolarPosition(w.Latitude, w.Longitude, timezone, cfg)

	w._irradiances = make(map[[2]int]*PlaneIrradiance)
	if irradiances_calculation {
		w.irradiances_calculation()
	}

	return w, nil
}

/*
irradiances_calculation fills the per-bucket irradiance table.

The bucket grid matches the surface snapping: height centers 0, then one per
height subdivision up to 90; azimuth centers spanning [-180, 180) with
360/azimuth_subdivisions spacing. Horizontal buckets (height 0) only exist at
azimuth 0.
*/
func (self *WeatherFile) irradiances_calculation() {
	delta_h := 90.0 / (2.0 * float64(self._height_subdivisions))
	delta_a := 360.0 / (2.0 * float64(self._azimuth_subdivisions))

	heights := []int{}
	for x := -delta_h; x < 90.0+delta_h; x += 2 * delta_h {
		heights = append(heights, int(math.Round(x+delta_h)))
	}

	azimuths := []int{}
	for y := -180.0 - delta_a; y < 180.0+delta_a; y += 2 * delta_a {
		a := int(math.Round(y + delta_a))
		if a == 180 {
			a = -180
		}
		duplicate := false
		for _, prev := range azimuths {
			if prev == a {
				duplicate = true
				break
			}
		}
		if !duplicate {
			azimuths = append(azimuths, a)
		}
	}

	for _, h := range heights {
		if h == 0 {
			self._irradiances[[2]int{0, 0}] = CalcPlaneIrradiance(
				self._solar_position, self._ghi, self._dni, self._dhi, 0, 0,
			)
			continue
		}
		for _, a := range azimuths {
			self._irradiances[[2]int{a, h}] = CalcPlaneIrradiance(
				self._solar_position, self._ghi, self._dni, self._dhi, float64(a), float64(h),
			)
		}
	}
}

/*
Irradiance returns the irradiance table entry of a sky bucket.

Args:

	azimuth_round, height_round: the snapped surface orientation

Returns:

	the plane irradiance, or an error when the bucket is not in the table
	(subdivision mismatch between the surface and the weather).
*/
func (self *WeatherFile) Irradiance(azimuth_round int, height_round int) (*PlaneIrradiance, error) {
	irr, ok := self._irradiances[[2]int{azimuth_round, height_round}]
	if !ok {
		return nil, fmt.Errorf(
			"weather file %s: no irradiance for bucket azimuth %d height %d: check the surface and weather subdivisions",
			self.Name, azimuth_round, height_round,
		)
	}
	return irr, nil
}

func (self *WeatherFile) ExtTemp() []float64            { return self._ext_temp }
func (self *WeatherFile) RelHumidity() []float64        { return self._rel_humidity }
func (self *WeatherFile) Pressure() []float64           { return self._pressure }
func (self *WeatherFile) WindSpeed() []float64          { return self._wind_speed }
func (self *WeatherFile) DewPointTemp() []float64       { return self._dew_point_temp }
func (self *WeatherFile) OpaqueSkyCover() []float64     { return self._opaque_sky_cover }
func (self *WeatherFile) GHI() []float64                { return self._ghi }
func (self *WeatherFile) DNI() []float64                { return self._dni }
func (self *WeatherFile) DHI() []float64                { return self._dhi }
func (self *WeatherFile) SpecificHumidity() []float64   { return self._specific_humidity }
func (self *WeatherFile) AverageDTAirSky() float64      { return self._average_dt_air_sky }
func (self *WeatherFile) SolarPosition() *SolarPosition { return self._solar_position }
func (self *WeatherFile) AzimuthSubdivisions() int      { return self._azimuth_subdivisions }
func (self *WeatherFile) HeightSubdivisions() int       { return self._height_subdivisions }

/*
interpolate_hourly expands an hourly array to the configured time step by
linear interpolation between each hour and the next, wrapping the year.

With n steps per hour the blending coefficients are 1, (n-1)/n, ... 1/n.
*/
func interpolate_hourly(data []float64, cfg *Config) []float64 {
	n := cfg.TimeStepsPerHour
	if n == 1 {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	next := roll(data, -1)
	out := make([]float64, len(data)*n)
	off := 0
	for i := range data {
		for j := 0; j < n; j++ {
			alpha := 1.0 - float64(j)/float64(n)
			out[off] = alpha*data[i] + (1.0-alpha)*next[i]
			off++
		}
	}
	return out
}

// roll shifts a slice circularly: shift 1 moves every element one position
// forward, shift -1 one position back.
func roll(data []float64, shift int) []float64 {
	n := len(data)
	out := make([]float64, n)
	for i := range data {
		out[(i+shift+n)%n] = data[i]
	}
	return out
}

/*
average_dt_air_sky returns the yearly average difference between the outdoor
air temperature and the apparent sky temperature, degree C.

Args:

	t_ext: hourly dry bulb temperature, degree C, [8760]
	t_dp: hourly dew point temperature, degree C, [8760]
	pressure: hourly atmospheric pressure, Pa, [8760]
	n_opaque: hourly opaque sky cover, tenths, [8760]

Notes:

	Martin Berdahl clear-sky emissivity with hour-of-day and pressure
	corrections, cloud amount from the opaque cover.
*/
func average_dt_air_sky(t_ext, t_dp, pressure, n_opaque []float64) float64 {
	dt := make([]float64, 8760)
	for d := 0; d < 365; d++ {
		for x := 0; x < 24; x++ {
			t := d*24 + x
			tdp := t_dp[t]
			p := pressure[t] / 100.0     // mbar
			nopaque := n_opaque[t] * 0.1 // [0, 1]

			eps_m := 0.711 + 0.56*tdp/100.0 + 0.73*math.Pow(tdp/100.0, 2)
			eps_h := 0.013 * math.Cos(2*math.Pi*float64(x+1)/24.0)
			eps_e := 0.00012 * (p - 1000.0)
			eps_clear := eps_m + eps_h + eps_e
			c := nopaque * 0.9
			eps_sky := eps_clear + (1.0-eps_clear)*c

			t_sky := (t_ext[t]+273.0)*math.Pow(eps_sky, 0.25) - 273.0
			dt[t] = t_ext[t] - t_sky
		}
	}
	return stat.Mean(dt, nil)
}

func check_weather_range(file string, name string, data []float64, lo, hi float64) {
	for _, v := range data {
		if v < lo || v > hi {
			log.Printf("WeatherFile %s: %s outside the expected range [%g, %g]: %g", file, name, lo, hi, v)
			return
		}
	}
}

/*
get_p_vs returns the saturation vapour pressure, Pa, from the air
temperature, degree C. Separate fits above and below freezing.
*/
func get_p_vs(theta float64) float64 {
	t := theta + 273.15

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	if theta >= 0.0 {
		return math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	}
	return math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
}

// get_x returns the specific humidity, kg/kg(DA), from the vapour pressure
// and the total pressure, Pa.
func get_x(p_v float64, pressure float64) float64 {
	return 0.622 * p_v / (pressure - p_v)
}
