package eureca_building

import "math"

// Ground short-wave reflectance used for the reflected irradiance component.
const ground_reflectance = 0.2

/*
SolarPosition holds the sun position over the simulation year, one entry per
time step.

Angle convention: height (elevation) in rad, negative below the horizon;
azimuth in rad, 0 south, negative eastwards, positive westwards, matching the
surface azimuth convention.
*/
type SolarPosition struct {
	HSun []float64 // solar height (elevation), rad, [n]
	ASun []float64 // solar azimuth, rad, [n]
}

/*
CalcSolarPosition computes the sun position for every time step of the year.

Args:

	latitude: site latitude, rad
	longitude: site longitude, rad
	timezone: UTC offset of the weather data, hours (sets the reference
	    meridian at 15 deg/hour)
	cfg: simulation configuration (number of time steps per hour)

Returns:

	the yearly solar position arrays, length cfg.NumberOfTimeStepsYear.

Notes:

	Mean-orbit formulation: mean anomaly and equation of time from the
	perihelion passage referenced to 1968, evaluated for 1989.
*/
func CalcSolarPosition(latitude float64, longitude float64, timezone float64, cfg *Config) *SolarPosition {

	// reference meridian of the local standard time, rad
	lambda_mer := timezone * 15.0 * math.Pi / 180.0

	// day of the year (Jan 1st = 1) per time step, [n]
	d_ns := get_d_ns(cfg)

	// year difference from 1968
	n := 1989 - 1968

	// perihelion passage day (ephemeris, noon Jan 1st 1968 reference), d
	d_0 := 3.71 + 0.2596*float64(n) - float64(int((n+3.0)/4.0))

	// anomalistic year, d
	const d_ay = 365.2596

	// winter solstice declination, rad
	const delta_0 = -23.4393 * math.Pi / 180.0

	steps := cfg.NumberOfTimeStepsYear
	h_sun := make([]float64, steps)
	a_sun := make([]float64, steps)

	steps_per_day := 24 * cfg.TimeStepsPerHour
	dt_hours := 1.0 / float64(cfg.TimeStepsPerHour)

	sin_phi := math.Sin(latitude)
	cos_phi := math.Cos(latitude)

	for i := 0; i < steps; i++ {
		// mean anomaly, rad
		m := 2 * math.Pi * (d_ns[i] - d_0) / d_ay

		// angle between perihelion and winter solstice, rad
		epsilon := (12.3901 + 0.0172*(float64(n)+m/(2*math.Pi))) * math.Pi / 180.0

		// true anomaly, rad
		v := m + (1.914*math.Sin(m)+0.02*math.Sin(2*m))*math.Pi/180.0

		// equation of time, rad
		e_t := (m - v) - math.Atan(0.043*math.Sin(2.0*(v+epsilon))/(1.0-0.043*math.Cos(2.0*(v+epsilon))))

		// declination, rad
		delta := math.Asin(math.Cos(v+epsilon) * math.Sin(delta_0))

		// local standard time, h
		t_m := float64(i%steps_per_day) * dt_hours

		// hour angle, rad
		omega := ((t_m-12.0)*15.0)*math.Pi/180.0 + (longitude - lambda_mer) + e_t

		// solar height, rad; negative when the sun is below the horizon
		h := math.Asin(sin_phi*math.Sin(delta) + cos_phi*math.Cos(delta)*math.Cos(omega))
		h_sun[i] = h

		// azimuth undefined with the sun at the zenith
		if h == math.Pi/2 {
			a_sun[i] = math.NaN()
			continue
		}
		sin_a := math.Cos(delta) * math.Sin(omega) / math.Cos(h)
		cos_a := (math.Sin(h)*sin_phi - math.Sin(delta)) / (math.Cos(h) * cos_phi)
		a_sun[i] = math.Atan2(sin_a, cos_a)
	}

	return &SolarPosition{HSun: h_sun, ASun: a_sun}
}

// get_d_ns returns the day of the year (Jan 1st = 1) per time step, [n].
func get_d_ns(cfg *Config) []float64 {
	steps_per_day := 24 * cfg.TimeStepsPerHour
	d_ns := make([]float64, cfg.NumberOfTimeStepsYear)
	off := 0
	for d := 0; d < 365; d++ {
		dd := float64(d + 1)
		for j := 0; j < steps_per_day; j++ {
			d_ns[off] = dd
			off++
		}
	}
	return d_ns
}

/*
PlaneIrradiance holds the yearly irradiance on one tilted plane, W/m2, plus
the angle of incidence of the direct beam, deg.
*/
type PlaneIrradiance struct {
	Global []float64 // direct + sky diffuse + ground reflected, W/m2, [n]
	Direct []float64 // beam component on the plane, W/m2, [n]
	AOI    []float64 // angle of incidence, deg, [n]; 90 with the sun behind
}

/*
CalcPlaneIrradiance composes the irradiance on a tilted plane from the
horizontal components.

Args:

	pos: yearly solar position
	ghi: global horizontal irradiance, W/m2, [n]
	dni: direct normal irradiance, W/m2, [n]
	dhi: diffuse horizontal irradiance, W/m2, [n]
	surface_azimuth: plane azimuth, deg (0 south, negative east)
	surface_height: plane tilt from the upward vertical, deg (0 up, 90
	    vertical, 180 down)

Returns:

	the yearly plane irradiance.

Notes:

	Direct component dni * cos(aoi) with the cosine floored at 0; sky
	diffuse by the isotropic view factor (1 + cos(beta)) / 2; ground
	reflected ghi * rho * (1 - cos(beta)) / 2.
*/
func CalcPlaneIrradiance(
	pos *SolarPosition,
	ghi []float64,
	dni []float64,
	dhi []float64,
	surface_azimuth float64,
	surface_height float64,
) *PlaneIrradiance {
	steps := len(pos.HSun)
	out := &PlaneIrradiance{
		Global: make([]float64, steps),
		Direct: make([]float64, steps),
		AOI:    make([]float64, steps),
	}

	beta := radians(surface_height)
	alpha := radians(surface_azimuth)
	cos_beta := math.Cos(beta)
	sin_beta := math.Sin(beta)

	f_sky := (1.0 + cos_beta) / 2.0
	f_gnd := (1.0 - cos_beta) / 2.0

	for i := 0; i < steps; i++ {
		h := pos.HSun[i]

		cos_aoi := 0.0
		if h > 0 {
			sin_h := math.Sin(h)
			cos_h := math.Cos(h)
			if cos_h == 0.0 || math.IsNaN(pos.ASun[i]) {
				// sun at the zenith: the azimuth terms vanish
				cos_aoi = sin_h * cos_beta
			} else {
				a := pos.ASun[i]
				cos_aoi = sin_h*cos_beta +
					cos_h*math.Sin(a)*sin_beta*math.Sin(alpha) +
					cos_h*math.Cos(a)*sin_beta*math.Cos(alpha)
			}
			if cos_aoi < 0 {
				cos_aoi = 0
			}
		}

		out.AOI[i] = degrees(math.Acos(cos_aoi))
		out.Direct[i] = dni[i] * cos_aoi
		out.Global[i] = out.Direct[i] + dhi[i]*f_sky + ghi[i]*ground_reflectance*f_gnd
	}

	return out
}
