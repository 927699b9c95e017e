package eureca_building

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Starting temperature of every thermal node, degree C.
const initial_temperature = 15.0

// Floor on the ventilation conductance to keep the network solvable with a
// zero air flow.
const h_ve_floor = 1e-6

/*
ZoneSimulationResults holds the yearly output series of a zone simulation,
one value per time step.
*/
type ZoneSimulationResults struct {
	TAir       []float64 // zone air temperature, degree C
	TOperative []float64 // operative temperature, degree C
	TMean      []float64 // mean radiant proxy (surface node), degree C
	PowerHC    []float64 // sensible heating (+) / cooling (-) power, W
}

func new_zone_simulation_results(n int) *ZoneSimulationResults {
	return &ZoneSimulationResults{
		TAir:       make([]float64, n),
		TOperative: make([]float64, n),
		TMean:      make([]float64, n),
		PowerHC:    make([]float64, n),
	}
}

/*
SolveISO13790 runs the yearly simulation of the 5R1C network.

The mass node follows the Crank Nicolson recurrence of ISO 13790 Annex C.
At each step the free-floating temperature is computed first; when it falls
outside the setpoint band the required power comes from the standard
10 W/m2 linearization probe, capped by the installed capacities, and the
step is recomputed with the delivered power.

Args:

	tz: the thermal zone; loads must be built (CalculateZoneLoadsISO13790)
	weather: the preprocessed weather
	max_heating_power: installed heating capacity, W (Inf for unlimited)
	max_cooling_power: installed cooling capacity, W, positive (Inf for
	    unlimited)

Returns:

	the yearly result series, or a ZoneNotReadyError when the loads are not
	built.
*/
func SolveISO13790(tz *ThermalZone, weather *WeatherFile, max_heating_power, max_cooling_power float64) (*ZoneSimulationResults, error) {
	if tz.ISOState() < ZoneReady {
		return nil, &ZoneNotReadyError{Zone: tz.Name, Operation: "SolveISO13790", State: tz.ISOState()}
	}

	air_flow, _, err := tz.ExtractNaturalVentilation(weather)
	if err != nil {
		return nil, err
	}

	n := tz.cfg.NumberOfTimeStepsYear
	dt := tz.cfg.TimeStepSeconds
	t_ext := weather.ExtTemp()
	setpoint, mode := tz.TemperatureSetpoint()

	results := new_zone_simulation_results(n)

	t_m_prev := initial_temperature

	for t := 0; t < n; t++ {
		h_ve := math.Max(air_flow[t]*get_c_a(), h_ve_floor)

		step := func(phi_hc float64) (t_air, t_s, t_m float64) {
			h_tr_1 := 1 / (1/h_ve + 1/tz.Htr_is)
			h_tr_2 := h_tr_1 + tz.Htr_w
			h_tr_3 := 1 / (1/h_tr_2 + 1/tz.Htr_ms)

			t_sup := t_ext[t]
			phi_ia := tz.phi_ia[t] + phi_hc

			phi_mtot := tz.phi_m[t] + tz.Htr_em*t_ext[t] +
				h_tr_3*(tz.phi_st[t]+tz.Htr_w*t_ext[t]+h_tr_1*(phi_ia/h_ve+t_sup))/h_tr_2

			c_term := tz.Cm / dt
			t_m_t := (t_m_prev*(c_term-0.5*(h_tr_3+tz.Htr_em)) + phi_mtot) /
				(c_term + 0.5*(h_tr_3+tz.Htr_em))

			t_m = (t_m_t + t_m_prev) / 2
			t_s = (tz.Htr_ms*t_m + tz.phi_st[t] + tz.Htr_w*t_ext[t] + h_tr_1*(t_sup+phi_ia/h_ve)) /
				(tz.Htr_ms + tz.Htr_w + h_tr_1)
			t_air = (tz.Htr_is*t_s + h_ve*t_sup + phi_ia) / (tz.Htr_is + h_ve)
			return t_air, t_s, t_m_t
		}

		control_temp := func(t_air, t_s float64) float64 {
			switch mode {
			case SetpointModeOperative:
				return 0.3*t_air + 0.7*t_s
			case SetpointModeRadiant:
				return t_s
			default:
				return t_air
			}
		}

		t_air_0, t_s_0, t_m_0 := step(0)
		phi_hc := 0.0
		t_air, t_s, t_m_t := t_air_0, t_s_0, t_m_0

		if setpoint != nil {
			t_ctrl_0 := control_temp(t_air_0, t_s_0)
			t_set := math.NaN()
			if t_ctrl_0 < setpoint.HeatingValue(t) {
				t_set = setpoint.HeatingValue(t)
			} else if t_ctrl_0 > setpoint.CoolingValue(t) {
				t_set = setpoint.CoolingValue(t)
			}
			if !math.IsNaN(t_set) {
				phi_probe := 10.0 * tz.NetFloorArea()
				t_air_10, t_s_10, _ := step(phi_probe)
				t_ctrl_10 := control_temp(t_air_10, t_s_10)

				phi_hc = phi_probe * (t_set - t_ctrl_0) / (t_ctrl_10 - t_ctrl_0)
				phi_hc = math.Min(phi_hc, max_heating_power)
				phi_hc = math.Max(phi_hc, -max_cooling_power)

				t_air, t_s, t_m_t = step(phi_hc)
			}
		}

		t_m_prev = t_m_t
		results.TAir[t] = t_air
		results.TMean[t] = t_s
		results.TOperative[t] = 0.3*t_air + 0.7*t_s
		results.PowerHC[t] = phi_hc
	}

	return results, nil
}

/*
SolveVDI6007 runs the yearly simulation of the 7R2C network.

Six temperatures per step (outer mass, outer surface, star, air, inner
surface, inner mass); the three capacities integrate by implicit Euler and
the rest of the network is algebraic, so each step is one 6x6 linear solve.
The setpoint control uses the same linearization probe as the ISO solver;
the system being linear, the interpolated power is exact up to the capacity
clamp.

Args and returns as SolveISO13790, on the VDI load build.
*/
func SolveVDI6007(tz *ThermalZone, weather *WeatherFile, max_heating_power, max_cooling_power float64) (*ZoneSimulationResults, error) {
	if tz.VDIState() < ZoneReady {
		return nil, &ZoneNotReadyError{Zone: tz.Name, Operation: "SolveVDI6007", State: tz.VDIState()}
	}

	air_flow, _, err := tz.ExtractNaturalVentilation(weather)
	if err != nil {
		return nil, err
	}

	n := tz.cfg.NumberOfTimeStepsYear
	dt := tz.cfg.TimeStepSeconds
	t_ext := weather.ExtTemp()
	setpoint, mode := tz.TemperatureSetpoint()

	results := new_zone_simulation_results(n)

	// unknown order: theta_m_aw, theta_s_aw, theta_star, theta_air,
	// theta_s_iw, theta_m_iw
	const (
		i_m_aw = iota
		i_s_aw
		i_star
		i_air
		i_s_iw
		i_m_iw
	)

	c_aw := tz.C1AW / dt
	c_iw := tz.C1IW / dt
	c_air := tz.AirThermalCapacity() / dt

	theta_m_aw := initial_temperature
	theta_m_iw := initial_temperature
	theta_air := initial_temperature

	a := mat.NewDense(6, 6, nil)
	b := mat.NewVecDense(6, nil)
	var x mat.VecDense

	for t := 0; t < n; t++ {
		h_ve := math.Max(air_flow[t]*get_c_a(), h_ve_floor)

		solve := func(phi_hc float64) (air, s_aw, s_iw, m_aw, m_iw float64) {
			a.Zero()

			// outer mass node
			a.Set(i_m_aw, i_m_aw, c_aw+1/tz.RrestAW+1/tz.R1AW)
			a.Set(i_m_aw, i_s_aw, -1/tz.R1AW)
			b.SetVec(i_m_aw, c_aw*theta_m_aw+tz.theta_eq_tot[t]/tz.RrestAW)

			// outer surface node
			a.Set(i_s_aw, i_m_aw, -1/tz.R1AW)
			a.Set(i_s_aw, i_s_aw, 1/tz.R1AW+1/tz.RalphaStarAW)
			a.Set(i_s_aw, i_star, -1/tz.RalphaStarAW)
			b.SetVec(i_s_aw, tz.Q_il_str_aw[t])

			// star node
			a.Set(i_star, i_s_aw, -1/tz.RalphaStarAW)
			a.Set(i_star, i_star, 1/tz.RalphaStarAW+1/tz.RalphaStarIW+1/tz.RalphaStarIL)
			a.Set(i_star, i_s_iw, -1/tz.RalphaStarIW)
			a.Set(i_star, i_air, -1/tz.RalphaStarIL)
			b.SetVec(i_star, 0)

			// air node
			a.Set(i_air, i_star, -1/tz.RalphaStarIL)
			a.Set(i_air, i_air, c_air+1/tz.RalphaStarIL+h_ve)
			b.SetVec(i_air, c_air*theta_air+h_ve*t_ext[t]+tz.Q_il_kon_I[t]+phi_hc)

			// inner surface node
			a.Set(i_s_iw, i_star, -1/tz.RalphaStarIW)
			a.Set(i_s_iw, i_s_iw, 1/tz.RalphaStarIW+1/tz.R1IW)
			a.Set(i_s_iw, i_m_iw, -1/tz.R1IW)
			b.SetVec(i_s_iw, tz.Q_il_str_iw[t])

			// inner mass node
			a.Set(i_m_iw, i_s_iw, -1/tz.R1IW)
			a.Set(i_m_iw, i_m_iw, c_iw+1/tz.R1IW)
			b.SetVec(i_m_iw, c_iw*theta_m_iw)

			if err := x.SolveVec(a, b); err != nil {
				return math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
			}
			return x.AtVec(i_air), x.AtVec(i_s_aw), x.AtVec(i_s_iw), x.AtVec(i_m_aw), x.AtVec(i_m_iw)
		}

		mean_surface := func(s_aw, s_iw float64) float64 {
			return (s_aw*tz.Aaw + s_iw*(tz.Araum-tz.Aaw)) / tz.Araum
		}

		control_temp := func(air, s_aw, s_iw float64) float64 {
			switch mode {
			case SetpointModeOperative:
				return 0.3*air + 0.7*mean_surface(s_aw, s_iw)
			case SetpointModeRadiant:
				return mean_surface(s_aw, s_iw)
			default:
				return air
			}
		}

		air_0, s_aw_0, s_iw_0, m_aw_0, m_iw_0 := solve(0)
		phi_hc := 0.0
		air, s_aw, s_iw, m_aw, m_iw := air_0, s_aw_0, s_iw_0, m_aw_0, m_iw_0

		if setpoint != nil {
			t_ctrl_0 := control_temp(air_0, s_aw_0, s_iw_0)
			t_set := math.NaN()
			if t_ctrl_0 < setpoint.HeatingValue(t) {
				t_set = setpoint.HeatingValue(t)
			} else if t_ctrl_0 > setpoint.CoolingValue(t) {
				t_set = setpoint.CoolingValue(t)
			}
			if !math.IsNaN(t_set) {
				phi_probe := 10.0 * tz.NetFloorArea()
				air_10, s_aw_10, s_iw_10, _, _ := solve(phi_probe)
				t_ctrl_10 := control_temp(air_10, s_aw_10, s_iw_10)

				phi_hc = phi_probe * (t_set - t_ctrl_0) / (t_ctrl_10 - t_ctrl_0)
				phi_hc = math.Min(phi_hc, max_heating_power)
				phi_hc = math.Max(phi_hc, -max_cooling_power)

				air, s_aw, s_iw, m_aw, m_iw = solve(phi_hc)
			}
		}

		theta_m_aw = m_aw
		theta_m_iw = m_iw
		theta_air = air

		t_srf := mean_surface(s_aw, s_iw)
		results.TAir[t] = air
		results.TMean[t] = t_srf
		results.TOperative[t] = 0.3*air + 0.7*t_srf
		results.PowerHC[t] = phi_hc
	}

	return results, nil
}
