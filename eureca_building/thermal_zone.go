package eureca_building

import (
	"log"

	"gonum.org/v1/gonum/floats"
)

// ZoneState tracks how far the zone setup has progressed for one lumped
// parameter model. Load calculations need the parameter build, the solver
// needs the loads.
type ZoneState int

const (
	ZoneUnconfigured ZoneState = iota
	ZoneParametersBuilt
	ZoneReady
)

func (s ZoneState) String() string {
	switch s {
	case ZoneUnconfigured:
		return "unconfigured"
	case ZoneParametersBuilt:
		return "parameters built"
	case ZoneReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ISO 13790 surface heat transfer coefficients, W/(m2 K).
const (
	htr_ms_coef = 9.1
	h_is_coef   = 3.45
)

// VDI 6007 surface heat transfer coefficients, W/(m2 K).
const (
	alpha_str_vdi   = 5.0
	alpha_kon_a_vdi = 20.0
)

/*
ThermalZone aggregates the surfaces, internal loads, ventilation streams and
setpoints of one thermal zone, and builds the lumped parameters of the two
zone models (ISO 13790 5R1C and VDI 6007 7R2C).

The setup is staged: NewThermalZone validates the geometry aggregates, the
Calculate*Params calls build the network parameters, the
CalculateZoneLoads* calls turn weather and internal gains into the node
load series. Each stage checks the previous one and returns a
ZoneNotReadyError out of order.
*/
type ThermalZone struct {
	Name string

	surfaces []ZoneSurface

	_net_floor_area       float64 // m2
	_volume               float64 // m3
	_air_thermal_capacity float64 // J/K

	internal_loads       []Load
	natural_ventilations []*NaturalVentilation

	temperature_setpoint      *SetpointDualBand
	temperature_setpoint_mode string
	humidity_setpoint         *SetpointDualBand

	cfg *Config

	// ISO 13790 parameters
	Htr_is float64 // W/K
	Htr_w  float64 // W/K
	Htr_ms float64 // W/K
	Htr_em float64 // W/K
	Htr_op float64 // W/K
	Cm     float64 // J/K
	Am     float64 // m2
	Atot   float64 // m2
	DenAm  float64
	UA_tot float64 // W/K

	// VDI 6007 parameters
	R1AW         float64 // K/W
	C1AW         float64 // J/K
	R1IW         float64 // K/W
	C1IW         float64 // J/K
	RgesAW       float64 // K/W
	RrestAW      float64 // K/W
	RalphaStarIL float64 // K/W
	RalphaStarAW float64 // K/W
	RalphaStarIW float64 // K/W
	Araum        float64 // m2
	Aaw          float64 // m2

	// ISO 13790 node loads, [n]
	phi_ia []float64 // W, air node
	phi_st []float64 // W, surface node
	phi_m  []float64 // W, mass node

	// VDI 6007 loads, [n]
	theta_eq_tot []float64 // degree C, equivalent outdoor temperature
	Q_il_kon_I   []float64 // W, convective internal gain
	Q_il_str_iw  []float64 // W, radiant gain on the inner-surface node
	Q_il_str_aw  []float64 // W, radiant gain on the outer-surface node

	_iso_state ZoneState
	_vdi_state ZoneState
}

/*
NewThermalZone creates a thermal zone.

Args:

	name: name
	surfaces: Surface / SurfaceInternalMass objects enclosing the zone
	net_floor_area: footprint, m2; nil sums the GroundFloor surfaces and
	    warns when there are none
	volume: m3; nil warns and sets 0
	cfg: simulation configuration

Both aggregates are floored at 1e-5; negative values continue with the
absolute value and a logged error.
*/
func NewThermalZone(name string, surfaces []ZoneSurface, net_floor_area *float64, volume *float64, cfg *Config) *ThermalZone {
	tz := &ThermalZone{
		Name:     name,
		surfaces: append([]ZoneSurface(nil), surfaces...),
		cfg:      cfg,
	}

	var vol float64
	if volume == nil {
		log.Printf("Thermal zone %s, the volume is not set. Initialized with 0 m3", name)
	} else {
		vol = *volume
	}
	tz._volume = positive_floored(name, "volume", vol)
	tz._air_thermal_capacity = positive_floored(name, "air thermal capacity", tz._volume*get_rho_a()*get_c_a())

	var nfa float64
	if net_floor_area == nil {
		found := false
		for _, s := range tz.surfaces {
			if s.SurfaceType() == SurfaceTypeGroundFloor {
				nfa += s.Area()
				found = true
			}
		}
		if !found {
			log.Printf("Thermal zone %s, the footprint area is not set. Initialized with 0 m2", name)
		}
	} else {
		nfa = *net_floor_area
	}
	tz._net_floor_area = positive_floored(name, "footprint area", nfa)

	return tz
}

// positive_floored applies the zone aggregate policy: negative continues
// with the absolute value, near-zero is floored at 1e-5.
func positive_floored(zone string, property string, value float64) float64 {
	if value < 0 {
		log.Printf("Thermal zone %s, negative %s: %g. Simulation will continue with the absolute value", zone, property, value)
		value = -value
	}
	if value < 1e-5 {
		return 1e-5
	}
	return value
}

func (self *ThermalZone) NetFloorArea() float64       { return self._net_floor_area }
func (self *ThermalZone) Volume() float64             { return self._volume }
func (self *ThermalZone) AirThermalCapacity() float64 { return self._air_thermal_capacity }
func (self *ThermalZone) Surfaces() []ZoneSurface     { return self.surfaces }
func (self *ThermalZone) Config() *Config             { return self.cfg }
func (self *ThermalZone) ISOState() ZoneState         { return self._iso_state }
func (self *ThermalZone) VDIState() ZoneState         { return self._vdi_state }

// AddInternalLoad associates one or more internal heat gains to the zone.
func (self *ThermalZone) AddInternalLoad(loads ...Load) {
	self.internal_loads = append(self.internal_loads, loads...)
}

// AddNaturalVentilation associates one or more ventilation streams to the
// zone.
func (self *ThermalZone) AddNaturalVentilation(vents ...*NaturalVentilation) {
	self.natural_ventilations = append(self.natural_ventilations, vents...)
}

/*
AddTemperatureSetpoint associates the temperature control band.

Args:

	setpoint: a temperature SetpointDualBand
	mode: air, operative or radiant
*/
func (self *ThermalZone) AddTemperatureSetpoint(setpoint *SetpointDualBand, mode string) error {
	if setpoint.SetpointType() != SetpointTypeTemperature {
		return &InvalidScheduleTypeError{Schedule: setpoint.Name, Type: setpoint.SetpointType()}
	}
	switch mode {
	case SetpointModeAir, SetpointModeOperative, SetpointModeRadiant:
	default:
		return &InvalidScheduleTypeError{Schedule: setpoint.Name, Type: mode}
	}
	self.temperature_setpoint = setpoint
	self.temperature_setpoint_mode = mode
	return nil
}

// AddHumiditySetpoint associates the humidity control band.
func (self *ThermalZone) AddHumiditySetpoint(setpoint *SetpointDualBand) error {
	if setpoint.SetpointType() != SetpointTypeRelativeHumidity {
		return &InvalidScheduleTypeError{Schedule: setpoint.Name, Type: setpoint.SetpointType()}
	}
	self.humidity_setpoint = setpoint
	return nil
}

// TemperatureSetpoint returns the control band and its mode; nil when not
// set (free floating).
func (self *ThermalZone) TemperatureSetpoint() (*SetpointDualBand, string) {
	return self.temperature_setpoint, self.temperature_setpoint_mode
}

/*
CalculateISO13790Params builds the 5R1C network parameters.

The areal capacity uses k_est for IntFloor surfaces (capacity seen from
above) and k_int for every other surface. Only external surfaces contribute
to the opaque and glazed transmission coefficients.

Returns a MissingPropertyError when a surface lacks the construction (or
the window, with a glazed area) the build needs.
*/
func (self *ThermalZone) CalculateISO13790Params() error {
	self.Htr_is = 0
	self.Htr_w = 0
	self.Htr_ms = 0
	self.Htr_em = 0
	self.Cm = 0
	self.DenAm = 0
	self.Atot = 0
	self.Htr_op = 0

	for _, surface := range self.surfaces {
		c := surface.Construction()
		if c == nil {
			return &MissingPropertyError{Zone: self.Name, Surface: surface_name(surface), Property: "construction"}
		}
		if surface.SurfaceType() == SurfaceTypeIntFloor {
			self.Cm += surface.OpaqueArea() * c.KEst()
			self.DenAm += surface.OpaqueArea() * c.KEst() * c.KEst()
		} else {
			self.Cm += surface.OpaqueArea() * c.KInt()
			self.DenAm += surface.OpaqueArea() * c.KInt() * c.KInt()
		}
		self.Atot += surface.Area()

		if is_external_surface(surface.SurfaceType()) {
			self.Htr_op += surface.OpaqueArea() * c.UValue()
			if surface.GlazedArea() > 0 {
				w := surface.Window()
				if w == nil {
					return &MissingPropertyError{Zone: self.Name, Surface: surface_name(surface), Property: "window"}
				}
				self.Htr_w += surface.GlazedArea() * w.UValue()
			}
		}
	}

	self.Am = self.Cm * self.Cm / self.DenAm
	self.Htr_ms = self.Am * htr_ms_coef
	self.Htr_em = 1 / (1/self.Htr_op - 1/self.Htr_ms)
	self.Htr_is = h_is_coef * self.Atot
	self.UA_tot = self.Htr_op + self.Htr_w

	self._iso_state = ZoneParametersBuilt
	return nil
}

/*
CalculateVDI6007Params builds the 7R2C network parameters.

Each surface contributes a single-layer-equivalent (R1, C1) pair; the outer
set folds the glazed branch in parallel (eq. 26), the pairs combine with the
reference-period parallel (eq. 22), the remaining transmission resistance
follows eq. 27/28 with the eq. 28a-28c clamp, and the radiative coupling
resistance picks eq. 29 or eq. 31 on the outer/inner area comparison. The
air/surface star comes from the triangle transform.

Returns an InvalidSurfaceTypeError on an unknown surface type and a
MissingPropertyError on a missing construction.
*/
func (self *ThermalZone) CalculateVDI6007Params() error {
	var (
		r1_iw, c1_iw     []float64
		r1_aw, c1_aw     []float64
		haw, haf         []float64
		alpha_kon_aw     []float64
		alpha_kon_iw     []float64
		alpha_kon_af     []float64
		r_alpha_str_aw   []float64
		r_alpha_str_iw   []float64
		r_alpha_str_af   []float64
		area_aw, area_af []float64
		area_iw          []float64
	)
	self.Araum = 0
	self.Aaw = 0

	for _, surface := range self.surfaces {
		c := surface.Construction()
		if c == nil {
			return &MissingPropertyError{Zone: self.Name, Surface: surface_name(surface), Property: "construction"}
		}
		self.Araum += surface.Area()

		switch {
		case is_external_surface(surface.SurfaceType()):
			self.Aaw += surface.Area()
			surface_r1, surface_c1 := c.VDI6007SurfaceParams(surface.OpaqueArea(), true)
			c1_aw = append(c1_aw, surface_c1)

			haw = append(haw, c.UValue()*surface.OpaqueArea())
			alpha_kon_aw = append(alpha_kon_aw, surface.OpaqueArea()*(1/c.RSi()-alpha_str_vdi))
			r_alpha_str_aw = append(r_alpha_str_aw, 1/(surface.OpaqueArea()*alpha_str_vdi))

			// glazed branch in parallel with the opaque one (eq. 26)
			r_af := 1e15
			w := surface.Window()
			if w != nil && surface.GlazedArea() > 0 {
				r_af = w.RlW() / surface.GlazedArea()
				haf = append(haf, w.UValue()*surface.GlazedArea())
				alpha_kon_af = append(alpha_kon_af, surface.GlazedArea()*(1/w.RiW()-alpha_str_vdi))
				r_alpha_str_af = append(r_alpha_str_af, 1/(surface.GlazedArea()*alpha_str_vdi))
			} else {
				haf = append(haf, 0)
				alpha_kon_af = append(alpha_kon_af, 0)
				r_alpha_str_af = append(r_alpha_str_af, 1e15)
			}
			r1_aw = append(r1_aw, 1/(1/surface_r1+1/r_af))

			area_aw = append(area_aw, surface.OpaqueArea())
			area_af = append(area_af, surface.GlazedArea())

		case is_internal_surface(surface.SurfaceType()):
			surface_r1, surface_c1 := c.VDI6007SurfaceParams(surface.OpaqueArea(), true)
			r1_iw = append(r1_iw, surface_r1)
			c1_iw = append(c1_iw, surface_c1)
			alpha_kon_iw = append(alpha_kon_iw, surface.OpaqueArea()*(1/c.RSi()-alpha_str_vdi))
			r_alpha_str_iw = append(r_alpha_str_iw, 1/(surface.OpaqueArea()*alpha_str_vdi))
			area_iw = append(area_iw, surface.Area())

		default:
			return &InvalidSurfaceTypeError{
				Surface: surface_name(surface),
				Type:    surface.SurfaceType(),
				Allowed: append(append([]string{}, external_surface_types...), internal_surface_types...),
			}
		}
	}

	if len(r1_aw) == 0 || len(r1_iw) == 0 {
		return &MissingPropertyError{Zone: self.Name, Surface: "surface list", Property: "both external and internal surfaces"}
	}

	self.R1AW, self.C1AW = impedence_parallel(r1_aw, c1_aw, t_bt_days) // eq 22
	self.R1IW, self.C1IW = impedence_parallel(r1_iw, c1_iw, t_bt_days)

	self.RgesAW = 1 / (floats.Sum(haw) + floats.Sum(haf)) // eq 27

	r_alpha_kon_aw := 1 / (floats.Sum(alpha_kon_aw) + floats.Sum(alpha_kon_af))
	r_alpha_kon_iw := 1 / floats.Sum(alpha_kon_iw)

	var r_alpha_str_awiw float64
	if floats.Sum(area_aw) <= floats.Sum(area_iw) {
		r_alpha_str_awiw = 1 / (sum_reciprocal(r_alpha_str_aw) + sum_reciprocal(r_alpha_str_af)) // eq 29
	} else {
		r_alpha_str_awiw = 1 / sum_reciprocal(r_alpha_str_iw) // eq 31
	}

	self.RrestAW = self.RgesAW - self.R1AW - 1/(1/r_alpha_kon_aw+1/r_alpha_str_awiw) // eq 28

	r_alpha_ges_aw := 1 / (alpha_kon_a_vdi * (floats.Sum(area_af) + floats.Sum(area_aw)))

	if self.RgesAW < r_alpha_ges_aw {
		self.RrestAW = r_alpha_ges_aw                                                    // eq 28a
		self.R1AW = self.RgesAW - self.RrestAW - 1/(1/r_alpha_kon_aw+1/r_alpha_str_awiw) // eq 28b
		if self.R1AW < 1e-10 {
			self.R1AW = 1e-10 // eq 28c, avoids division by zero
		}
	}

	self.RalphaStarIL, self.RalphaStarAW, self.RalphaStarIW = tri2star(r_alpha_str_awiw, r_alpha_kon_iw, r_alpha_kon_aw)
	self.UA_tot = floats.Sum(haw) + floats.Sum(haf)
	self.Htr_op = floats.Sum(haw)
	self.Htr_w = floats.Sum(haf)

	self._vdi_state = ZoneParametersBuilt
	return nil
}

/*
ExtractConvectiveRadiativeLatentLoad sums the internal gains into the zone
series.

Returns:

	convective, W; radiant, W; latent vapour, kg/s; each [n].
*/
func (self *ThermalZone) ExtractConvectiveRadiativeLatentLoad() ([]float64, []float64, []float64, error) {
	n := self.cfg.NumberOfTimeStepsYear
	convective := make([]float64, n)
	radiant := make([]float64, n)
	latent := make([]float64, n)

	area := self._net_floor_area
	for _, load := range self.internal_loads {
		conv, err := load.ConvectiveLoad(&area)
		if err != nil {
			return nil, nil, nil, err
		}
		rad, err := load.RadiantLoad(&area)
		if err != nil {
			return nil, nil, nil, err
		}
		lat, err := load.LatentLoad(&area)
		if err != nil {
			return nil, nil, nil, err
		}
		floats.Add(convective, conv)
		floats.Add(radiant, rad)
		floats.Add(latent, lat)
	}
	return convective, radiant, latent, nil
}

/*
ExtractNaturalVentilation sums the ventilation streams into the zone series.

Returns:

	air mass flow, kg/s; vapour mass flow, kg/s; each [n].
*/
func (self *ThermalZone) ExtractNaturalVentilation(weather *WeatherFile) ([]float64, []float64, error) {
	n := self.cfg.NumberOfTimeStepsYear
	air := make([]float64, n)
	vapour := make([]float64, n)

	area := self._net_floor_area
	volume := self._volume
	for _, vent := range self.natural_ventilations {
		a, err := vent.AirFlowRate(&area, &volume)
		if err != nil {
			return nil, nil, err
		}
		v, err := vent.VapourFlowRate(&area, &volume, weather)
		if err != nil {
			return nil, nil, err
		}
		floats.Add(air, a)
		floats.Add(vapour, v)
	}
	return air, vapour, nil
}

/*
CalculateZoneLoadsISO13790 builds the three node load series of the 5R1C
network from internal gains and solar radiation.

Solar gains enter through glazed external surfaces (beam with the
angle-dependent SHGC, diffuse with the reference 70 deg value, both scaled
by the shading coefficients and the frame factor) and through opaque ones
(absorbed irradiance minus the sky long-wave extra flow through the external
film). The gains split onto the air, surface and mass nodes with the
standard Am/Atot weights.
*/
func (self *ThermalZone) CalculateZoneLoadsISO13790(weather *WeatherFile) error {
	if self._iso_state < ZoneParametersBuilt {
		return &ZoneNotReadyError{Zone: self.Name, Operation: "CalculateZoneLoadsISO13790", State: self._iso_state}
	}

	convective, radiant, _, err := self.ExtractConvectiveRadiativeLatentLoad()
	if err != nil {
		return err
	}

	n := self.cfg.NumberOfTimeStepsYear
	phi_sol := make([]float64, n)

	for _, zs := range self.surfaces {
		surface, ok := zs.(*Surface)
		if !ok {
			continue
		}
		if surface.SurfaceType() != SurfaceTypeExtWall && surface.SurfaceType() != SurfaceTypeRoof {
			continue
		}

		irradiance, err := weather.Irradiance(surface.AzimuthRound(), surface.HeightRound())
		if err != nil {
			return err
		}
		h_r := surface.ExternalRadiativeCoefficient()

		c := surface.Construction()
		f_r := surface.SkyViewFactor()
		alpha := c.ExtAbsorptance()
		sr := c.RSe()
		u_net := c.UValueNet()
		a_op := surface.OpaqueArea()

		w := surface.Window()
		a_ww := surface.GlazedArea()

		for t := 0; t < n; t++ {
			brv := irradiance.Direct[t]
			trv := irradiance.Global[t]
			drv := trv - brv

			// glazed gain
			if w != nil && a_ww > 0 {
				shgc := w.SolarHeatGainCoef(irradiance.AOI[t])
				shgc_diffuse := w.SolarHeatGainCoefDiffuse()
				f_sh_w := w.ShadingCoefExt()
				f_w := w.ShadingCoefInt()
				f_f := w.FrameFactor()
				phi_sol[t] += brv*f_sh_w*f_w*(1-f_f)*shgc*a_ww +
					drv*f_sh_w*f_w*(1-f_f)*shgc_diffuse*a_ww
			}

			// opaque gain, external shading not modelled
			phi_sol[t] += trv*alpha*sr*u_net*a_op -
				f_r*sr*u_net*a_op*h_r*weather.AverageDTAirSky()
		}
	}

	self.phi_ia = convective
	self.phi_st = make([]float64, n)
	self.phi_m = make([]float64, n)
	st_weight := 1 - self.Am/self.Atot - self.Htr_w/(htr_ms_coef*self.Atot)
	m_weight := self.Am / self.Atot
	for t := 0; t < n; t++ {
		self.phi_st[t] = st_weight * (radiant[t] + phi_sol[t])
		self.phi_m[t] = m_weight * (radiant[t] + phi_sol[t])
	}

	self._iso_state = ZoneReady
	return nil
}

/*
CalculateZoneLoadsVDI6007 builds the equivalent outdoor temperature series
and the node gains of the 7R2C network.

Each external surface contributes a sol-air temperature: the long-wave
correction weights the ground and sky radiation temperatures by the sky view
factor, the short-wave one uses the absorbed irradiance over the outer film
coefficient; both weighted into theta_eq by the surface share of UA_tot.
Ground floors couple to the plain outdoor temperature. Solar radiant gains
through windows and internal radiant gains split between the inner and outer
surface nodes by area ratios.
*/
func (self *ThermalZone) CalculateZoneLoadsVDI6007(weather *WeatherFile) error {
	if self._vdi_state < ZoneParametersBuilt {
		return &ZoneNotReadyError{Zone: self.Name, Operation: "CalculateZoneLoadsVDI6007", State: self._vdi_state}
	}

	t_ext := weather.ExtTemp()
	n := self.cfg.NumberOfTimeStepsYear

	theta_eq_tot := make([]float64, n)
	q_il_str_a_iw := make([]float64, n)
	q_il_str_a_aw := make([]float64, n)

	for _, zs := range self.surfaces {
		surface, ok := zs.(*Surface)
		if !ok {
			continue
		}
		c := surface.Construction()

		if surface.SurfaceType() == SurfaceTypeGroundFloor {
			weight := c.UValue() * surface.OpaqueArea() / self.UA_tot
			for t := 0; t < n; t++ {
				theta_eq_tot[t] += t_ext[t] * weight
			}
			continue
		}
		if surface.SurfaceType() != SurfaceTypeExtWall && surface.SurfaceType() != SurfaceTypeRoof {
			continue
		}

		h_r := surface.ExternalRadiativeCoefficient()
		alpha_str_a := c.RadHeatTransCoefExt()
		alpha_a := c.ConvHeatTransCoefExt() + alpha_str_a
		phi := surface.SkyViewFactor()
		const f_sh_op = 1.0 // external obstruction shading not modelled

		irradiance, err := weather.Irradiance(surface.AzimuthRound(), surface.HeightRound())
		if err != nil {
			return err
		}

		op_weight := c.UValue() * surface.OpaqueArea() / self.UA_tot
		w := surface.Window()
		a_ww := surface.GlazedArea()

		for t := 0; t < n; t++ {
			theta_atm, theta_erd := long_wave_radiation(t_ext[t])

			brv := irradiance.Direct[t]
			trv := irradiance.Global[t]

			delta_lw := ((theta_erd-t_ext[t])*(1-phi) + (theta_atm-t_ext[t])*phi) * h_r / (0.93 * alpha_a)
			delta_kw := (brv*f_sh_op + (trv - brv)) * c.ExtAbsorptance() / alpha_a

			theta_eq_tot[t] += (t_ext[t] + delta_lw + delta_kw) * op_weight

			if w != nil && a_ww > 0 {
				theta_eq_tot[t] += (t_ext[t] + delta_lw) * w.UValue() * a_ww / self.UA_tot

				frame := 1 - w.FrameFactor()
				f_sh_w := w.ShadingCoefExt() * w.ShadingCoefInt()
				shgc := w.SolarHeatGainCoef(irradiance.AOI[t])
				shgc_diffuse := w.SolarHeatGainCoefDiffuse()

				q_sol := frame * a_ww * (shgc*brv*f_sh_w + shgc_diffuse*(trv-brv))
				q_il_str_a_iw[t] += q_sol * (self.Araum - self.Aaw) / (self.Araum - a_ww)
				q_il_str_a_aw[t] += q_sol * (self.Aaw - a_ww) / (self.Araum - a_ww)
			}
		}
	}

	convective, radiant, _, err := self.ExtractConvectiveRadiativeLatentLoad()
	if err != nil {
		return err
	}

	self.theta_eq_tot = theta_eq_tot
	self.Q_il_kon_I = convective
	self.Q_il_str_iw = make([]float64, n)
	self.Q_il_str_aw = make([]float64, n)
	iw_share := (self.Araum - self.Aaw) / self.Araum
	aw_share := self.Aaw / self.Araum
	for t := 0; t < n; t++ {
		self.Q_il_str_iw[t] = q_il_str_a_iw[t] + radiant[t]*iw_share
		self.Q_il_str_aw[t] = q_il_str_a_aw[t] + radiant[t]*aw_share
	}

	self._vdi_state = ZoneReady
	return nil
}

func is_external_surface(surface_type string) bool {
	for _, t := range external_surface_types {
		if surface_type == t {
			return true
		}
	}
	return false
}

func is_internal_surface(surface_type string) bool {
	for _, t := range internal_surface_types {
		if surface_type == t {
			return true
		}
	}
	return false
}

func sum_reciprocal(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += 1 / v
	}
	return s
}
