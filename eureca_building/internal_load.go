package eureca_building

import "math"

// Internal heat gain units.
const (
	HeatGainUnitW       = "W"
	HeatGainUnitWPerM2  = "W/m2"
	HeatGainUnitPx      = "px"
	HeatGainUnitPxPerM2 = "px/m2"
)

var people_units = []string{HeatGainUnitW, HeatGainUnitWPerM2, HeatGainUnitPx, HeatGainUnitPxPerM2}
var electric_units = []string{HeatGainUnitW, HeatGainUnitWPerM2}

const fraction_tolerance = 1e-5

// Load is the capability a thermal zone needs from any internal heat gain:
// yearly convective and radiant sensible power, W, and the latent vapour
// mass flow, kg/s. Specific loads (per unit floor area) need the zone area;
// absolute loads ignore it.
type Load interface {
	ConvectiveLoad(area *float64) ([]float64, error)
	RadiantLoad(area *float64) ([]float64, error)
	LatentLoad(area *float64) ([]float64, error)
	LoadName() string
}

/*
internal_heat_gain is the record shared by every load kind: a nominal value,
a Dimensionless/Percent shape schedule, the radiant/convective split of the
sensible part and the latent fraction.

The nominal value in W (people headcounts converted through the metabolic
rate, specific values scaled by the zone area) is cached in
_absolute_nominal once resolved, so repeated extraction over a yearly
schedule does not redo the unit conversion.
*/
type internal_heat_gain struct {
	name     string
	_nominal float64
	schedule *Schedule

	_unit               string
	_calculation_method string // "absolute" or "floor_area"

	_fraction_latent     float64
	_fraction_radiant    float64
	_fraction_convective float64

	_absolute_nominal     float64
	_absolute_nominal_set bool
}

func (self *internal_heat_gain) LoadName() string { return self.name }

func (self *internal_heat_gain) check_fractions() error {
	for _, f := range []float64{self._fraction_latent, self._fraction_radiant, self._fraction_convective} {
		if math.IsNaN(f) || f < 0 || f > 1 {
			return &PropertyOutsideBoundariesError{
				Object: self.name, Property: "fraction",
				Unit: units["fraction"], Limits: [2]float64{0, 1}, Value: f,
			}
		}
	}
	if math.Abs(self._fraction_radiant+self._fraction_convective-1) > fraction_tolerance {
		return &ConvectiveRadiantFractionError{
			Load: self.name, Radiant: self._fraction_radiant, Convective: self._fraction_convective,
		}
	}
	return nil
}

/*
ensure_absolute_nominal resolves the nominal value to absolute W and caches it.

Args:

	px_to_w: multiplier for headcount units (metabolic rate, W/px); 1 for
	    power units
	area: zone floor area, m2; required for floor_area calculation methods
*/
func (self *internal_heat_gain) ensure_absolute_nominal(px_to_w float64, area *float64) (float64, error) {
	if self._absolute_nominal_set {
		return self._absolute_nominal, nil
	}
	nominal := self._nominal * px_to_w
	if self._calculation_method == "floor_area" {
		if area == nil {
			return 0, &AreaNotProvidedError{Load: self.name}
		}
		nominal *= *area
	}
	self._absolute_nominal = nominal
	self._absolute_nominal_set = true
	return nominal, nil
}

func (self *internal_heat_gain) scaled(factor float64) []float64 {
	values := self.schedule.Values()
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = factor * v
	}
	return out
}

/*
People models occupants: sensible power split into radiant and convective, and
a latent part released as vapour.

The sum of the radiant and the convective fraction must be 1 (within 1e-5).
*/
type People struct {
	internal_heat_gain

	_metabolic_rate float64 // W/px, used by the px and px/m2 units
}

/*
NewPeople creates an occupancy load.

Args:

	name: name
	nominal_value: W, W/m2, px or px/m2 according to unit
	unit: one of W, W/m2, px, px/m2
	schedule: occupancy shape (Dimensionless or Percent)
	fraction_latent: latent fraction of the total, [0, 1]
	fraction_radiant: radiant fraction of the sensible part, [0, 1]
	fraction_convective: convective fraction of the sensible part, [0, 1]
	metabolic_rate: W/px for headcount units; <= 0 uses the 110 W/px default

Returns:

	the load, or a typed validation error.
*/
func NewPeople(
	name string,
	nominal_value float64,
	unit string,
	schedule *Schedule,
	fraction_latent float64,
	fraction_radiant float64,
	fraction_convective float64,
	metabolic_rate float64,
) (*People, error) {
	method, err := heat_gain_method(name, unit, people_units)
	if err != nil {
		return nil, err
	}
	if metabolic_rate <= 0 {
		metabolic_rate = 110.0
	}
	p := &People{
		internal_heat_gain: internal_heat_gain{
			name:                 name,
			_nominal:             nominal_value,
			schedule:             schedule,
			_unit:                unit,
			_calculation_method:  method,
			_fraction_latent:     fraction_latent,
			_fraction_radiant:    fraction_radiant,
			_fraction_convective: fraction_convective,
		},
		_metabolic_rate: metabolic_rate,
	}
	if err := p.check_fractions(); err != nil {
		return nil, err
	}
	return p, nil
}

func (self *People) px_to_w() float64 {
	if self._unit == HeatGainUnitPx || self._unit == HeatGainUnitPxPerM2 {
		return self._metabolic_rate
	}
	return 1.0
}

// ConvectiveLoad returns the yearly convective sensible power, W.
func (self *People) ConvectiveLoad(area *float64) ([]float64, error) {
	nominal, err := self.ensure_absolute_nominal(self.px_to_w(), area)
	if err != nil {
		return nil, err
	}
	return self.scaled(nominal * (1 - self._fraction_latent) * self._fraction_convective), nil
}

// RadiantLoad returns the yearly radiant sensible power, W.
func (self *People) RadiantLoad(area *float64) ([]float64, error) {
	nominal, err := self.ensure_absolute_nominal(self.px_to_w(), area)
	if err != nil {
		return nil, err
	}
	return self.scaled(nominal * (1 - self._fraction_latent) * self._fraction_radiant), nil
}

// LatentLoad returns the yearly vapour mass flow, kg/s, converting the
// latent power through the water evaporation heat.
func (self *People) LatentLoad(area *float64) ([]float64, error) {
	nominal, err := self.ensure_absolute_nominal(self.px_to_w(), area)
	if err != nil {
		return nil, err
	}
	return self.scaled(nominal * self._fraction_latent / get_l_wtr()), nil
}

/*
ElectricLoad models appliances and lighting: sensible only, split into
radiant and convective parts.
*/
type ElectricLoad struct {
	internal_heat_gain
}

/*
NewElectricLoad creates an electric equipment load.

Args:

	name: name
	nominal_value: W or W/m2 according to unit
	unit: W or W/m2
	schedule: usage shape (Dimensionless or Percent)
	fraction_radiant: radiant fraction, [0, 1]
	fraction_convective: convective fraction, [0, 1]

Returns:

	the load, or a typed validation error.
*/
func NewElectricLoad(
	name string,
	nominal_value float64,
	unit string,
	schedule *Schedule,
	fraction_radiant float64,
	fraction_convective float64,
) (*ElectricLoad, error) {
	method, err := heat_gain_method(name, unit, electric_units)
	if err != nil {
		return nil, err
	}
	e := &ElectricLoad{
		internal_heat_gain: internal_heat_gain{
			name:                 name,
			_nominal:             nominal_value,
			schedule:             schedule,
			_unit:                unit,
			_calculation_method:  method,
			_fraction_latent:     0.0,
			_fraction_radiant:    fraction_radiant,
			_fraction_convective: fraction_convective,
		},
	}
	if err := e.check_fractions(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewLights creates a lighting load: an ElectricLoad with the usual
// luminaire split (70% radiant, 30% convective).
func NewLights(name string, nominal_value float64, unit string, schedule *Schedule) (*ElectricLoad, error) {
	return NewElectricLoad(name, nominal_value, unit, schedule, 0.7, 0.3)
}

// ConvectiveLoad returns the yearly convective power, W.
func (self *ElectricLoad) ConvectiveLoad(area *float64) ([]float64, error) {
	nominal, err := self.ensure_absolute_nominal(1.0, area)
	if err != nil {
		return nil, err
	}
	return self.scaled(nominal * self._fraction_convective), nil
}

// RadiantLoad returns the yearly radiant power, W.
func (self *ElectricLoad) RadiantLoad(area *float64) ([]float64, error) {
	nominal, err := self.ensure_absolute_nominal(1.0, area)
	if err != nil {
		return nil, err
	}
	return self.scaled(nominal * self._fraction_radiant), nil
}

// LatentLoad returns a zero vapour flow: electric loads are sensible only.
func (self *ElectricLoad) LatentLoad(area *float64) ([]float64, error) {
	return make([]float64, self.schedule.Len()), nil
}

func heat_gain_method(name string, unit string, allowed []string) (string, error) {
	ok := false
	for _, u := range allowed {
		if unit == u {
			ok = true
			break
		}
	}
	if !ok {
		return "", &InvalidHeatGainUnitError{Load: name, Unit: unit, Allowed: allowed}
	}
	if unit == HeatGainUnitWPerM2 || unit == HeatGainUnitPxPerM2 {
		return "floor_area", nil
	}
	return "absolute", nil
}
