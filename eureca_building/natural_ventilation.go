package eureca_building

// Natural ventilation and infiltration flow rate units.
const (
	VentilationUnitVolPerH  = "Vol/h"
	VentilationUnitKgPerS   = "kg/s"
	VentilationUnitKgPerM2S = "kg/(m2 s)"
	VentilationUnitM3PerS   = "m3/s"
	VentilationUnitM3PerM2S = "m3/(m2 s)"
)

var ventilation_units = []string{
	VentilationUnitVolPerH,
	VentilationUnitKgPerS,
	VentilationUnitKgPerM2S,
	VentilationUnitM3PerS,
	VentilationUnitM3PerM2S,
}

/*
NaturalVentilation models a ventilation or infiltration air stream as a
nominal rate shaped by a yearly schedule.

The nominal rate is converted to an absolute dry-air mass flow, kg/s, from
the unit: air-changes rates need the zone volume, specific rates the zone
floor area. The vapour stream carried by the air is the air mass flow times
the outdoor specific humidity, so it needs the weather data.
*/
type NaturalVentilation struct {
	Name string

	_nominal float64
	_unit    string
	schedule *Schedule

	_absolute_nominal     float64
	_absolute_nominal_set bool
}

/*
NewNaturalVentilation creates a ventilation/infiltration stream.

Args:

	name: name
	nominal_value: flow rate in the given unit
	unit: one of Vol/h, kg/s, kg/(m2 s), m3/s, m3/(m2 s)
	schedule: usage shape; must be Dimensionless or Percent

Returns:

	the stream, or a typed validation error.
*/
func NewNaturalVentilation(name string, nominal_value float64, unit string, schedule *Schedule) (*NaturalVentilation, error) {
	ok := false
	for _, u := range ventilation_units {
		if unit == u {
			ok = true
			break
		}
	}
	if !ok {
		return nil, &InvalidHeatGainUnitError{Load: name, Unit: unit, Allowed: ventilation_units}
	}
	if schedule.Type() != ScheduleTypeDimensionless && schedule.Type() != ScheduleTypePercent {
		return nil, &InvalidScheduleTypeError{Schedule: schedule.Name, Type: schedule.Type()}
	}
	return &NaturalVentilation{
		Name:     name,
		_nominal: nominal_value,
		_unit:    unit,
		schedule: schedule,
	}, nil
}

// ensure_absolute_nominal converts the nominal rate to kg/s of dry air and
// caches it. area is the zone floor area, m2; volume the zone net volume, m3.
func (self *NaturalVentilation) ensure_absolute_nominal(area *float64, volume *float64) (float64, error) {
	if self._absolute_nominal_set {
		return self._absolute_nominal, nil
	}
	rho := get_rho_a()
	var nominal float64
	switch self._unit {
	case VentilationUnitVolPerH:
		if volume == nil {
			return 0, &AreaNotProvidedError{Load: self.Name}
		}
		nominal = self._nominal * *volume * rho / 3600
	case VentilationUnitKgPerS:
		nominal = self._nominal
	case VentilationUnitKgPerM2S:
		if area == nil {
			return 0, &AreaNotProvidedError{Load: self.Name}
		}
		nominal = self._nominal * *area
	case VentilationUnitM3PerS:
		nominal = self._nominal * rho
	case VentilationUnitM3PerM2S:
		if area == nil {
			return 0, &AreaNotProvidedError{Load: self.Name}
		}
		nominal = self._nominal * *area * rho
	}
	self._absolute_nominal = nominal
	self._absolute_nominal_set = true
	return nominal, nil
}

// AirFlowRate returns the yearly dry-air mass flow, kg/s.
func (self *NaturalVentilation) AirFlowRate(area *float64, volume *float64) ([]float64, error) {
	nominal, err := self.ensure_absolute_nominal(area, volume)
	if err != nil {
		return nil, err
	}
	values := self.schedule.Values()
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = nominal * v
	}
	return out, nil
}

// VapourFlowRate returns the yearly vapour mass flow carried by the air
// stream, kg/s: air flow times the outdoor specific humidity.
func (self *NaturalVentilation) VapourFlowRate(area *float64, volume *float64, weather *WeatherFile) ([]float64, error) {
	air, err := self.AirFlowRate(area, volume)
	if err != nil {
		return nil, err
	}
	humidity := weather.SpecificHumidity()
	out := make([]float64, len(air))
	for i, m := range air {
		out[i] = m * humidity[i]
	}
	return out, nil
}
