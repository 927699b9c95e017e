package eureca_building

// Setpoint kinds and application modes.
const (
	SetpointTypeTemperature      = "temperature"
	SetpointTypeRelativeHumidity = "relative_humidity"

	SetpointModeAir       = "air"
	SetpointModeOperative = "operative"
	SetpointModeRadiant   = "radiant"
)

var setpoint_types = []string{SetpointTypeTemperature, SetpointTypeRelativeHumidity}

/*
SetpointDualBand couples a heating (lower) and a cooling (upper) schedule
into one control band. The solver heats when the free-floating temperature
falls below the heating schedule and cools when it rises above the cooling
schedule.

Temperature setpoints require Temperature schedules; relative humidity
setpoints require Percent schedules.
*/
type SetpointDualBand struct {
	Name string

	_setpoint_type string
	_heating       *Schedule
	_cooling       *Schedule
}

/*
NewSetpointDualBand creates a dual band setpoint.

Args:

	name: name
	setpoint_type: temperature or relative_humidity
	heating: lower band schedule
	cooling: upper band schedule

Returns:

	the setpoint, or a typed validation error when the type tag or the
	schedule unit types do not match.
*/
func NewSetpointDualBand(name string, setpoint_type string, heating *Schedule, cooling *Schedule) (*SetpointDualBand, error) {
	valid := false
	for _, t := range setpoint_types {
		if setpoint_type == t {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &InvalidScheduleTypeError{Schedule: name, Type: setpoint_type}
	}

	want := ScheduleTypeTemperature
	if setpoint_type == SetpointTypeRelativeHumidity {
		want = ScheduleTypePercent
	}
	for _, sched := range []*Schedule{heating, cooling} {
		if sched.Type() != want {
			return nil, &InvalidScheduleTypeError{Schedule: sched.Name, Type: sched.Type()}
		}
	}

	return &SetpointDualBand{
		Name:           name,
		_setpoint_type: setpoint_type,
		_heating:       heating,
		_cooling:       cooling,
	}, nil
}

// SetpointType returns the setpoint kind tag.
func (self *SetpointDualBand) SetpointType() string { return self._setpoint_type }

// HeatingValue returns the lower band value at a time step.
func (self *SetpointDualBand) HeatingValue(time_step int) float64 {
	return self._heating.Value(time_step)
}

// CoolingValue returns the upper band value at a time step.
func (self *SetpointDualBand) CoolingValue(time_step int) float64 {
	return self._cooling.Value(time_step)
}

// HeatingSchedule returns the lower band schedule.
func (self *SetpointDualBand) HeatingSchedule() *Schedule { return self._heating }

// CoolingSchedule returns the upper band schedule.
func (self *SetpointDualBand) CoolingSchedule() *Schedule { return self._cooling }
