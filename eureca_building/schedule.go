package eureca_building

import "math"

// Schedule unit types.
const (
	ScheduleTypeDimensionless = "Dimensionless"
	ScheduleTypePercent       = "Percent"
	ScheduleTypeTemperature   = "Temperature"
	ScheduleTypeCapacity      = "Capacity"
	ScheduleTypePower         = "Power"
)

var schedule_types = []string{
	ScheduleTypeDimensionless,
	ScheduleTypePercent,
	ScheduleTypeTemperature,
	ScheduleTypeCapacity,
	ScheduleTypePower,
}

/*
Schedule holds a yearly array of values, one per simulation time step, together
with the unit type and optional validity bounds.

The array length must equal Config.NumberOfTimeStepsYear so every consumer can
index it by time step without range checks. Percent schedules always carry the
[0, 1] bounds regardless of the limits passed in.
*/
type Schedule struct {
	Name string

	_type        string
	_schedule    []float64
	_lower_limit float64
	_upper_limit float64
	_has_lower   bool
	_has_upper   bool
}

/*
NewSchedule creates and validates a yearly schedule.

Args:

	name: name
	schedule_type: one of Dimensionless, Percent, Temperature, Capacity, Power
	schedule: values, one per time step; length must be cfg.NumberOfTimeStepsYear
	lower_limit, upper_limit: optional validity bounds (nil to skip the check)
	cfg: simulation configuration (sets the expected length)

Returns:

	the schedule, or a typed validation error.
*/
func NewSchedule(
	name string,
	schedule_type string,
	schedule []float64,
	lower_limit *float64,
	upper_limit *float64,
	cfg *Config,
) (*Schedule, error) {
	valid := false
	for _, t := range schedule_types {
		if schedule_type == t {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &InvalidScheduleTypeError{Schedule: name, Type: schedule_type}
	}

	s := &Schedule{Name: name, _type: schedule_type}

	if lower_limit != nil {
		s._lower_limit = *lower_limit
		s._has_lower = true
	}
	if upper_limit != nil {
		s._upper_limit = *upper_limit
		s._has_upper = true
	}
	// Percent schedules are fractions whatever limits the caller passes.
	if schedule_type == ScheduleTypePercent {
		s._lower_limit, s._has_lower = 0.0, true
		s._upper_limit, s._has_upper = 1.0, true
	}

	if len(schedule) != cfg.NumberOfTimeStepsYear {
		return nil, &ScheduleLengthMismatchError{
			Schedule: name,
			Length:   len(schedule),
			Expected: cfg.NumberOfTimeStepsYear,
		}
	}
	for _, v := range schedule {
		if math.IsNaN(v) {
			return nil, &ScheduleOutsideBoundaryConditionError{Schedule: name, Limit: math.NaN(), Value: v}
		}
		if s._has_upper && v > s._upper_limit {
			return nil, &ScheduleOutsideBoundaryConditionError{
				Schedule: name, Limit: s._upper_limit, Value: v, Upper: true,
			}
		}
		if s._has_lower && v < s._lower_limit {
			return nil, &ScheduleOutsideBoundaryConditionError{
				Schedule: name, Limit: s._lower_limit, Value: v, Upper: false,
			}
		}
	}
	s._schedule = append([]float64(nil), schedule...)
	return s, nil
}

// Type returns the schedule unit type.
func (self *Schedule) Type() string { return self._type }

// Values returns the full yearly array, one value per time step.
func (self *Schedule) Values() []float64 { return self._schedule }

// Value returns the schedule value at a time step.
func (self *Schedule) Value(time_step int) float64 { return self._schedule[time_step] }

// Len returns the number of time steps of the schedule.
func (self *Schedule) Len() int { return len(self._schedule) }
