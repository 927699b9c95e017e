package eureca_building

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourly_config(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(1)
	require.NoError(t, err)
	return cfg
}

func constant_values(value float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return values
}

func float_ptr(v float64) *float64 { return &v }

func TestSchedule_Valid(t *testing.T) {
	cfg := hourly_config(t)
	values := constant_values(0.5, cfg.NumberOfTimeStepsYear)
	values[10] = 1.0

	s, err := NewSchedule("occupancy", ScheduleTypePercent, values, nil, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, ScheduleTypePercent, s.Type())
	assert.Equal(t, cfg.NumberOfTimeStepsYear, s.Len())
	assert.Equal(t, 1.0, s.Value(10))
	assert.Equal(t, 0.5, s.Value(11))
}

func TestSchedule_InvalidType(t *testing.T) {
	cfg := hourly_config(t)
	_, err := NewSchedule("bad", "Fraction", constant_values(0, cfg.NumberOfTimeStepsYear), nil, nil, cfg)
	var invalid *InvalidScheduleTypeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Fraction", invalid.Type)
}

func TestSchedule_LengthMismatch(t *testing.T) {
	cfg := hourly_config(t)
	_, err := NewSchedule("short", ScheduleTypeDimensionless, constant_values(0, 24), nil, nil, cfg)
	var mismatch *ScheduleLengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 24, mismatch.Length)
	assert.Equal(t, cfg.NumberOfTimeStepsYear, mismatch.Expected)
}

func TestSchedule_PercentForcesFractionBounds(t *testing.T) {
	cfg := hourly_config(t)
	values := constant_values(0.5, cfg.NumberOfTimeStepsYear)
	values[0] = 1.5

	// explicit wide limits do not relax the fraction check
	_, err := NewSchedule("over", ScheduleTypePercent, values, float_ptr(-10), float_ptr(10), cfg)
	var outside *ScheduleOutsideBoundaryConditionError
	require.ErrorAs(t, err, &outside)
	assert.True(t, outside.Upper)
	assert.Equal(t, 1.0, outside.Limit)
	assert.Equal(t, 1.5, outside.Value)
}

func TestSchedule_ExplicitBounds(t *testing.T) {
	cfg := hourly_config(t)
	values := constant_values(18.0, cfg.NumberOfTimeStepsYear)
	values[100] = -60.0

	_, err := NewSchedule("heating", ScheduleTypeTemperature, values, float_ptr(-50), float_ptr(60), cfg)
	var outside *ScheduleOutsideBoundaryConditionError
	require.ErrorAs(t, err, &outside)
	assert.False(t, outside.Upper)

	values[100] = 18.0
	s, err := NewSchedule("heating", ScheduleTypeTemperature, values, float_ptr(-50), float_ptr(60), cfg)
	require.NoError(t, err)
	assert.Equal(t, 18.0, s.Value(100))
}

func TestSchedule_RejectsNaN(t *testing.T) {
	cfg := hourly_config(t)
	values := constant_values(0.0, cfg.NumberOfTimeStepsYear)
	values[42] = math.NaN()

	_, err := NewSchedule("nan", ScheduleTypeDimensionless, values, nil, nil, cfg)
	var outside *ScheduleOutsideBoundaryConditionError
	require.ErrorAs(t, err, &outside)
}
