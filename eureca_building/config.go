package eureca_building

import (
	"encoding/json"
	"fmt"
	"os"
)

/*
Config holds the process-wide simulation settings.

It is an immutable value threaded explicitly through the constructors that
need it (Schedule length validation, load and ventilation array sizing,
weather resampling). Re-creating a Config does not retroactively invalidate
Schedules built against a previous one; that is a caller responsibility.
*/
type Config struct {
	TimeStepsPerHour      int     `json:"time_steps_per_hour"`
	NumberOfTimeStepsYear int     `json:"number_of_time_steps_year"`
	TimeStepSeconds       float64 `json:"time_step_seconds"`
}

/*
NewConfig builds a Config from the number of time steps per hour.

Args:

	time_steps_per_hour: number of time steps in one hour (1, 2, 4, ...)

Returns:

	Config and an error if time_steps_per_hour is not positive.
*/
func NewConfig(time_steps_per_hour int) (*Config, error) {
	if time_steps_per_hour < 1 {
		return nil, fmt.Errorf("config: time_steps_per_hour must be at least 1: %d", time_steps_per_hour)
	}
	return &Config{
		TimeStepsPerHour:      time_steps_per_hour,
		NumberOfTimeStepsYear: 8760 * time_steps_per_hour,
		TimeStepSeconds:       3600.0 / float64(time_steps_per_hour),
	}, nil
}

/*
LoadConfig reads a Config from a JSON file.

Only time_steps_per_hour is required; the derived fields are recomputed.
*/
func LoadConfig(file_path string) (*Config, error) {
	data, err := os.ReadFile(file_path)
	if err != nil {
		return nil, fmt.Errorf("config file %s not found: %w", file_path, err)
	}
	var raw Config
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config file %s: %w", file_path, err)
	}
	return NewConfig(raw.TimeStepsPerHour)
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(file_path string) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file_path, data, 0644)
}
