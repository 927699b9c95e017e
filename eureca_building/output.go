package eureca_building

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

/*
ZoneResultsRecorder collects the yearly series of one or more zone
simulations and writes them to a CSV file, one column per recorded series
and one row per time step.
*/
type ZoneResultsRecorder struct {
	headers []string
	columns [][]float64
}

func NewZoneResultsRecorder() *ZoneResultsRecorder {
	return &ZoneResultsRecorder{}
}

// AddSeries records one named yearly series.
func (self *ZoneResultsRecorder) AddSeries(name string, values []float64) {
	self.headers = append(self.headers, name)
	self.columns = append(self.columns, values)
}

// AddZoneResults records the standard series of one zone simulation with a
// prefixed column name ("<zone> <model> ...").
func (self *ZoneResultsRecorder) AddZoneResults(zone string, model string, results *ZoneSimulationResults) {
	prefix := zone + " " + model + " "
	self.AddSeries(prefix+"T air [C]", results.TAir)
	self.AddSeries(prefix+"T operative [C]", results.TOperative)
	self.AddSeries(prefix+"T mean surface [C]", results.TMean)
	self.AddSeries(prefix+"P heating cooling [W]", results.PowerHC)
}

/*
Save writes the recorded series to a CSV file, creating the parent
directory when needed.
*/
func (self *ZoneResultsRecorder) Save(file_path string) error {
	if len(self.columns) == 0 {
		return fmt.Errorf("results recorder: nothing to save")
	}
	n := len(self.columns[0])
	for i, col := range self.columns {
		if len(col) != n {
			return fmt.Errorf("results recorder: series %s length %d does not match %d", self.headers[i], len(col), n)
		}
	}

	if err := os.MkdirAll(filepath.Dir(file_path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(file_path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append([]string{"time step"}, self.headers...)
	if err := writer.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for t := 0; t < n; t++ {
		row[0] = strconv.Itoa(t)
		for j, col := range self.columns {
			row[j+1] = strconv.FormatFloat(col[t], 'f', 4, 64)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return writer.Error()
}
