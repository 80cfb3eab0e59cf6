package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/orrery/config"
)

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir       string
	statsFile *os.File
	perfFile  *os.File

	statsHeaderWritten bool
	perfHeaderWritten  bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	statsPath := filepath.Join(dir, "stats.csv")
	f, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	perfPath := filepath.Join(dir, "perf.csv")
	f, err = os.Create(perfPath)
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML alongside the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a window stats row.
func (om *OutputManager) WriteStats(w WindowStats) error {
	if om == nil {
		return nil
	}
	rows := []WindowStats{w}
	if !om.statsHeaderWritten {
		om.statsHeaderWritten = true
		return gocsv.MarshalFile(&rows, om.statsFile)
	}
	return gocsv.MarshalWithoutHeaders(&rows, om.statsFile)
}

// WritePerf appends a perf stats row.
func (om *OutputManager) WritePerf(p PerfStatsCSV) error {
	if om == nil {
		return nil
	}
	rows := []PerfStatsCSV{p}
	if !om.perfHeaderWritten {
		om.perfHeaderWritten = true
		return gocsv.MarshalFile(&rows, om.perfFile)
	}
	return gocsv.MarshalWithoutHeaders(&rows, om.perfFile)
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() {
	if om == nil {
		return
	}
	om.statsFile.Close()
	om.perfFile.Close()
}
