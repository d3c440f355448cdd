package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/physix/config"
)

// OutputManager handles structured experiment output with CSV logging. A
// nil manager is valid and discards everything, so callers need no guards.
type OutputManager struct {
	dir            string
	kinematicsFile *os.File

	headerWritten bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil if
// dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "kinematics.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating kinematics.csv: %w", err)
	}

	return &OutputManager{dir: dir, kinematicsFile: f}, nil
}

// WriteConfig saves the active configuration next to the CSV logs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWindow appends one window record to kinematics.csv, emitting the
// header on first write.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.kinematicsFile); err != nil {
			return fmt.Errorf("writing kinematics: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.kinematicsFile); err != nil {
		return fmt.Errorf("writing kinematics: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.kinematicsFile.Close()
}
