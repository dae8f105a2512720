package detector

import (
	"path/filepath"
	"strings"

	"github.com/jpequegn/stdlibgen/internal/models"
)

// PythonDetector detects Python output files by extension.
type PythonDetector struct{}

// NewPythonDetector creates a new Python detector.
func NewPythonDetector() *PythonDetector {
	return &PythonDetector{}
}

// Name returns the detector identifier.
func (d *PythonDetector) Name() string {
	return "python"
}

// Detect reports a Python target for .py and .pyi files.
func (d *PythonDetector) Detect(path string) *models.Target {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".py" && ext != ".pyi" {
		return nil
	}
	return &models.Target{
		Language:   "python",
		Extension:  ext,
		Confidence: 1.0,
	}
}
