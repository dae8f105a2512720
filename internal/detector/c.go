package detector

import (
	"path/filepath"
	"strings"

	"github.com/jpequegn/stdlibgen/internal/models"
)

// CDetector detects C output files by extension.
type CDetector struct{}

// NewCDetector creates a new C detector.
func NewCDetector() *CDetector {
	return &CDetector{}
}

// Name returns the detector identifier.
func (d *CDetector) Name() string {
	return "c"
}

// Detect reports a C target for .c sources. Headers are claimed with a
// lower confidence than the C++ detector gives them.
func (d *CDetector) Detect(path string) *models.Target {
	ext := strings.ToLower(filepath.Ext(path))
	var confidence float64
	switch ext {
	case ".c":
		confidence = 1.0
	case ".h":
		confidence = 0.6
	default:
		return nil
	}
	return &models.Target{
		Language:   "c",
		Extension:  ext,
		Confidence: confidence,
	}
}
