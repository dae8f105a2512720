package detector

import (
	"path/filepath"
	"strings"

	"github.com/jpequegn/stdlibgen/internal/models"
)

// cppExtensions maps C++ file extensions to a detection confidence.
// Headers and .inc fragments are also valid C, hence the lower score.
var cppExtensions = map[string]float64{
	".cpp": 1.0,
	".cc":  1.0,
	".cxx": 1.0,
	".c++": 1.0,
	".hpp": 1.0,
	".hh":  1.0,
	".h":   0.7,
	".inc": 0.5,
}

// CppDetector detects C++ output files by extension.
type CppDetector struct{}

// NewCppDetector creates a new C++ detector.
func NewCppDetector() *CppDetector {
	return &CppDetector{}
}

// Name returns the detector identifier.
func (d *CppDetector) Name() string {
	return "cpp"
}

// Detect reports a C++ target for known source and header extensions.
func (d *CppDetector) Detect(path string) *models.Target {
	ext := strings.ToLower(filepath.Ext(path))
	confidence, ok := cppExtensions[ext]
	if !ok {
		return nil
	}
	return &models.Target{
		Language:   "cpp",
		Extension:  ext,
		Confidence: confidence,
	}
}
