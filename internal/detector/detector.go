// Package detector provides target language detection for generated files.
package detector

import (
	"github.com/jpequegn/stdlibgen/internal/models"
)

// Detector is the interface that all target detectors must implement.
// Each detector is responsible for identifying a single output language.
type Detector interface {
	// Name returns the detector's identifier (e.g., "cpp", "python")
	Name() string

	// Detect inspects the output path and returns a Target if the language matches.
	// Returns nil if the language is not detected.
	Detect(path string) *models.Target
}

// DetectorRegistry holds all registered detectors and orchestrates detection.
type DetectorRegistry struct {
	detectors []Detector
}

// NewRegistry creates a new detector registry with default detectors.
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: []Detector{
			NewCppDetector(),
			NewCDetector(),
			NewPythonDetector(),
		},
	}
}

// Register adds a detector to the registry.
func (r *DetectorRegistry) Register(d Detector) {
	r.detectors = append(r.detectors, d)
}

// Names returns the identifiers of all registered detectors in registration order.
func (r *DetectorRegistry) Names() []string {
	names := make([]string, 0, len(r.detectors))
	for _, d := range r.detectors {
		names = append(names, d.Name())
	}
	return names
}

// DetectPrimary runs all detectors and returns the most confident target.
// Returns nil if no language is detected.
func (r *DetectorRegistry) DetectPrimary(path string) *models.Target {
	var best *models.Target
	for _, d := range r.detectors {
		target := d.Detect(path)
		if target == nil {
			continue
		}
		if best == nil || target.Confidence > best.Confidence {
			best = target
		}
	}
	return best
}
