// Package models contains shared data structures used across the application.
package models

// Job describes the inputs and output of a single generation run.
type Job struct {
	// TemplatePath is the template file containing {module_name} and {module_text}
	TemplatePath string

	// ModuleName is substituted verbatim for {module_name}
	ModuleName string

	// ModulePath is the source file whose lines are embedded
	ModulePath string

	// OutputPath is the generated file destination
	OutputPath string
}

// Target represents the language of a generated output file.
type Target struct {
	// Language is the detected target language (e.g., "cpp", "python")
	Language string

	// Extension is the output file extension including the dot (e.g., ".cpp")
	Extension string

	// Confidence is a score from 0.0 to 1.0 indicating detection certainty
	Confidence float64
}
