package generator

import "fmt"

// ArgumentError reports a missing argument or a path that cannot be opened
// in the mode the run requires.
type ArgumentError struct {
	// Arg is the positional argument name (e.g., "template_file")
	Arg string

	// Path is the file path, empty when the argument itself is missing
	Path string

	// Mode is "read" or "write"
	Mode string

	Err error
}

func (e *ArgumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("argument %s: %v", e.Arg, e.Err)
	}
	return fmt.Sprintf("argument %s: cannot open %s for %s: %v", e.Arg, e.Path, e.Mode, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// FormatError reports a template whose substitution syntax cannot be
// resolved. Offset is the byte position of the offending brace.
type FormatError struct {
	Offset int
	Msg    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("template format error at offset %d: %s", e.Offset, e.Msg)
}

// EncodingError reports input that is not valid UTF-8 text.
type EncodingError struct {
	// Source names the input ("template" or "module")
	Source string

	// Offset is the byte position of the first invalid sequence
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8 text (invalid byte at offset %d)", e.Source, e.Offset)
}
