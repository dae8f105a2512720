package generator

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// indent prefixes every quoted line of the module text block.
const indent = "    "

// QuoteLine turns one module line into an indented string literal entry.
// Trailing white space is dropped and double quotes are backslash-escaped.
// Backslashes already present in the line are emitted unchanged.
func QuoteLine(line string) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	return indent + `"` + strings.ReplaceAll(line, `"`, `\"`) + `"` + "\n"
}

// QuoteLines quotes each line in order.
func QuoteLines(lines []string) []string {
	quoted := make([]string, 0, len(lines))
	for _, line := range lines {
		quoted = append(quoted, QuoteLine(line))
	}
	return quoted
}

// ModuleText joins the quoted lines into the block substituted for
// {module_text}. Surrounding white space of the whole block is trimmed,
// so the first entry carries no indent and the last no newline.
func ModuleText(lines []string) string {
	var b strings.Builder
	for _, q := range QuoteLines(lines) {
		b.WriteString(q)
	}
	return strings.TrimSpace(b.String())
}

// ReadLines reads r to the end and splits it into lines in file order.
// "\n", "\r\n" and a lone "\r" all end a line; a final line without a
// terminator still counts. Empty input yields no lines.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read module: %w", err)
	}
	if err := checkUTF8("module", data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// checkUTF8 returns an EncodingError locating the first invalid byte in data.
func checkUTF8(source string, data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return &EncodingError{Source: source, Offset: offset}
		}
		offset += size
	}
	return &EncodingError{Source: source}
}
