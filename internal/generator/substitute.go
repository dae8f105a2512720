package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder names recognized in templates.
const (
	FieldModuleName = "module_name"
	FieldModuleText = "module_text"
)

// Substitute replaces every {name} field in tmpl with values[name].
//
// "{{" and "}}" produce literal braces. Values are inserted verbatim and
// never re-scanned. Any field that is not a plain known name fails with a
// *FormatError and no partial result is returned.
func Substitute(tmpl string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", &FormatError{Offset: i, Msg: "single '{' encountered in format string"}
			}
			field := tmpl[i+1 : i+1+end]
			value, err := resolveField(field, values)
			if err != nil {
				return "", &FormatError{Offset: i, Msg: err.Error()}
			}
			b.WriteString(value)
			i += end + 2
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &FormatError{Offset: i, Msg: "single '}' encountered in format string"}
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

// resolveField looks up the body of a {field} reference.
func resolveField(field string, values map[string]string) (string, error) {
	if field == "" {
		return "", errors.New("positional field {} is not supported, use a named field")
	}
	if strings.ContainsAny(field, "{") {
		return "", fmt.Errorf("unexpected '{' in field name %q", field)
	}
	if strings.ContainsAny(field, "!:") {
		return "", fmt.Errorf("conversions and format specs are not supported in field %q", field)
	}
	if strings.ContainsAny(field, ".[") {
		return "", fmt.Errorf("attribute and index lookups are not supported in field %q", field)
	}
	if isDigits(field) {
		return "", fmt.Errorf("positional field {%s} is not supported, use a named field", field)
	}
	value, ok := values[field]
	if !ok {
		return "", fmt.Errorf("unknown field %q", field)
	}
	return value, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
