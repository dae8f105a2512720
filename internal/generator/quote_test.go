package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "plain", line: "(define (abs x) x)", want: "    \"(define (abs x) x)\"\n"},
		{name: "trailing newline", line: "a\n", want: "    \"a\"\n"},
		{name: "trailing crlf and spaces", line: "a  \t\r\n", want: "    \"a\"\n"},
		{name: "leading space kept", line: "  (if x", want: "    \"  (if x\"\n"},
		{name: "empty", line: "", want: "    \"\"\n"},
		{name: "quotes escaped", line: `(throw "number expected, got " frst)`, want: "    \"(throw \\\"number expected, got \\\" frst)\"\n"},
		{name: "backslash untouched", line: `a\b`, want: "    \"a\\b\"\n"},
		{name: "escaped quote escaped again", line: `\"`, want: "    \"\\\\\"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteLine(tt.line))
		})
	}
}

func TestQuoteLines_PreservesOrderAndCount(t *testing.T) {
	lines := []string{"first", "", "third \"q\"", "fourth"}

	quoted := QuoteLines(lines)
	require.Len(t, quoted, len(lines))
	for i, q := range quoted {
		assert.Equal(t, QuoteLine(lines[i]), q)
	}
}

// unquote reverses QuoteLine for lines without backslashes.
func unquote(t *testing.T, q string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(q, indent+`"`), "missing indent and opening quote: %q", q)
	require.True(t, strings.HasSuffix(q, "\"\n"), "missing closing quote and newline: %q", q)
	body := strings.TrimSuffix(strings.TrimPrefix(q, indent+`"`), "\"\n")
	return strings.ReplaceAll(body, `\"`, `"`)
}

func TestQuoteLine_RoundTrip(t *testing.T) {
	lines := []string{
		"",
		`"`,
		`""`,
		`say "hi" to "them"`,
		"trailing   ",
		"tab\tinside",
		"unicode λ “curly”",
		"  indented \"quote\"\n",
	}

	for _, line := range lines {
		want := strings.TrimRight(line, " \t\r\n")
		assert.Equal(t, want, unquote(t, QuoteLine(line)), "line %q", line)
	}
}

func TestModuleText(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "no lines", lines: nil, want: ""},
		{name: "single line", lines: []string{"a"}, want: `"a"`},
		{name: "two lines", lines: []string{"a", `b"c`}, want: "\"a\"\n    \"b\\\"c\""},
		{name: "blank lines kept", lines: []string{"", "x", ""}, want: "\"\"\n    \"x\"\n    \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleText(tt.lines))
		})
	}
}

func TestModuleText_EntryCount(t *testing.T) {
	lines := []string{"(define (first lst) (car lst))", "(define (rest lst) (cdr lst))", "", "(define (list . x) x)"}

	block := ModuleText(lines)
	entries := strings.Split(block, "\n")
	require.Len(t, entries, len(lines))
	for i, e := range entries {
		assert.Equal(t, lines[i], unquote(t, indent+strings.TrimLeft(e, " ")+"\n"))
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single newline", input: "\n", want: []string{""}},
		{name: "terminated", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "unterminated last line", input: "a\nb", want: []string{"a", "b"}},
		{name: "blank line at end", input: "a\n\n", want: []string{"a", ""}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "lone cr", input: "a\rb", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLines_InvalidUTF8(t *testing.T) {
	_, err := ReadLines(strings.NewReader("ok\n\xffbad\n"))

	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "module", encErr.Source)
	assert.Equal(t, 3, encErr.Offset)
}

func TestReadLines_LongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)

	got, err := ReadLines(strings.NewReader(long + "\nshort\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0], 1<<20)
	assert.Equal(t, "short", got[1])
}
