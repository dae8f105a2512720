// Package generator embeds text modules into source files as quoted string literals.
package generator

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// templates embeds the starter templates at compile time, one per target language.
//
//go:embed templates/*.tmpl
var templatesFS embed.FS

// BuiltinTemplate returns the starter template for a target language.
func BuiltinTemplate(lang string) (string, error) {
	data, err := fs.ReadFile(templatesFS, "templates/"+lang+".tmpl")
	if err != nil {
		return "", fmt.Errorf("no built-in template for %q (available: %s)", lang, strings.Join(BuiltinLanguages(), ", "))
	}
	return string(data), nil
}

// BuiltinLanguages lists the languages that have a built-in template, sorted.
func BuiltinLanguages() []string {
	matches, _ := fs.Glob(templatesFS, "templates/*.tmpl")
	langs := make([]string, 0, len(matches))
	for _, m := range matches {
		langs = append(langs, strings.TrimSuffix(path.Base(m), ".tmpl"))
	}
	sort.Strings(langs)
	return langs
}
