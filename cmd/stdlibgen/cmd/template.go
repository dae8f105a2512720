package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpequegn/stdlibgen/internal/detector"
	"github.com/jpequegn/stdlibgen/internal/generator"
	"github.com/spf13/cobra"
)

// defaultTemplateLang is printed when no language is requested.
const defaultTemplateLang = "cpp"

func newTemplateCmd() *cobra.Command {
	var forPath string

	templateCmd := &cobra.Command{
		Use:   "template [lang]",
		Short: "Print a built-in template",
		Long: fmt.Sprintf(`Print a starter template containing both placeholders.

Available languages: %s. Defaults to %s, or to the language
matching the file given with --for.`, strings.Join(generator.BuiltinLanguages(), ", "), defaultTemplateLang),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := defaultTemplateLang
			switch {
			case len(args) == 1 && forPath != "":
				return errors.New("pass either a language or --for, not both")
			case len(args) == 1:
				lang = args[0]
			case forPath != "":
				target := detector.NewRegistry().DetectPrimary(forPath)
				if target == nil {
					return fmt.Errorf("cannot detect a target language for %s", forPath)
				}
				lang = target.Language
			}

			tmpl, err := generator.BuiltinTemplate(lang)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), tmpl)
			return err
		},
	}

	templateCmd.Flags().StringVar(&forPath, "for", "", "Pick the template matching this output file's extension")

	return templateCmd
}
