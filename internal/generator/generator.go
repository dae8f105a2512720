package generator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jpequegn/stdlibgen/internal/models"
)

// ErrMissingArgument is wrapped by ArgumentError when a required argument is empty or absent.
var ErrMissingArgument = errors.New("required argument is missing")

// Generator renders module files into templates.
type Generator struct {
	logger *slog.Logger
}

// NewGenerator creates a new generator. A nil logger uses slog.Default().
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger}
}

// Generate renders the job and writes the result to job.OutputPath.
// Both inputs are read before the output is created, so a missing input
// leaves an existing output file untouched.
func (g *Generator) Generate(job *models.Job) error {
	content, err := g.Render(job)
	if err != nil {
		return err
	}

	if job.OutputPath == "" {
		return &ArgumentError{Arg: "output_file", Err: ErrMissingArgument}
	}
	out, err := os.Create(job.OutputPath)
	if err != nil {
		return &ArgumentError{Arg: "output_file", Path: job.OutputPath, Mode: "write", Err: err}
	}
	defer out.Close()

	if _, err := out.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", job.OutputPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", job.OutputPath, err)
	}

	g.logger.Info("generated module", "module", job.ModuleName, "output", job.OutputPath, "bytes", len(content))
	return nil
}

// Render reads the job's template and module files and returns the
// generated content without writing anything. Useful for dry-run mode.
func (g *Generator) Render(job *models.Job) ([]byte, error) {
	tmplFile, err := openInput("template_file", job.TemplatePath)
	if err != nil {
		return nil, err
	}
	defer tmplFile.Close()

	moduleFile, err := openInput("module_file", job.ModulePath)
	if err != nil {
		return nil, err
	}
	defer moduleFile.Close()

	tmpl, err := io.ReadAll(tmplFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", job.TemplatePath, err)
	}

	return g.GenerateContent(tmpl, job.ModuleName, moduleFile)
}

// GenerateContent substitutes moduleName and the quoted lines of module into
// tmpl. The result always ends with a single added newline.
func (g *Generator) GenerateContent(tmpl []byte, moduleName string, module io.Reader) ([]byte, error) {
	if err := checkUTF8("template", tmpl); err != nil {
		return nil, err
	}

	lines, err := ReadLines(module)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("read module", "module", moduleName, "lines", len(lines))

	result, err := Substitute(string(tmpl), map[string]string{
		FieldModuleName: moduleName,
		FieldModuleText: ModuleText(lines),
	})
	if err != nil {
		return nil, err
	}

	return []byte(result + "\n"), nil
}

func openInput(arg, path string) (*os.File, error) {
	if path == "" {
		return nil, &ArgumentError{Arg: arg, Err: ErrMissingArgument}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ArgumentError{Arg: arg, Path: path, Mode: "read", Err: err}
	}
	return f, nil
}
