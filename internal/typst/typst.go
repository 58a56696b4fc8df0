package typst

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/agencyhub/agencyhub/internal/config"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/logger"
)

// Compiler wraps the typst CLI for PDF rendering
type Compiler interface {
	Compile(opts CompileOpts) (string, error)
	CompileToBytes(opts CompileOpts) ([]byte, error)
	CompileTemplate(templateName string, data []byte, opts ...CompileOptsBuilder) ([]byte, error)
	CleanupGeneratedFiles(files ...string)
}

type compiler struct {
	logger *logger.Logger
	// Path to the typst binary
	binaryPath string
	// Directory where fonts are stored
	fontDir string
	// Directory where templates are stored
	templateDir string
	// Directory for output files
	outputDir string
}

// CompileOpts contains options for compiling a Typst document
type CompileOpts struct {
	// Input file path
	InputFile string
	// Output file name, relative to the output directory
	OutputFile string
	// Additional font paths to include
	FontDirs []string
	// Additional command-line arguments
	ExtraArgs []string
}

type CompileOptsBuilder func(c *CompileOpts)

func WithOutputFile(outputFile string) CompileOptsBuilder {
	return func(c *CompileOpts) {
		c.OutputFile = outputFile
	}
}

func WithFontDirs(fontDirs ...string) CompileOptsBuilder {
	return func(c *CompileOpts) {
		c.FontDirs = fontDirs
	}
}

func WithExtraArgs(extraArgs ...string) CompileOptsBuilder {
	return func(c *CompileOpts) {
		c.ExtraArgs = extraArgs
	}
}

// NewCompiler creates a typst compiler from application config
func NewCompiler(cfg *config.Configuration, logger *logger.Logger) Compiler {
	outputDir := cfg.PDF.OutputDir
	if outputDir == "" {
		outputDir = os.TempDir()
	}
	return &compiler{
		logger:      logger,
		binaryPath:  cfg.PDF.BinaryPath,
		fontDir:     cfg.PDF.FontDir,
		templateDir: cfg.PDF.TemplateDir,
		outputDir:   outputDir,
	}
}

// Compile compiles a Typst document to PDF and returns the output path
func (c *compiler) Compile(opts CompileOpts) (string, error) {
	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = fmt.Sprintf("typst-%d.pdf", time.Now().UnixMilli())
	}
	outputPath := filepath.Join(c.outputDir, outputFile)

	var fontDirs []string
	if c.fontDir != "" {
		fontDirs = append(fontDirs, c.fontDir)
	}
	fontDirs = append(fontDirs, opts.FontDirs...)

	args := []string{"compile", "--root", "/"}
	for _, dir := range fontDirs {
		args = append(args, "--font-path", dir)
	}
	args = append(args, opts.ExtraArgs...)
	args = append(args, opts.InputFile, outputPath)

	cmd := exec.Command(c.binaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", ierr.WithError(err).
			WithMessage("typst compilation failed").
			WithHint("Failed to render PDF document").
			WithReportableDetails(map[string]any{
				"stderr": stderr.String(),
			}).
			Mark(ierr.ErrDelivery)
	}

	return outputPath, nil
}

// CompileToBytes compiles a Typst document and returns the PDF content
func (c *compiler) CompileToBytes(opts CompileOpts) ([]byte, error) {
	pdfPath, err := c.Compile(opts)
	if err != nil {
		return nil, err
	}
	defer os.Remove(pdfPath)

	return os.ReadFile(pdfPath)
}

// CompileTemplate compiles a named template against a JSON payload. The
// payload is written to a temp file and passed to typst via --input, where
// the template reads it with json(sys.inputs.path).
func (c *compiler) CompileTemplate(
	templateName string,
	data []byte,
	opts ...CompileOptsBuilder,
) ([]byte, error) {
	templatePath := filepath.Join(c.templateDir, templateName)
	if _, err := os.Stat(templatePath); os.IsNotExist(err) {
		return nil, ierr.WithError(err).
			WithMessagef("template not found: %s", templatePath).
			WithHint("PDF template is missing").
			Mark(ierr.ErrDelivery)
	}

	jsonFile, err := os.Create(filepath.Join(c.outputDir, fmt.Sprintf("typst-%d.json", time.Now().UnixMilli())))
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to create temporary json file").
			WithHint("Failed to render PDF document").
			Mark(ierr.ErrDelivery)
	}

	if _, err := jsonFile.Write(data); err != nil {
		jsonFile.Close()
		return nil, ierr.WithError(err).
			WithMessage("failed to write data to json file").
			WithHint("Failed to render PDF document").
			Mark(ierr.ErrDelivery)
	}
	jsonFile.Close()
	defer os.Remove(jsonFile.Name())

	compileOpts := CompileOpts{
		InputFile: templatePath,
		ExtraArgs: []string{"--input", fmt.Sprintf("path=%s", jsonFile.Name())},
	}
	for _, opt := range opts {
		opt(&compileOpts)
	}

	return c.CompileToBytes(compileOpts)
}

// CleanupGeneratedFiles removes temporary files created during compilation
func (c *compiler) CleanupGeneratedFiles(files ...string) {
	for _, file := range files {
		if file != "" {
			os.Remove(file)
		}
	}
}
