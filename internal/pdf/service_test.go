package pdf

import (
	"context"
	"errors"
	"testing"

	"github.com/agencyhub/agencyhub/internal/domain/pdfgen"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/typst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompiler struct {
	output    []byte
	err       error
	templates []string
}

func (c *stubCompiler) Compile(opts typst.CompileOpts) (string, error) {
	return "", c.err
}

func (c *stubCompiler) CompileToBytes(opts typst.CompileOpts) ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.output, nil
}

func (c *stubCompiler) CompileTemplate(templateName string, data []byte, opts ...typst.CompileOptsBuilder) ([]byte, error) {
	c.templates = append(c.templates, templateName)
	if c.err != nil {
		return nil, c.err
	}
	return c.output, nil
}

func (c *stubCompiler) CleanupGeneratedFiles(files ...string) {}

func TestRenderQuotePdf(t *testing.T) {
	stub := &stubCompiler{output: []byte("%PDF-1.7")}
	gen := NewGenerator(stub)

	pdf, err := gen.RenderQuotePdf(context.Background(), &pdfgen.QuoteData{
		ID:          "quote_1",
		QuoteNumber: "QT-1001",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), pdf)
	assert.Equal(t, []string{"quote.typ"}, stub.templates)
}

func TestRenderQuotePdfCompileFailure(t *testing.T) {
	stub := &stubCompiler{err: errors.New("typst exited with status 1")}
	gen := NewGenerator(stub)

	_, err := gen.RenderQuotePdf(context.Background(), &pdfgen.QuoteData{ID: "quote_1"})
	require.Error(t, err)

	// Render failures surface as delivery errors, the same way a rejected
	// email does, so callers map them to 502 rather than 500
	assert.True(t, ierr.IsDelivery(err))
}
