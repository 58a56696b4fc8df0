package testutil

import (
	"context"
	"fmt"

	"github.com/agencyhub/agencyhub/internal/domain/pdfgen"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/pdf"
)

var _ pdf.Generator = (*MockPDFGenerator)(nil)

// MockPDFGenerator is a pdf.Generator that returns deterministic bytes
// without shelling out to typst. Set FailNext to make the next render fail.
type MockPDFGenerator struct {
	FailNext bool
	Rendered []*pdfgen.QuoteData
}

// NewMockPDFGenerator creates a new mock PDF generator
func NewMockPDFGenerator() *MockPDFGenerator {
	return &MockPDFGenerator{}
}

// RenderQuotePdf implements pdf.Generator
func (m *MockPDFGenerator) RenderQuotePdf(ctx context.Context, data *pdfgen.QuoteData) ([]byte, error) {
	if m.FailNext {
		m.FailNext = false
		return nil, ierr.NewError("pdf rendering failed").
			WithHint("Failed to render the quote document").
			Mark(ierr.ErrDelivery)
	}
	m.Rendered = append(m.Rendered, data)
	return []byte(fmt.Sprintf("%%PDF %s", data.QuoteNumber)), nil
}
