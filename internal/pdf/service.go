package pdf

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agencyhub/agencyhub/internal/domain/pdfgen"
	ierr "github.com/agencyhub/agencyhub/internal/errors"
	"github.com/agencyhub/agencyhub/internal/typst"
)

// Generator defines the interface for PDF generation operations
type Generator interface {
	RenderQuotePdf(ctx context.Context, data *pdfgen.QuoteData) ([]byte, error)
}

type service struct {
	typst typst.Compiler
}

// NewGenerator creates a new PDF service
func NewGenerator(typst typst.Compiler) Generator {
	return &service{
		typst: typst,
	}
}

func (s *service) RenderQuotePdf(ctx context.Context, data *pdfgen.QuoteData) ([]byte, error) {
	templateName := "quote.typ"

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to marshal quote data").
			Mark(ierr.ErrSystem)
	}

	pdf, err := s.typst.CompileTemplate(
		templateName,
		jsonData,
		typst.WithOutputFile(fmt.Sprintf("quote-%s.pdf", data.ID)),
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to render the quote document").
			Mark(ierr.ErrDelivery)
	}

	return pdf, nil
}
