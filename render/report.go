package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Page layout in millimetres.
const (
	pdfMargin       = 15.0
	pdfContentWidth = 210.0 - 2*pdfMargin
	pdfLineHeight   = 6.0
	pdfLabelWidth   = 55.0
)

// WritePDF writes a one-page A4 report with the run parameters, the peak,
// the tail diagnostics and the figure. png may be nil to leave the figure
// out.
func WritePDF(path string, png []byte, s Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContentWidth, 10, "Synchrotron spectrum of a power-law population", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 10)

	for i, r := range s.rows() {
		fill := i%2 == 0
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, pdfText(r.label), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(pdfContentWidth-pdfLabelWidth, pdfLineHeight, pdfText(r.value), "1", 1, "L", fill, 0, "")
	}

	if len(png) > 0 {
		pdf.Ln(4)

		const name = "figure"

		pdf.RegisterImageReader(name, "PNG", bytes.NewReader(png))

		// The figure keeps its 720x900 point aspect ratio.
		width := pdfContentWidth * 0.8
		height := width * figureHeight / figureWidth
		pdf.Image(name, pdfMargin+(pdfContentWidth-width)/2, pdf.GetY(), width, height, false, "PNG", 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render: build pdf: %w", err)
	}

	return pdf.OutputFileAndClose(path)
}

var greekToLatin = strings.NewReplacer("γ", "gamma", "ω", "w")

// pdfText maps the Greek letters used in labels onto the core fonts, which
// only cover cp1252.
func pdfText(s string) string {
	return greekToLatin.Replace(s)
}
