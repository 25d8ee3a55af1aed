package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"wealth-site/domain"
)

const (
	pdfMarginLeft   = 20.0
	pdfMarginTop    = 20.0
	pdfMarginRight  = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight

	Disclaimer = "Educational illustration only. Hypothetical results. Not a guarantee. " +
		"Not financial, tax, or legal advice. Actual outcomes depend on market conditions, " +
		"investment selection, fees, and individual circumstances."
)

// RenderIllustrationPDF renders a one page summary of a projection.
func RenderIllustrationPDF(
	firmName string,
	input domain.ProjectionInput,
	result domain.ProjectionResult,
	generated time.Time,
) ([]byte, error) {
	in := ClampInput(input)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(11, 19, 43)
	pdf.CellFormat(pdfContentWidth, 12, firmName, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 8, "Wealth illustration", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated: %s", generated.Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	row := func(label, value string, fill bool) {
		pdf.CellFormat(pdfContentWidth*0.6, 8, label, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(pdfContentWidth*0.4, 8, value, "1", 1, "R", fill, 0, "")
	}

	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetTextColor(50, 50, 50)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Inputs", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	row("Current balance", FormatUSD(in.StartingBalance), false)
	row("Monthly contribution", FormatUSD(in.MonthlyContribution), false)
	row("Years to grow", fmt.Sprintf("%d", result.HorizonYears), false)
	row("Assumed annual growth", fmt.Sprintf("%.0f%%", in.AnnualRate*100), false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Illustration", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	row("Estimated future value", FormatUSD(result.FutureValue), false)
	row("Total contributions", FormatUSD(result.TotalContributions), false)
	row("Estimated growth (hypothetical)", FormatUSD(result.Growth), false)
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.MultiCell(pdfContentWidth, 5, Disclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render illustration: %w", err)
	}
	return buf.Bytes(), nil
}
