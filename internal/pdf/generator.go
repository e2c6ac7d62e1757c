package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/contract-intel/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() (*Generator, error) {
	return &Generator{fontName: "Helvetica"}, nil
}

// Generate renders a one-page analysis summary for a completed
// contract.
func (g *Generator) Generate(contract *model.Contract) ([]byte, error) {
	if contract.Data == nil {
		return nil, fmt.Errorf("contract %s has no analysis data", contract.ID)
	}
	data := contract.Data

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Contract Analysis Report", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("File: %s", contract.Filename), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Type: %s    Overall confidence: %d/100",
		strings.ToUpper(string(data.ContractType)), data.OverallConfidence), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addSectionTitle(pdf, "Parties")
	if len(data.Parties) == 0 {
		pdf.CellFormat(0, 6, "No parties identified", "", 1, "L", false, 0, "")
	}
	for _, party := range data.Parties {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s (%s, confidence %.2f)",
			party.Name, safeValue(party.Role), party.Confidence), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	g.addSectionTitle(pdf, "Financial Details")
	if data.FinancialDetails.TotalValue.Present {
		currency := ""
		if data.FinancialDetails.Currency.Present {
			currency = " " + data.FinancialDetails.Currency.Value
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("Total value: %.2f%s", data.FinancialDetails.TotalValue.Value, currency), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "No total value extracted", "", 1, "L", false, 0, "")
	}
	if len(data.FinancialDetails.LineItems) > 0 {
		headers := []string{"Description", "Qty", "Unit price", "Total"}
		widths := []float64{90, 20, 35, 35}
		g.drawTableRow(pdf, headers, widths, true)
		for _, item := range data.FinancialDetails.LineItems {
			row := []string{
				item.Description,
				fmt.Sprintf("%.0f", item.Quantity),
				fmt.Sprintf("%.2f", item.UnitPrice),
				fmt.Sprintf("%.2f", item.Total),
			}
			g.drawTableRow(pdf, row, widths, false)
		}
	}
	pdf.Ln(2)

	g.addSectionTitle(pdf, "Payment Terms")
	pdf.CellFormat(0, 6, fmt.Sprintf("Terms: %s    Method: %s    Schedule: %s",
		fieldValue(data.PaymentTerms.Terms),
		fieldValue(data.PaymentTerms.Method),
		fieldValue(data.PaymentTerms.Schedule)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if data.NDATerms != nil {
		g.addSectionTitle(pdf, "NDA Terms")
		mutual := "no"
		if data.NDATerms.Mutual.Present && data.NDATerms.Mutual.Value {
			mutual = "yes"
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("Confidentiality period: %s    Mutual: %s",
			fieldValue(data.NDATerms.ConfidentialityPeriod), mutual), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	g.addSectionTitle(pdf, "Gap Analysis")
	if len(data.GapAnalysis.MissingFields) == 0 {
		pdf.CellFormat(0, 6, "No gaps detected", "", 1, "L", false, 0, "")
	}
	critical := make(map[string]bool, len(data.GapAnalysis.CriticalGaps))
	for _, gap := range data.GapAnalysis.CriticalGaps {
		critical[gap] = true
	}
	for _, field := range data.GapAnalysis.MissingFields {
		label := field
		if critical[field] {
			label += " (critical)"
			pdf.SetTextColor(200, 0, 0)
		}
		pdf.CellFormat(0, 6, "- "+label, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	for _, rec := range data.GapAnalysis.Recommendations {
		pdf.MultiCell(0, 5, rec, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
}

func (g *Generator) drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func fieldValue(f model.StringField) string {
	if !f.Present {
		return "-"
	}
	return f.Value
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
