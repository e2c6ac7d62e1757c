package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/contract-intel/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a completed contract analysis as a workbook with a
// summary sheet plus detail sheets for parties, line items and gaps.
func (g *Generator) Generate(contract *model.Contract) ([]byte, error) {
	if contract.Data == nil {
		return nil, fmt.Errorf("contract %s has no analysis data", contract.ID)
	}
	data := contract.Data

	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, contract); err != nil {
		return nil, err
	}

	file.NewSheet("Parties")
	if err := g.writeParties(file, "Parties", data); err != nil {
		return nil, err
	}

	file.NewSheet("Line Items")
	if err := g.writeLineItems(file, "Line Items", data); err != nil {
		return nil, err
	}

	file.NewSheet("Gaps")
	if err := g.writeGaps(file, "Gaps", data); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, contract *model.Contract) error {
	data := contract.Data

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "File")
	set("B1", contract.Filename)
	set("A2", "Contract type")
	set("B2", string(data.ContractType))
	set("A3", "Overall confidence")
	set("B3", data.OverallConfidence)
	set("A4", "Pages")
	set("B4", data.Structure.PageCount)
	set("A5", "Characters")
	set("B5", data.Structure.CharCount)

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Section")
	set(fmt.Sprintf("B%d", tableRow), "Confidence")

	sections := []struct {
		name       string
		confidence float64
	}{
		{"Parties", data.PartiesConfidence},
		{"Financial details", data.FinancialDetails.Confidence},
		{"Payment terms", data.PaymentTerms.Confidence},
		{"SLA", data.SLAInfo.Confidence},
		{"Account info", data.AccountInfo.Confidence},
		{"Revenue classification", data.RevenueClassification.Confidence},
	}
	for i, section := range sections {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), section.name)
		set(fmt.Sprintf("B%d", row), section.confidence)
	}
	if data.NDATerms != nil {
		row := tableRow + 1 + len(sections)
		set(fmt.Sprintf("A%d", row), "NDA terms")
		set(fmt.Sprintf("B%d", row), data.NDATerms.Confidence)
	}

	if data.FinancialDetails.TotalValue.Present {
		set("D1", "Total value")
		set("E1", data.FinancialDetails.TotalValue.Value)
		if data.FinancialDetails.Currency.Present {
			set("F1", data.FinancialDetails.Currency.Value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	return nil
}

func (g *Generator) writeParties(file *excelize.File, sheet string, data *model.ContractData) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Name")
	set("B1", "Role")
	set("C1", "Confidence")
	for i, party := range data.Parties {
		row := i + 2
		set(fmt.Sprintf("A%d", row), party.Name)
		set(fmt.Sprintf("B%d", row), party.Role)
		set(fmt.Sprintf("C%d", row), party.Confidence)
	}

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeLineItems(file *excelize.File, sheet string, data *model.ContractData) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Description", "Quantity", "Unit price", "Total", "Confidence"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, item := range data.FinancialDetails.LineItems {
		row := i + 2
		set(fmt.Sprintf("A%d", row), item.Description)
		set(fmt.Sprintf("B%d", row), item.Quantity)
		set(fmt.Sprintf("C%d", row), item.UnitPrice)
		set(fmt.Sprintf("D%d", row), item.Total)
		set(fmt.Sprintf("E%d", row), item.Confidence)
	}

	_ = file.SetColWidth(sheet, "A", "A", 45)
	return nil
}

func (g *Generator) writeGaps(file *excelize.File, sheet string, data *model.ContractData) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	critical := make(map[string]bool, len(data.GapAnalysis.CriticalGaps))
	for _, gap := range data.GapAnalysis.CriticalGaps {
		critical[gap] = true
	}

	set("A1", "Missing field")
	set("B1", "Critical")
	for i, field := range data.GapAnalysis.MissingFields {
		row := i + 2
		set(fmt.Sprintf("A%d", row), field)
		if critical[field] {
			set(fmt.Sprintf("B%d", row), "yes")
		} else {
			set(fmt.Sprintf("B%d", row), "no")
		}
	}

	recRow := len(data.GapAnalysis.MissingFields) + 4
	set(fmt.Sprintf("A%d", recRow), "Recommendations")
	for i, rec := range data.GapAnalysis.Recommendations {
		set(fmt.Sprintf("A%d", recRow+1+i), rec)
	}

	_ = file.SetColWidth(sheet, "A", "A", 60)
	return nil
}
