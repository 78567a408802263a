package sheet

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheets the renderer touches. Anything else in the template passes through
// untouched.
const (
	SheetStudio      = "Studio"
	SheetPrint       = "Print"
	SheetSummaryCore = "Event Summary - Core"
	SheetSummaryOAB  = "Event Summary - OAB"
)

// Template is the analysed invoice template. It keeps the path rather than
// an open workbook; generation reopens the file so each run starts from the
// pristine template.
type Template struct {
	Path        string   `json:"path"`
	Sheets      []string `json:"sheets"`
	HasMacros   bool     `json:"hasMacros"`
	CoreClients []string `json:"coreClients"`
	OABClients  []string `json:"oabClients"`
}

// StudioTypes are the selectable job types offered by the template.
var StudioTypes = []string{"Artwork", "Creative Artwork", "Digital"}

// LoadTemplate opens and analyses an invoice template: sheet inventory,
// macro detection, and the client names listed on the two Event Summary
// sheets (column B, rows 7-49, skipping blanks, totals and formula cells).
func LoadTemplate(path string) (*Template, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Source: "template", Err: err}
	}
	defer f.Close()

	tpl := &Template{
		Path:      path,
		Sheets:    f.GetSheetList(),
		HasMacros: strings.EqualFold(filepath.Ext(path), ".xlsm"),
	}

	tpl.CoreClients = readClientNames(f, SheetSummaryCore)
	tpl.OABClients = readClientNames(f, SheetSummaryOAB)

	return tpl, nil
}

func readClientNames(f *excelize.File, sheetName string) []string {
	if !hasSheet(f, sheetName) {
		return nil
	}
	var clients []string
	for row := 7; row < 50; row++ {
		cell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			continue
		}
		value, err := f.GetCellValue(sheetName, cell)
		if err != nil {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" || value == "Total" || value == "TOTAL" {
			continue
		}
		if formula, _ := f.GetCellFormula(sheetName, cell); formula != "" {
			continue
		}
		clients = append(clients, value)
	}
	return clients
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}
