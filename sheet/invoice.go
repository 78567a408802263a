package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"itg.uk/invoicegen/model"
)

// MIME types of the generated workbook, depending on template macros.
const (
	MIMEXLSM = "application/vnd.ms-excel.sheet.macroEnabled.12"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Scan windows when clearing stale data rows. Headers live on rows 1-2;
// data starts at row 3.
const (
	studioMaxRow = 1000
	studioMaxCol = 14
	printMaxRow  = 3000
	printMaxCol  = 29
)

// GeneratedInvoice describes the written output file.
type GeneratedInvoice struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	MIMEType string `json:"mimeType"`
}

// cellWriter wraps a worksheet with a sticky error so row population reads
// linearly. Style application stays best-effort and never sets the error.
type cellWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *cellWriter) set(col, row int, value interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cell, value)
}

func (w *cellWriter) formula(col, row int, formula string) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellFormula(w.sheet, cell, formula)
}

func (w *cellWriter) comment(col, row int, text string) {
	if w.err != nil || text == "" {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.AddComment(w.sheet, excelize.Comment{
		Cell:   cell,
		Author: "Status",
		Paragraph: []excelize.RichTextRun{
			{Text: text},
		},
	})
}

// copyHeaderStyle applies the style of the first data row's cell in the same
// column. One bad cell must never abort the render, so failures are
// swallowed.
func (w *cellWriter) copyHeaderStyle(col, row int) {
	src, err := excelize.CoordinatesToCellName(col, 3)
	if err != nil {
		return
	}
	dst, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	styleID, err := w.f.GetCellStyle(w.sheet, src)
	if err != nil {
		return
	}
	_ = w.f.SetCellStyle(w.sheet, dst, dst, styleID)
}

// clearRows blanks the stale data region (row 3 onward) within the bounded
// scan window, leaving the two header rows and all styling in place.
func (w *cellWriter) clearRows(maxRow, maxCol int) {
	rows, err := w.f.GetRows(w.sheet)
	if err != nil {
		if w.err == nil {
			w.err = err
		}
		return
	}
	last := len(rows)
	if last >= maxRow {
		last = maxRow - 1
	}
	for row := 3; row <= last; row++ {
		for col := 1; col <= maxCol; col++ {
			w.set(col, row, nil)
		}
	}
}

// GenerateInvoice populates a copy of the template with the studio and print
// tables and writes it to outDir. The template file itself is never
// modified; on any failure nothing is left at the output path.
func GenerateInvoice(tpl *Template, jobs []model.StudioJob, items []model.LineItem, eventName, eventCode, outDir string) (*GeneratedInvoice, error) {
	f, err := excelize.OpenFile(tpl.Path)
	if err != nil {
		return nil, &RenderError{Stage: "open template", Err: err}
	}
	defer f.Close()

	for _, name := range []string{SheetSummaryCore, SheetSummaryOAB} {
		if !hasSheet(f, name) {
			continue
		}
		if err := f.SetCellValue(name, "D4", eventName); err != nil {
			return nil, &RenderError{Stage: "event summary", Err: err}
		}
	}

	if hasSheet(f, SheetStudio) && len(jobs) > 0 {
		if err := writeStudioSheet(f, jobs); err != nil {
			return nil, &RenderError{Stage: "studio sheet", Err: err}
		}
	}

	if hasSheet(f, SheetPrint) && len(items) > 0 {
		if err := writePrintSheet(f, items); err != nil {
			return nil, &RenderError{Stage: "print sheet", Err: err}
		}
	}

	ext := ".xlsx"
	mime := MIMEXLSX
	if tpl.HasMacros {
		ext = ".xlsm"
		mime = MIMEXLSM
	}

	filename := fmt.Sprintf("%s_Invoice_%s%s", eventCode, time.Now().Format("20060102"), ext)
	outPath := filepath.Join(outDir, filename)

	// Save to a scratch name first so a failed save never replaces a
	// previously generated file.
	scratch := filepath.Join(outDir, "."+uuid.NewString()+ext)
	if err := f.SaveAs(scratch); err != nil {
		os.Remove(scratch)
		return nil, &RenderError{Stage: "save", Err: err}
	}
	if err := os.Rename(scratch, outPath); err != nil {
		os.Remove(scratch)
		return nil, &RenderError{Stage: "save", Err: err}
	}

	return &GeneratedInvoice{Path: outPath, Filename: filename, MIMEType: mime}, nil
}

func writeStudioSheet(f *excelize.File, jobs []model.StudioJob) error {
	w := &cellWriter{f: f, sheet: SheetStudio}
	w.clearRows(studioMaxRow, studioMaxCol)

	for i, job := range jobs {
		row := i + 3

		for col := 1; col <= 10; col++ {
			w.copyHeaderStyle(col, row)
		}

		w.set(1, row, job.ProjectRef)
		w.set(2, row, job.EventName)
		w.set(3, row, job.ProjectDescription)
		w.set(4, row, job.ProjectOwner)
		w.set(5, row, job.Lines)
		if job.StudioHours != nil {
			w.set(6, row, *job.StudioHours)
		}
		// Type and category render through the display defaults so the rate
		// formula and the print VLOOKUP resolve for unmatched jobs too. The
		// stored record keeps its unset fields.
		w.set(7, row, job.EffectiveType())
		w.formula(8, row, fmt.Sprintf(`IF(G%d="Artwork",49.5,IF(G%d="Creative Artwork",57,IF(G%d="Digital",49.5,0)))`, row, row, row))
		w.formula(9, row, fmt.Sprintf("F%d*H%d", row, row))
		w.set(10, row, job.EffectiveCoreOAB())
		w.comment(1, row, job.StudioComment)
	}
	return w.err
}

func writePrintSheet(f *excelize.File, items []model.LineItem) error {
	w := &cellWriter{f: f, sheet: SheetPrint}
	w.clearRows(printMaxRow, printMaxCol)

	for i, item := range items {
		row := i + 3

		for col := 1; col <= 27; col++ {
			w.copyHeaderStyle(col, row)
		}

		w.set(1, row, item.ProjectRef)
		w.set(2, row, item.EventName)
		w.set(3, row, item.ProjectDescription)
		w.set(4, row, item.ProjectOwner)
		w.set(5, row, item.BriefRef)
		w.set(6, row, item.POSCode)
		w.set(7, row, item.BriefDescription)
		w.set(8, row, item.PartURN)
		w.set(9, row, item.Part)
		w.set(10, row, item.Height)
		w.set(11, row, item.Width)
		w.set(12, row, item.ColoursFront)
		w.set(13, row, item.ColoursBack)
		w.set(14, row, item.Material)
		w.set(15, row, item.NoOfPages)
		w.set(16, row, item.ProductionFinishingNotes)
		w.set(17, row, item.SupplierComments)
		w.set(18, row, item.AllocatedQty)
		w.set(19, row, item.Spares)
		w.set(20, row, item.TotalIncludingSpares)
		w.set(21, row, item.NoOfStores)
		w.set(22, row, item.InStoreDeadline)
		w.set(23, row, item.ContentBriefStatus)
		w.set(24, row, item.SupplierBriefStatus)
		w.set(25, row, item.ProductionSellPrice)
		w.comment(24, row, item.StatusNote)

		// Billing category resolved in-sheet against the Studio table.
		w.formula(26, row, fmt.Sprintf(`IF(Y%d>0,IFERROR(VLOOKUP(A%d,Studio!$A$3:$J$6129,10,FALSE),""),"")`, row, row))

		if item.Comments != "" {
			w.set(27, row, item.Comments)
		}
	}
	return w.err
}
