package sheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"itg.uk/invoicegen/model"
)

// Production export column headers. The header sits on row 2 of the sheet;
// row 1 is a banner row.
const (
	colProjectRef          = "Project Ref"
	colEventName           = "Event Name"
	colProjectDescription  = "Project Description"
	colProjectOwner        = "Project Owner"
	colBriefRef            = "Brief Ref"
	colPOSCode             = "POS Code"
	colBriefDescription    = "Brief Description"
	colPartURN             = "Part URN"
	colPart                = "Part"
	colHeight              = "Height"
	colWidth               = "Width"
	colColoursFront        = "Colours Front"
	colColoursBack         = "Colours Back"
	colMaterial            = "Material"
	colNoOfPages           = "No of Pages"
	colFinishingNotes      = "Production Finishing Notes"
	colSupplierComments    = "Production Supplier Comments"
	colAllocatedQty        = "Allocated Qty"
	colSpares              = "Spares"
	colTotalInclSpares     = "Total including Spares"
	colNoOfStores          = "No of Stores"
	colInStoreDeadline     = "In Store Deadline"
	colContentBriefStatus  = "Content Brief Status"
	colSupplierBriefStatus = "Production Supplier Brief Status"
	colProductionSellPrice = "Production Sell Price"
	colComments            = "Comments"
)

// ReadProductionBook parses one production line-item workbook. Data is read
// from the first sheet with the header on row 2. Missing columns degrade to
// zero values; they never fail the read.
func ReadProductionBook(r io.Reader) ([]model.LineItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ReadError{Source: "production file", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ReadError{Source: "production file", Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ReadError{Source: "production file", Err: err}
	}
	if len(rows) < 3 {
		return nil, nil
	}

	cols := headerIndex(rows[1])

	items := make([]model.LineItem, 0, len(rows)-2)
	for _, row := range rows[2:] {
		if isBlankRow(row) {
			continue
		}
		items = append(items, model.LineItem{
			ProjectRef:               cellAt(row, cols, colProjectRef),
			EventName:                cellAt(row, cols, colEventName),
			ProjectDescription:       cellAt(row, cols, colProjectDescription),
			ProjectOwner:             cellAt(row, cols, colProjectOwner),
			BriefRef:                 cellAt(row, cols, colBriefRef),
			POSCode:                  cellAt(row, cols, colPOSCode),
			BriefDescription:         cellAt(row, cols, colBriefDescription),
			PartURN:                  cellAt(row, cols, colPartURN),
			Part:                     cellAt(row, cols, colPart),
			Height:                   parseFloat(cellAt(row, cols, colHeight)),
			Width:                    parseFloat(cellAt(row, cols, colWidth)),
			ColoursFront:             cellAt(row, cols, colColoursFront),
			ColoursBack:              cellAt(row, cols, colColoursBack),
			Material:                 cellAt(row, cols, colMaterial),
			NoOfPages:                parseFloat(cellAt(row, cols, colNoOfPages)),
			ProductionFinishingNotes: cellAt(row, cols, colFinishingNotes),
			SupplierComments:         cellAt(row, cols, colSupplierComments),
			AllocatedQty:             parseFloat(cellAt(row, cols, colAllocatedQty)),
			Spares:                   parseFloat(cellAt(row, cols, colSpares)),
			TotalIncludingSpares:     parseFloat(cellAt(row, cols, colTotalInclSpares)),
			NoOfStores:               parseFloat(cellAt(row, cols, colNoOfStores)),
			InStoreDeadline:          cellAt(row, cols, colInStoreDeadline),
			ContentBriefStatus:       cellAt(row, cols, colContentBriefStatus),
			SupplierBriefStatus:      cellAt(row, cols, colSupplierBriefStatus),
			ProductionSellPrice:      parseFloat(cellAt(row, cols, colProductionSellPrice)),
			Comments:                 cellAt(row, cols, colComments),
		})
	}
	return items, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
