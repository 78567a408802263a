package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

var studioCSVHeader = []string{
	"Project Ref", "Event Name", "Project Description", "Project Owner",
	"Lines", "Studio Hours", "Type", "Core/OAB", "Studio Comment",
}

var printCSVHeader = []string{
	colProjectRef, colEventName, colProjectDescription, colProjectOwner,
	colBriefRef, colPOSCode, colBriefDescription, colPartURN, colPart,
	colHeight, colWidth, colColoursFront, colColoursBack, colMaterial,
	colNoOfPages, colFinishingNotes, colSupplierComments, colAllocatedQty,
	colSpares, colTotalInclSpares, colNoOfStores, colInStoreDeadline,
	colContentBriefStatus, colSupplierBriefStatus, colProductionSellPrice,
	colComments, "Production Status Note",
}

// StudioCSVName and PrintCSVName build the download names for the table
// exports of a given event code.
func StudioCSVName(eventCode string) string {
	return fmt.Sprintf("studio_data_%s.csv", eventCode)
}

func PrintCSVName(eventCode string) string {
	return fmt.Sprintf("print_data_%s.csv", eventCode)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteStudioCSV exports the studio table. Unset hours export as an empty
// field, unset type/category as empty strings (not their display defaults).
func WriteStudioCSV(w io.Writer, jobs []model.StudioJob) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(studioCSVHeader); err != nil {
		return err
	}
	for _, job := range jobs {
		record := []string{
			job.ProjectRef,
			job.EventName,
			job.ProjectDescription,
			job.ProjectOwner,
			strconv.Itoa(job.Lines),
			utils.Format(job.StudioHours),
			job.Type,
			job.CoreOAB,
			job.StudioComment,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePrintCSV exports the print table, one row per retained line item.
func WritePrintCSV(w io.Writer, items []model.LineItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(printCSVHeader); err != nil {
		return err
	}
	for _, it := range items {
		record := []string{
			it.ProjectRef, it.EventName, it.ProjectDescription, it.ProjectOwner,
			it.BriefRef, it.POSCode, it.BriefDescription, it.PartURN, it.Part,
			formatFloat(it.Height), formatFloat(it.Width),
			it.ColoursFront, it.ColoursBack, it.Material,
			formatFloat(it.NoOfPages), it.ProductionFinishingNotes,
			it.SupplierComments, formatFloat(it.AllocatedQty),
			formatFloat(it.Spares), formatFloat(it.TotalIncludingSpares),
			formatFloat(it.NoOfStores), it.InStoreDeadline,
			it.ContentBriefStatus, it.SupplierBriefStatus,
			formatFloat(it.ProductionSellPrice), it.Comments, it.StatusNote,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadStudioCSV loads a studio table previously written by WriteStudioCSV.
func ReadStudioCSV(r io.Reader) ([]model.StudioJob, error) {
	records, err := utils.ParseCSV(r)
	if err != nil {
		return nil, &ReadError{Source: "studio csv", Err: err}
	}
	if len(records) < 2 {
		return nil, nil
	}
	cols := headerIndex(records[0])

	jobs := make([]model.StudioJob, 0, len(records)-1)
	for _, row := range records[1:] {
		lines, _ := strconv.Atoi(cellAt(row, cols, "Lines"))
		job := model.StudioJob{
			ProjectRef:         cellAt(row, cols, "Project Ref"),
			EventName:          cellAt(row, cols, "Event Name"),
			ProjectDescription: cellAt(row, cols, "Project Description"),
			ProjectOwner:       cellAt(row, cols, "Project Owner"),
			Lines:              lines,
			Type:               cellAt(row, cols, "Type"),
			CoreOAB:            cellAt(row, cols, "Core/OAB"),
			StudioComment:      cellAt(row, cols, "Studio Comment"),
		}
		if hours := strings.TrimSpace(cellAt(row, cols, "Studio Hours")); hours != "" {
			job.StudioHours = utils.Ptr(parseFloat(hours))
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// ReadPrintCSV loads a print table previously written by WritePrintCSV.
func ReadPrintCSV(r io.Reader) ([]model.LineItem, error) {
	records, err := utils.ParseCSV(r)
	if err != nil {
		return nil, &ReadError{Source: "print csv", Err: err}
	}
	if len(records) < 2 {
		return nil, nil
	}
	cols := headerIndex(records[0])

	items := make([]model.LineItem, 0, len(records)-1)
	for _, row := range records[1:] {
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
			StatusNote:               cellAt(row, cols, "Production Status Note"),
		})
	}
	return items, nil
}
