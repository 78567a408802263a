package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/sheet"
	"itg.uk/invoicegen/utils"
)

// Batch invoice generation without the web server: feed it a template, one
// or more production exports and an optional timesheet, get the workbook
// and CSV extracts in the output directory.
func main() {
	templatePath := flag.String("template", "", "invoice template (.xlsx or .xlsm)")
	timesheetPath := flag.String("timesheet", "", "timesheet CSV (optional)")
	eventName := flag.String("event", "", `event name, e.g. "Event 5 2025"`)
	outDir := flag.String("out", ".", "output directory")
	flag.Parse()

	if *templatePath == "" || flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s -template FILE [-timesheet FILE] [-event NAME] [-out DIR] PRODUCTION_FILE...\n",
			filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	tpl, err := sheet.LoadTemplate(*templatePath)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[INFO] template %s (%s)\n", *templatePath,
		utils.FormatBoolean(tpl.HasMacros, "macro-enabled", "standard"))

	tables := make([][]model.LineItem, 0, flag.NArg())
	for _, path := range flag.Args() {
		src, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		items, err := sheet.ReadProductionBook(src)
		src.Close()
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		tables = append(tables, items)
	}

	printLines := core.AnnotateProduction(core.CombineLineItems(tables...))
	studio := core.AggregateStudio(printLines)
	fmt.Printf("[INFO] %d print lines, %d studio jobs\n", len(printLines), len(studio))

	if *timesheetPath != "" {
		src, err := os.Open(*timesheetPath)
		if err != nil {
			log.Fatal(err)
		}
		entries, err := sheet.ReadTimesheet(src)
		src.Close()
		if err != nil {
			log.Fatal(err)
		}
		studio = core.MergeTimesheet(studio, core.AggregateTimesheet(entries))
		summary := core.SummarizeMatch(studio)
		fmt.Printf("[INFO] timesheet matched %d of %d studio jobs\n", summary.Matched, summary.Total)
	}

	code := core.EventCode(*eventName)
	generated, err := sheet.GenerateInvoice(tpl, studio, printLines, *eventName, code, *outDir)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[INFO] wrote %s\n", generated.Path)

	for name, write := range map[string]func(*os.File) error{
		sheet.StudioCSVName(code): func(f *os.File) error { return sheet.WriteStudioCSV(f, studio) },
		sheet.PrintCSVName(code):  func(f *os.File) error { return sheet.WritePrintCSV(f, printLines) },
	} {
		path := filepath.Join(*outDir, name)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := write(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		f.Close()
		fmt.Printf("[INFO] wrote %s\n", path)
	}

	report := core.ComputeCosts(studio, printLines)
	fmt.Printf("[INFO] studio %.2f, print %.2f, total %.2f (CORE %.2f / OAB %.2f)\n",
		report.StudioCore+report.StudioOAB, report.PrintCore+report.PrintOAB,
		report.GrandTotal, report.CoreTotal, report.OABTotal)
}
