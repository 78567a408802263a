package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

// Timesheet exports arrive in a handful of encodings depending on which tool
// produced them. Tried in order; the first that decodes cleanly wins.
var timesheetEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8-sig", unicode.UTF8BOM},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)},
	{"latin1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
}

func decodeTimesheet(raw []byte) (string, error) {
	var lastErr error
	tried := make([]string, 0, len(timesheetEncodings))
	for _, enc := range timesheetEncodings {
		tried = append(tried, enc.name)
		// The UTF-8 decoder substitutes invalid bytes instead of failing;
		// reject them up front so the fallbacks get their turn.
		if enc.name == "utf-8-sig" && !utf8.Valid(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))) {
			lastErr = fmt.Errorf("invalid UTF-8 input")
			continue
		}
		decoded, err := enc.enc.NewDecoder().Bytes(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return string(decoded), nil
	}
	return "", &DecodeError{Tried: tried, Err: lastErr}
}

// Timesheet column headers.
const (
	colJobNumber      = "Job Number"
	colJobDescription = "Job Description"
	colChargeCode     = "Charge Code"
	colTotal          = "Total"
)

// ReadTimesheet decodes and parses a raw timesheet export into time entries.
// Returns a DecodeError when no fallback encoding fits and a ReadError for
// any other failure. Missing columns are not errors; affected fields read as
// empty and non-numeric hours as zero.
func ReadTimesheet(r io.Reader) ([]model.TimeEntry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Source: "timesheet", Err: err}
	}

	text, err := decodeTimesheet(raw)
	if err != nil {
		return nil, err
	}

	records, err := utils.ParseCSV(strings.NewReader(text))
	if err != nil {
		return nil, &ReadError{Source: "timesheet", Err: err}
	}
	if len(records) < 2 {
		return nil, nil
	}

	cols := headerIndex(records[0])
	entries := make([]model.TimeEntry, 0, len(records)-1)
	for _, row := range records[1:] {
		entries = append(entries, model.TimeEntry{
			JobNumber:      cellAt(row, cols, colJobNumber),
			JobDescription: cellAt(row, cols, colJobDescription),
			ChargeCode:     cellAt(row, cols, colChargeCode),
			Hours:          parseFloat(cellAt(row, cols, colTotal)),
		})
	}
	return entries, nil
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

func cellAt(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseFloat coerces dirty numeric text to a float, falling back to zero.
// Thousands separators show up in exported totals occasionally.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
