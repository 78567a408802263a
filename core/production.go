package core

import (
	"strings"

	"itg.uk/invoicegen/model"
)

// StatusNoteText is attached to print lines whose supplier brief status says
// the line has not reached production.
const StatusNoteText = "check status/cost as line not in production yet"

// Supplier brief statuses that flag a line for cost review. Matching is on
// the trimmed, lowercased status.
var preProductionStatuses = map[string]struct{}{
	"draft":                       {},
	"saved":                       {},
	"awaiting rfq":                {},
	"rfq responses":               {},
	"estimates awaiting approval": {},
	"client approved estimates":   {},
}

// CombineLineItems concatenates the rows of multiple production exports in
// input order and deduplicates on Brief Ref, keeping the first occurrence.
// Later duplicates (including across files) are dropped, not merged.
func CombineLineItems(tables ...[]model.LineItem) []model.LineItem {
	var combined []model.LineItem
	seen := make(map[string]struct{})
	for _, table := range tables {
		for _, item := range table {
			if _, dup := seen[item.BriefRef]; dup {
				continue
			}
			seen[item.BriefRef] = struct{}{}
			combined = append(combined, item)
		}
	}
	return combined
}

// AnnotateProduction trims the supplier brief status on every line and sets
// StatusNote on those still in a pre-production state. No rows are dropped.
func AnnotateProduction(items []model.LineItem) []model.LineItem {
	annotated := make([]model.LineItem, len(items))
	for i, item := range items {
		item.SupplierBriefStatus = strings.TrimSpace(item.SupplierBriefStatus)
		if _, flagged := preProductionStatuses[strings.ToLower(item.SupplierBriefStatus)]; flagged {
			item.StatusNote = StatusNoteText
		} else {
			item.StatusNote = ""
		}
		annotated[i] = item
	}
	return annotated
}
