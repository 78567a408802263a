package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"itg.uk/invoicegen/model"
)

func TestCombineLineItemsDedupesAcrossFiles(t *testing.T) {
	fileA := []model.LineItem{
		{BriefRef: "B1", ProjectRef: "SDG1", Material: "Paper"},
		{BriefRef: "B2", ProjectRef: "SDG1"},
	}
	fileB := []model.LineItem{
		{BriefRef: "B1", ProjectRef: "SDG1", Material: "Vinyl"}, // duplicate, dropped
		{BriefRef: "B3", ProjectRef: "SDG2"},
	}

	got := CombineLineItems(fileA, fileB)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"B1", "B2", "B3"}, refsOf(got))
	// First occurrence wins, not a merge.
	assert.Equal(t, "Paper", got[0].Material)
}

func TestCombineLineItemsPreservesRowOrder(t *testing.T) {
	fileA := []model.LineItem{{BriefRef: "B5"}, {BriefRef: "B4"}}
	fileB := []model.LineItem{{BriefRef: "B2"}, {BriefRef: "B5"}, {BriefRef: "B1"}}

	got := CombineLineItems(fileA, fileB)

	assert.Equal(t, []string{"B5", "B4", "B2", "B1"}, refsOf(got))
}

func refsOf(items []model.LineItem) []string {
	refs := make([]string, len(items))
	for i, it := range items {
		refs[i] = it.BriefRef
	}
	return refs
}

func TestAnnotateProduction(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		expectedNote string
	}{
		{name: "Draft flagged", status: "Draft", expectedNote: StatusNoteText},
		{name: "Saved flagged", status: "saved", expectedNote: StatusNoteText},
		{name: "Awaiting RFQ flagged", status: "Awaiting RFQ", expectedNote: StatusNoteText},
		{name: "Whitespace trimmed before matching", status: "  Client Approved Estimates  ", expectedNote: StatusNoteText},
		{name: "In production not flagged", status: "In Production", expectedNote: ""},
		{name: "Empty status not flagged", status: "", expectedNote: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnotateProduction([]model.LineItem{{BriefRef: "B1", SupplierBriefStatus: tt.status}})
			require.Len(t, got, 1)
			assert.Equal(t, tt.expectedNote, got[0].StatusNote)
		})
	}
}

func TestAnnotateProductionNeverDropsRows(t *testing.T) {
	items := []model.LineItem{
		{BriefRef: "B1", SupplierBriefStatus: "Draft"},
		{BriefRef: "B2", SupplierBriefStatus: "In Production"},
		{BriefRef: "B3", SupplierBriefStatus: "rfq responses"},
	}

	got := AnnotateProduction(items)

	assert.Len(t, got, 3)
}

func TestAnnotateProductionTrimsStatus(t *testing.T) {
	got := AnnotateProduction([]model.LineItem{{SupplierBriefStatus: " In Production "}})
	assert.Equal(t, "In Production", got[0].SupplierBriefStatus)
}
