package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"itg.uk/invoicegen/core"
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

func TestStudioCSVRoundTrip(t *testing.T) {
	jobs := []model.StudioJob{
		{
			ProjectRef:         "SDG1",
			EventName:          "Event 10 2025",
			ProjectDescription: "Window vinyls",
			ProjectOwner:       "AB",
			Lines:              3,
			StudioHours:        utils.Ptr(4.25),
			Type:               model.TypeCreativeArtwork,
			CoreOAB:            model.CategoryOAB,
			StudioComment:      "check all lines are approved, artwork hours may require updating",
		},
		{ProjectRef: "SDG2", Lines: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStudioCSV(&buf, jobs))

	got, err := ReadStudioCSV(&buf)

	require.NoError(t, err)
	assert.Equal(t, jobs, got)
}

func TestStudioCSVUnsetFieldsStayUnset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStudioCSV(&buf, []model.StudioJob{{ProjectRef: "SDG1"}}))

	got, err := ReadStudioCSV(&buf)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].StudioHours)
	assert.Equal(t, "", got[0].Type)
	assert.Equal(t, "", got[0].CoreOAB)
}

func TestPrintCSVRoundTrip(t *testing.T) {
	items := []model.LineItem{
		{
			ProjectRef:           "SDG1",
			BriefRef:             "B1",
			EventName:            "Event 10 2025",
			Height:               120.5,
			Width:                60,
			NoOfPages:            8,
			AllocatedQty:         500,
			Spares:               25,
			TotalIncludingSpares: 525,
			NoOfStores:           240,
			ProductionSellPrice:  0.35,
			SupplierBriefStatus:  "Draft",
			StatusNote:           core.StatusNoteText,
		},
		{ProjectRef: "SDG2", BriefRef: "B2"},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePrintCSV(&buf, items))

	got, err := ReadPrintCSV(&buf)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCSVRoundTripPreservesTotals(t *testing.T) {
	items := []model.LineItem{
		{ProjectRef: "SDG1", BriefRef: "B1", ProductionSellPrice: 10, TotalIncludingSpares: 3},
		{ProjectRef: "SDG1", BriefRef: "B2", ProductionSellPrice: 1.25, TotalIncludingSpares: 100},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePrintCSV(&buf, items))
	got, err := ReadPrintCSV(&buf)
	require.NoError(t, err)

	var wantTotal, gotTotal float64
	for i := range items {
		wantTotal += items[i].ProductionSellPrice * items[i].TotalIncludingSpares
		gotTotal += got[i].ProductionSellPrice * got[i].TotalIncludingSpares
	}
	assert.InDelta(t, wantTotal, gotTotal, 1e-9)
}

func TestExportNames(t *testing.T) {
	assert.Equal(t, "studio_data_E1025.csv", StudioCSVName("E1025"))
	assert.Equal(t, "print_data_E1025.csv", PrintCSVName("E1025"))
}
