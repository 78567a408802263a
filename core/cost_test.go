package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

func TestStudioRate(t *testing.T) {
	assert.Equal(t, 49.5, StudioRate(model.TypeArtwork))
	assert.Equal(t, 57.0, StudioRate(model.TypeCreativeArtwork))
	assert.Equal(t, 49.5, StudioRate(model.TypeDigital))
	assert.Equal(t, 49.5, StudioRate("Something Else"))
	assert.Equal(t, 49.5, StudioRate(""))
}

func TestComputeCostsStudio(t *testing.T) {
	jobs := []model.StudioJob{
		{ProjectRef: "SDG1", StudioHours: utils.Ptr(2.0), Type: model.TypeCreativeArtwork, CoreOAB: model.CategoryCore},
	}

	report := ComputeCosts(jobs, nil)

	require.Len(t, report.Studio, 1)
	assert.Equal(t, 114.0, report.Studio[0].Cost)
	assert.Equal(t, 57.0, report.Studio[0].Rate)
	assert.Equal(t, 114.0, report.StudioCore)
	assert.Equal(t, 0.0, report.StudioOAB)
}

func TestComputeCostsPrint(t *testing.T) {
	items := []model.LineItem{
		{BriefRef: "B1", ProjectRef: "SDG1", ProductionSellPrice: 10, TotalIncludingSpares: 3},
	}

	report := ComputeCosts(nil, items)

	require.Len(t, report.Print, 1)
	assert.Equal(t, 30.0, report.Print[0].Cost)
	// No studio match: bills as CORE.
	assert.Equal(t, model.CategoryCore, report.Print[0].CoreOAB)
	assert.Equal(t, 30.0, report.PrintCore)
}

func TestComputeCostsNilHoursIsZero(t *testing.T) {
	jobs := []model.StudioJob{{ProjectRef: "SDG1", Type: model.TypeArtwork}}

	report := ComputeCosts(jobs, nil)

	assert.Equal(t, 0.0, report.Studio[0].Cost)
	assert.Equal(t, 0.0, report.GrandTotal)
}

func TestComputeCostsCategorySplit(t *testing.T) {
	jobs := []model.StudioJob{
		{ProjectRef: "SDG1", StudioHours: utils.Ptr(1.0), Type: model.TypeArtwork, CoreOAB: model.CategoryCore},
		{ProjectRef: "SDG2", StudioHours: utils.Ptr(2.0), Type: model.TypeArtwork, CoreOAB: model.CategoryOAB},
	}
	items := []model.LineItem{
		{BriefRef: "B1", ProjectRef: "SDG1", ProductionSellPrice: 5, TotalIncludingSpares: 2},
		{BriefRef: "B2", ProjectRef: "SDG2", ProductionSellPrice: 4, TotalIncludingSpares: 10},
	}

	report := ComputeCosts(jobs, items)

	assert.Equal(t, 49.5, report.StudioCore)
	assert.Equal(t, 99.0, report.StudioOAB)
	assert.Equal(t, 10.0, report.PrintCore)
	assert.Equal(t, 40.0, report.PrintOAB)
	assert.Equal(t, 59.5, report.CoreTotal)
	assert.Equal(t, 139.0, report.OABTotal)
	assert.Equal(t, 198.5, report.GrandTotal)

	// Print lines inherit the billing category of their studio project.
	assert.Equal(t, model.CategoryOAB, report.Print[1].CoreOAB)
}

func TestComputeCostsProjectBreakdown(t *testing.T) {
	jobs := []model.StudioJob{
		{ProjectRef: "SDG1", ProjectDescription: "Shelf strips", Lines: 2, StudioHours: utils.Ptr(2.0), Type: model.TypeArtwork},
		{ProjectRef: "SDG2", ProjectDescription: "FSDU", Lines: 1},
	}
	items := []model.LineItem{
		{BriefRef: "B1", ProjectRef: "SDG1", ProductionSellPrice: 3, TotalIncludingSpares: 4},
		{BriefRef: "B2", ProjectRef: "SDG1", ProductionSellPrice: 1, TotalIncludingSpares: 1},
	}

	report := ComputeCosts(jobs, items)

	require.Len(t, report.Projects, 2)

	sdg1 := report.Projects[0]
	assert.Equal(t, 99.0, sdg1.StudioCost)
	assert.Equal(t, 13.0, sdg1.ProductionCost)
	assert.Equal(t, 112.0, sdg1.TotalCost)

	// No print lines: production cost contributes zero.
	sdg2 := report.Projects[1]
	assert.Equal(t, 0.0, sdg2.ProductionCost)
	assert.Equal(t, 0.0, sdg2.TotalCost)
}
