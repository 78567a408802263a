package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"itg.uk/invoicegen/model"
	"itg.uk/invoicegen/utils"
)

func TestMergeTimesheetOverridesMatchedJobs(t *testing.T) {
	jobs := []model.StudioJob{
		{ProjectRef: "SDG1", Lines: 3},
	}
	hours := []model.JobHours{
		{ProjectRef: "SDG1", TotalHours: 4.25, Type: model.TypeDigital, CoreOAB: model.CategoryOAB},
	}

	got := MergeTimesheet(jobs, hours)

	require.Len(t, got, 1)
	require.NotNil(t, got[0].StudioHours)
	assert.Equal(t, 4.25, *got[0].StudioHours)
	assert.Equal(t, model.TypeDigital, got[0].Type)
	assert.Equal(t, model.CategoryOAB, got[0].CoreOAB)
	assert.Equal(t, 3, got[0].Lines)
}

func TestMergeTimesheetLeavesUnmatchedJobsUnset(t *testing.T) {
	jobs := []model.StudioJob{
		{ProjectRef: "SDG1"},
		{ProjectRef: "SDG2"},
	}
	hours := []model.JobHours{
		{ProjectRef: "SDG1", TotalHours: 1.5, Type: model.TypeArtwork, CoreOAB: model.CategoryCore},
	}

	got := MergeTimesheet(jobs, hours)

	require.Len(t, got, 2)

	// The stored record stays unset; defaults are read-time only.
	unmatched := got[1]
	assert.Nil(t, unmatched.StudioHours)
	assert.Equal(t, "", unmatched.Type)
	assert.Equal(t, "", unmatched.CoreOAB)
	assert.Equal(t, model.TypeArtwork, unmatched.EffectiveType())
	assert.Equal(t, model.CategoryCore, unmatched.EffectiveCoreOAB())
}

func TestMergeTimesheetDoesNotMutateInput(t *testing.T) {
	jobs := []model.StudioJob{{ProjectRef: "SDG1"}}
	hours := []model.JobHours{{ProjectRef: "SDG1", TotalHours: 2}}

	_ = MergeTimesheet(jobs, hours)

	assert.Nil(t, jobs[0].StudioHours)
}

func TestMergeTimesheetKeepsManualValuesWhenTimesheetFieldEmpty(t *testing.T) {
	jobs := []model.StudioJob{
		{ProjectRef: "SDG1", Type: model.TypeCreativeArtwork, CoreOAB: model.CategoryOAB},
	}
	hours := []model.JobHours{
		{ProjectRef: "SDG1", TotalHours: 3},
	}

	got := MergeTimesheet(jobs, hours)

	assert.Equal(t, model.TypeCreativeArtwork, got[0].Type)
	assert.Equal(t, model.CategoryOAB, got[0].CoreOAB)
}

func TestSummarizeMatch(t *testing.T) {
	jobs := []model.StudioJob{
		{ProjectRef: "SDG1", StudioHours: utils.Ptr(2.0)},
		{ProjectRef: "SDG2"},
		{ProjectRef: "SDG3", StudioHours: utils.Ptr(1.25)},
	}

	got := SummarizeMatch(jobs)

	assert.Equal(t, 2, got.Matched)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 3.25, got.TotalHours)
	assert.Equal(t, []string{"SDG2"}, got.Unmatched)
}
